package config

// 布局配置常量
// 本文件定义了布阵界面的布局参数，包括草坪网格、备选区、按钮位置等
// 所有坐标均为逻辑屏幕坐标（Layout 返回的尺寸），Ebitengine 负责缩放

// 窗口尺寸
const (
	GameWindowWidth  = 1024
	GameWindowHeight = 640
)

// 布阵规则
const (
	// MaxPlants 同时存在的植物实例上限（备选区 + 草坪）
	MaxPlants = 10

	// GridRows 是草坪的行数
	GridRows = 5

	// GridColumns 是草坪的列数
	GridColumns = 9

	// GridSize 格子总数，草坪数组长度恒为该值
	GridSize = GridRows * GridColumns
)

// Lawn Grid Configuration (草坪网格配置)
const (
	GridStartX = 24.0
	GridStartY = 100.0
	CellWidth  = 72.0
	CellHeight = 84.0

	// GridEndX 草坪右边界 = 24 + 9*72 = 672
	GridEndX = GridStartX + float64(GridColumns)*CellWidth
	// GridEndY 草坪下边界 = 100 + 5*84 = 520
	GridEndY = GridStartY + float64(GridRows)*CellHeight

	// PlantSpriteSize 格子内植物图片的边长
	PlantSpriteSize = 48.0
)

// 标题栏
const (
	HeaderTitleX = 24.0
	HeaderTitleY = 22.0

	// HeaderStatsX 统计数值（Drawn / On Field / Slots Left）起始位置
	HeaderStatsX       = 560.0
	HeaderStatsY       = 24.0
	HeaderStatsSpacing = 150.0

	TitleFontSize = 28.0
	StatsFontSize = 16.0
	LabelFontSize = 14.0
	SmallFontSize = 11.0
)

// 右侧控制面板
const (
	PanelX     = 696.0
	PanelWidth = 304.0

	// 抽卡区（Random Plants）
	GeneratorTitleY    = 100.0
	GeneratorSubtitleY = 124.0
	DrawButtonY        = 150.0
	DrawButtonHeight   = 40.0

	// 提示文本最多显示两行
	GeneratorHintMaxLines   = 2
	GeneratorHintLineHeight = 12.0

	// 备选区（Bench）
	BenchX      = PanelX
	BenchY      = 206.0
	BenchWidth  = PanelWidth
	BenchHeight = GridEndY - BenchY

	BenchTitleOffsetY = 8.0

	// 备选区槽位：2 列 x 5 行，容纳 MaxPlants 个实例
	BenchSlotColumns = 2
	BenchSlotStartX  = BenchX + 4.0
	BenchSlotStartY  = BenchY + 34.0
	BenchSlotWidth   = 146.0
	BenchSlotHeight  = 52.0
	BenchSlotGapX    = 4.0
	BenchSlotGapY    = 4.0
	BenchSlotCount   = MaxPlants

	BenchSpriteSize = 40.0
)

// Ready 按钮
const (
	ReadyButtonWidth  = 200.0
	ReadyButtonHeight = 52.0
	ReadyButtonX      = (GameWindowWidth - ReadyButtonWidth) / 2
	ReadyButtonY      = 556.0
)

// 僵尸展示（Reveal 阶段）
const (
	ZombieLaneX        = PanelX
	ZombieLaneY        = GridStartY
	ZombieSpriteWidth  = 80.0
	ZombieSpriteHeight = 96.0
	ZombieLaneSpacing  = 105.0
)

// 拖拽阈值：指针移动超过该距离（像素）才开始拖拽
const (
	DragThreshold = 6.0
	// TouchDragThreshold 触摸设备手指抖动更大
	TouchDragThreshold = 12.0
)
