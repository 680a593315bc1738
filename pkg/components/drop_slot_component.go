package components

// DropSlotKind 拖放区域的类型
type DropSlotKind int

const (
	// DropSlotGrid 草坪格子，Index 为格子索引
	DropSlotGrid DropSlotKind = iota
	// DropSlotBenchCard 备选区中的卡片位置，Index 为备选区索引
	DropSlotBenchCard
	// DropSlotBenchArea 整个备选区面板（放回备选区的目标）
	DropSlotBenchArea
)

func (k DropSlotKind) String() string {
	switch k {
	case DropSlotGrid:
		return "grid"
	case DropSlotBenchCard:
		return "bench-card"
	case DropSlotBenchArea:
		return "bench-area"
	default:
		return "unknown"
	}
}

// DropSlotComponent 可拖起或可放下的矩形区域
// 与 PositionComponent 一起使用，位置为矩形左上角
type DropSlotComponent struct {
	Kind   DropSlotKind
	Index  int
	Width  float64
	Height float64
}

// Contains 判断点 (x, y) 是否在区域内（右、下边界不含）
func (s DropSlotComponent) Contains(pos PositionComponent, x, y float64) bool {
	return x >= pos.X && x < pos.X+s.Width && y >= pos.Y && y < pos.Y+s.Height
}
