package systems

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/game"
	"github.com/decker502/pvz-setup/pkg/types"
	"github.com/decker502/pvz-setup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// statItem 标题栏中的一项统计
type statItem struct {
	Label string
	Value int
}

// LawnRenderSystem 布阵界面渲染系统
//
// 负责绘制：
//   - 标题栏（标题 + Drawn / On Field / Slots Left 统计，仅布阵阶段）
//   - 5x9 草坪（格子、植物、可选的行列编号）
//   - 右侧控制面板与备选区（仅布阵阶段）
//   - 跟随指针的拖拽植物
//
// 按钮由 ButtonRenderSystem 绘制，僵尸由 ZombieLaneRenderSystem 绘制。
type LawnRenderSystem struct {
	sprites SpriteSource
	strings TextSource
	fonts   UIFonts

	debugOverlay bool
}

// NewLawnRenderSystem 创建布阵界面渲染系统
func NewLawnRenderSystem(sprites SpriteSource, strings TextSource, fonts UIFonts) *LawnRenderSystem {
	return &LawnRenderSystem{
		sprites: sprites,
		strings: strings,
		fonts:   fonts,
	}
}

// SetDebugOverlay 开关格子行列编号
func (s *LawnRenderSystem) SetDebugOverlay(enabled bool) {
	s.debugOverlay = enabled
}

// DebugOverlay 返回格子行列编号是否显示
func (s *LawnRenderSystem) DebugOverlay() bool {
	return s.debugOverlay
}

// Draw 按层次绘制整个界面（按钮、僵尸除外）
func (s *LawnRenderSystem) Draw(screen *ebiten.Image, view game.RenderView, drag *components.DragStateComponent) {
	screen.Fill(colorBackground)

	if view.Phase == types.PhaseSetup {
		s.DrawHeader(screen, view)
	}
	s.DrawLawn(screen, view, drag)
	if view.Phase == types.PhaseSetup {
		s.DrawPanel(screen, view)
	}
	s.DrawDragGhost(screen, view, drag)
}

// headerStats 标题栏统计项
func headerStats(view game.RenderView, strings TextSource) []statItem {
	return []statItem{
		{Label: strings.GetString("STAT_DRAWN"), Value: view.Metrics.Created},
		{Label: strings.GetString("STAT_ON_FIELD"), Value: view.Metrics.Placed},
		{Label: strings.GetString("STAT_SLOTS_LEFT"), Value: view.Metrics.RemainingQuota},
	}
}

// DrawHeader 绘制标题和统计数值
func (s *LawnRenderSystem) DrawHeader(screen *ebiten.Image, view game.RenderView) {
	drawText(screen, s.strings.GetString("SETUP_TITLE"), s.fonts.Title,
		config.HeaderTitleX, config.HeaderTitleY, colorTextLight)

	for i, stat := range headerStats(view, s.strings) {
		x := config.HeaderStatsX + float64(i)*config.HeaderStatsSpacing
		drawText(screen, stat.Label, s.fonts.Small, x, config.HeaderStatsY, colorTextMuted)
		drawText(screen, strconv.Itoa(stat.Value), s.fonts.Stats, x, config.HeaderStatsY+16, colorTextLight)
	}
}

// isDragSource 判断该位置是否为当前拖拽的来源（来源处的植物半透明显示）
func isDragSource(view game.RenderView, source types.DragSource, index int) bool {
	return view.Drag != nil && view.Drag.Source == source && view.Drag.Index == index
}

// gridLabel 调试叠加层中格子的行列编号（从 1 开始）
func gridLabel(index int) string {
	row, col := utils.GridRowCol(index)
	return fmt.Sprintf("R%d C%d", row+1, col+1)
}

// dropTargetCell 拖拽中指针下方的草坪格子
func dropTargetCell(view game.RenderView, drag *components.DragStateComponent) (int, bool) {
	if view.Drag == nil || drag == nil || !drag.Dragging {
		return 0, false
	}
	col, row, ok := utils.MouseToGridCoords(drag.CursorX, drag.CursorY)
	if !ok {
		return 0, false
	}
	return utils.GridIndex(row, col), true
}

// generatorHint 抽卡区提示文本，%d 替换为抽卡上限
func generatorHint(texts TextSource) string {
	hint := texts.GetString("RANDOM_PLANTS_HINT")
	if !strings.Contains(hint, "%d") {
		return hint
	}
	return fmt.Sprintf(hint, config.MaxPlants)
}

// DrawLawn 绘制草坪格子和已种植的植物，拖拽时高亮目标格子
func (s *LawnRenderSystem) DrawLawn(screen *ebiten.Image, view game.RenderView, drag *components.DragStateComponent) {
	target, hasTarget := dropTargetCell(view, drag)
	for index, plant := range view.Grid {
		cell := utils.CellRect(index)
		row, col := utils.GridRowCol(index)

		fill := colorLawnLight
		if (row+col)%2 == 1 {
			fill = colorLawnDark
		}
		if plant != nil {
			fill = colorCellOccupied
		}
		drawPanelRect(screen, cell.X, cell.Y, cell.W, cell.H, fill, colorCellBorder, 1)

		if plant != nil {
			alpha := float32(1)
			if isDragSource(view, types.DragFromGrid, index) {
				alpha = 0.35
			}
			spriteX := cell.X + (cell.W-config.PlantSpriteSize)/2
			drawSpriteFit(screen, s.sprites.ImageOrPlaceholder(plant.Image), spriteX, cell.Y+4, config.PlantSpriteSize, alpha)

			name := utils.TruncateText(plant.Name, s.fonts.Small, cell.W-4)
			drawTextCentered(screen, name, s.fonts.Small, cell.X+cell.W/2, cell.Y+cell.H-22, colorTextDark)
			role := utils.TruncateText(plant.Role, s.fonts.Small, cell.W-4)
			drawTextCentered(screen, role, s.fonts.Small, cell.X+cell.W/2, cell.Y+cell.H-9, colorCardBorder)
		}

		if hasTarget && index == target {
			drawPanelRect(screen, cell.X+1, cell.Y+1, cell.W-2, cell.H-2, colorTransparent, colorBenchHighlite, 3)
		}

		if s.debugOverlay {
			drawText(screen, gridLabel(index), s.fonts.Small, cell.X+3, cell.Y+2, colorDebugText)
		}
	}
}

// benchHighlighted 从草坪拖起植物时高亮备选区（可放回）
func benchHighlighted(view game.RenderView) bool {
	return view.Phase == types.PhaseSetup && view.Drag != nil && view.Drag.Source == types.DragFromGrid
}

// DrawPanel 绘制抽卡区标题和备选区
func (s *LawnRenderSystem) DrawPanel(screen *ebiten.Image, view game.RenderView) {
	drawText(screen, s.strings.GetString("RANDOM_PLANTS"), s.fonts.Stats,
		config.PanelX, config.GeneratorTitleY, colorTextLight)
	lines := utils.WrapText(generatorHint(s.strings), s.fonts.Small, config.PanelWidth)
	for i, line := range lines[:min(len(lines), config.GeneratorHintMaxLines)] {
		y := config.GeneratorSubtitleY + float64(i)*config.GeneratorHintLineHeight
		drawText(screen, line, s.fonts.Small, config.PanelX, y, colorTextMuted)
	}

	area := utils.BenchAreaRect()
	border := colorPanelBorder
	borderWidth := float32(2)
	if benchHighlighted(view) {
		border = colorBenchHighlite
		borderWidth = 3
	}
	drawPanelRect(screen, area.X, area.Y, area.W, area.H, colorPanel, border, borderWidth)
	drawText(screen, s.strings.GetString("BENCH_TITLE"), s.fonts.Label,
		area.X+8, area.Y+config.BenchTitleOffsetY, colorTextLight)

	if len(view.Bench) == 0 {
		drawTextCentered(screen, s.strings.GetString("BENCH_EMPTY"), s.fonts.Label,
			area.X+area.W/2, area.Y+area.H/2, colorTextMuted)
		return
	}

	for i, plant := range view.Bench {
		if i >= config.BenchSlotCount {
			break
		}
		s.drawBenchCard(screen, utils.BenchSlotRect(i), plant, isDragSource(view, types.DragFromBench, i))
	}
}

// drawBenchCard 绘制备选区中的一张卡片
func (s *LawnRenderSystem) drawBenchCard(screen *ebiten.Image, r utils.Rect, plant *game.PlantInstance, dragging bool) {
	alpha := float32(1)
	if dragging {
		alpha = 0.35
	}
	drawPanelRect(screen, r.X, r.Y, r.W, r.H, colorCard, colorCardBorder, 1)

	spriteY := r.Y + (r.H-config.BenchSpriteSize)/2
	drawSpriteFit(screen, s.sprites.ImageOrPlaceholder(plant.Image), r.X+4, spriteY, config.BenchSpriteSize, alpha)

	textX := r.X + config.BenchSpriteSize + 10
	maxWidth := r.W - config.BenchSpriteSize - 14
	drawText(screen, utils.TruncateText(plant.Name, s.fonts.Label, maxWidth), s.fonts.Label, textX, r.Y+8, colorTextDark)
	drawText(screen, utils.TruncateText(plant.Role, s.fonts.Small, maxWidth), s.fonts.Small, textX, r.Y+28, colorCardBorder)
}

// DrawDragGhost 在指针位置绘制正在拖拽的植物
func (s *LawnRenderSystem) DrawDragGhost(screen *ebiten.Image, view game.RenderView, drag *components.DragStateComponent) {
	if view.Drag == nil || view.Drag.Plant == nil || drag == nil || !drag.Dragging {
		return
	}
	size := config.PlantSpriteSize
	drawSpriteFit(screen, s.sprites.ImageOrPlaceholder(view.Drag.Plant.Image),
		drag.CursorX-size/2, drag.CursorY-size/2, size, 0.85)
}
