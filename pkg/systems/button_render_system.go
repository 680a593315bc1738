package systems

import (
	"image/color"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有可见的按钮实体
//
// 职责：
//   - 按状态选择背景色（禁用灰色、悬停提亮、按下压暗）
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Visible {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	fill := buttonFillColor(button)
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y+3), float32(button.Width), float32(button.Height), color.RGBA{0, 0, 0, 90}, true)
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height), fill, true)
	vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height), 2, shade(fill, 0.6), true)

	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// buttonFillColor 根据按钮状态计算背景色
func buttonFillColor(button *components.ButtonComponent) color.RGBA {
	if !button.Enabled || button.State == components.UIDisabled {
		return color.RGBA{120, 120, 110, 255}
	}
	switch button.State {
	case components.UIHovered:
		return shade(button.FillColor, 1.15)
	case components.UIClicked:
		return shade(button.FillColor, 0.8)
	default:
		return button.FillColor
	}
}

// shade 按系数调整颜色亮度（结果限制在 0~255）
func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(255, max(0, float64(v)*factor)))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	label := button.Label()
	if label == "" || button.Font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+1, centerY+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 160})
	text.Draw(screen, label, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(colorTextLight)
	text.Draw(screen, label, button.Font, op)
}
