package entities

import (
	"image/color"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonSpec 按钮实体参数
type ButtonSpec struct {
	X, Y          float64
	Width, Height float64

	// Text 可用时的文字；DisabledText 禁用时的文字（可为空）
	Text         string
	DisabledText string
	Font         *text.GoTextFace
	FillColor    color.RGBA

	OnClick func()
}

// NewButton 创建按钮实体（矢量绘制的圆角按钮）
//
// 按钮初始为可见、禁用状态，由场景每帧根据布阵状态同步 Enabled。
func NewButton(em *ecs.EntityManager, spec ButtonSpec) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: spec.X,
		Y: spec.Y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:         spec.Text,
		DisabledText: spec.DisabledText,
		Font:         spec.Font,
		FillColor:    spec.FillColor,
		Width:        spec.Width,
		Height:       spec.Height,
		State:        components.UIDisabled,
		Enabled:      false,
		Visible:      true,
		OnClick:      spec.OnClick,
	})

	return entity
}
