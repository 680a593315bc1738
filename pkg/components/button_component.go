package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：文字、尺寸、状态、回调
//
// 纯数据组件；按钮背景由 ButtonRenderSystem 用矢量绘制，
// 可用状态由场景每帧根据布阵状态同步。
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// DisabledText 禁用时显示的文字（为空则使用 Text）
	DisabledText string
	// Font 文字字体
	Font *text.GoTextFace

	// FillColor 可用状态背景色
	FillColor color.RGBA

	Width  float64
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Visible 为 false 时不绘制也不响应（Reveal 阶段隐藏）
	Visible bool

	// OnClick 点击回调函数
	OnClick func()
}

// Label 返回当前应显示的文字
func (b *ButtonComponent) Label() string {
	if !b.Enabled && b.DisabledText != "" {
		return b.DisabledText
	}
	return b.Text
}
