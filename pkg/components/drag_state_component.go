package components

import "github.com/decker502/pvz-setup/pkg/types"

// DragStateComponent 指针拖拽手势的状态（单例实体）
//
// 按下后指针移动超过阈值才算开始拖拽；
// Dragging 为 true 期间布阵状态中存在对应的拖拽选择。
type DragStateComponent struct {
	// Pressed 指针当前是否按下
	Pressed bool
	// Dragging 是否已经越过阈值开始拖拽
	Dragging bool

	// PressX/PressY 按下时的位置
	PressX float64
	PressY float64
	// CursorX/CursorY 当前指针位置，拖拽中的植物跟随它绘制
	CursorX float64
	CursorY float64

	// Source/Index 按下位置对应的拖拽来源；HasSource 为 false 表示按在空白处
	HasSource bool
	Source    types.DragSource
	Index     int
}
