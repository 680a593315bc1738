// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerState 获取指针的完整状态（触摸优先，其次鼠标左键）
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	// 触摸刚释放时 TouchPosition 已不可用，返回最后的触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return false, lastTouchX, lastTouchY
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// IsTouchDevice 检测当前是否为触摸设备
func IsTouchDevice() bool {
	return IsMobile() || len(ebiten.AppendTouchIDs(nil)) > 0
}

// DragThreshold 当前平台的拖拽阈值
func DragThreshold() float64 {
	if IsTouchDevice() {
		return config.TouchDragThreshold
	}
	return config.DragThreshold
}

// ExceedsThreshold 从 (x0, y0) 到 (x1, y1) 的距离是否超过阈值
func ExceedsThreshold(x0, y0, x1, y1, threshold float64) bool {
	return math.Hypot(x1-x0, y1-y0) > threshold
}
