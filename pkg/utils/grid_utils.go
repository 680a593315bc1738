package utils

import "github.com/decker502/pvz-setup/pkg/config"

// Rect 屏幕矩形（左上角 + 尺寸）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（右、下边界不含）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MouseToGridCoords 将指针屏幕坐标转换为草坪网格坐标
// 参数:
//   - x, y: 指针的屏幕坐标
//
// 返回:
//   - col: 列索引 (0-8)
//   - row: 行索引 (0-4)
//   - isValid: 是否在有效网格范围内
func MouseToGridCoords(x, y float64) (col, row int, isValid bool) {
	if x < config.GridStartX || x >= config.GridEndX || y < config.GridStartY || y >= config.GridEndY {
		return 0, 0, false
	}

	col = int((x - config.GridStartX) / config.CellWidth)
	row = int((y - config.GridStartY) / config.CellHeight)

	// 边界检查（防止浮点数计算误差导致的越界）
	col = min(max(col, 0), config.GridColumns-1)
	row = min(max(row, 0), config.GridRows-1)

	return col, row, true
}

// GridIndex 行列 -> 格子索引（row*GridColumns + col）
func GridIndex(row, col int) int {
	return row*config.GridColumns + col
}

// GridRowCol 格子索引 -> 行列
func GridRowCol(index int) (row, col int) {
	return index / config.GridColumns, index % config.GridColumns
}

// CellRect 返回格子的屏幕矩形
func CellRect(index int) Rect {
	row, col := GridRowCol(index)
	return Rect{
		X: config.GridStartX + float64(col)*config.CellWidth,
		Y: config.GridStartY + float64(row)*config.CellHeight,
		W: config.CellWidth,
		H: config.CellHeight,
	}
}

// BenchSlotRect 返回备选区第 index 个卡片位置的矩形（2 列排列）
func BenchSlotRect(index int) Rect {
	row := index / config.BenchSlotColumns
	col := index % config.BenchSlotColumns
	return Rect{
		X: config.BenchSlotStartX + float64(col)*(config.BenchSlotWidth+config.BenchSlotGapX),
		Y: config.BenchSlotStartY + float64(row)*(config.BenchSlotHeight+config.BenchSlotGapY),
		W: config.BenchSlotWidth,
		H: config.BenchSlotHeight,
	}
}

// BenchAreaRect 整个备选区面板
func BenchAreaRect() Rect {
	return Rect{X: config.BenchX, Y: config.BenchY, W: config.BenchWidth, H: config.BenchHeight}
}
