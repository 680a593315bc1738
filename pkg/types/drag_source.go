package types

// DragSource 拖拽来源容器
type DragSource int

const (
	// DragFromBench 从备选区拖出
	DragFromBench DragSource = iota
	// DragFromGrid 从草坪格子拖出
	DragFromGrid
)

// String 返回拖拽来源的字符串表示
func (s DragSource) String() string {
	switch s {
	case DragFromBench:
		return "bench"
	case DragFromGrid:
		return "grid"
	default:
		return "unknown"
	}
}
