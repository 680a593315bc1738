package game

import (
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/types"
)

// Reducer 把 (状态, 事件) 映射为新状态
//
// 所有非法操作都是静默的空操作：返回原状态和 false。
// 备选区和草坪在一次转换中同时更新，不存在中间状态。
type Reducer struct {
	catalog *config.PlantCatalog
	rng     RandomSource
}

// NewReducer 创建状态转换器
func NewReducer(catalog *config.PlantCatalog, rng RandomSource) *Reducer {
	return &Reducer{
		catalog: catalog,
		rng:     rng,
	}
}

// Apply 应用一个事件，返回新状态以及状态是否发生变化
func (r *Reducer) Apply(s LawnState, ev Event) (LawnState, bool) {
	// Reveal 阶段不再接受任何操作
	if s.Phase == types.PhaseReveal {
		return s, false
	}

	switch e := ev.(type) {
	case DrawRequested:
		return Draw(s, r.catalog, r.rng)
	case ReadyRequested:
		return Ready(s)
	case DragStarted:
		return StartDrag(s, e.Source, e.Index)
	case DragEnded:
		return EndDrag(s)
	case DropToGrid:
		return DropOnGrid(s, e.Index)
	case DropToBench:
		return DropOnBench(s)
	}
	return s, false
}

// StartDrag 记录拖拽选择；来源位置为空时取消手势
func StartDrag(s LawnState, source types.DragSource, index int) (LawnState, bool) {
	var plant *PlantInstance
	switch source {
	case types.DragFromBench:
		if index >= 0 && index < len(s.Bench) {
			plant = s.Bench[index]
		}
	case types.DragFromGrid:
		if validGridIndex(index) {
			plant = s.Grid[index]
		}
	}

	if plant == nil {
		return s, false
	}

	next := s
	next.Drag = &DragSelection{Source: source, Index: index, Plant: plant}
	return next, true
}

// EndDrag 清除拖拽选择，不修改备选区和草坪
func EndDrag(s LawnState) (LawnState, bool) {
	if s.Drag == nil {
		return s, false
	}
	next := s
	next.Drag = nil
	return next, true
}

// DropOnGrid 把拖拽中的实例放到 target 格子
//
//   - 来自备选区：从备选区移除；目标格原有实例追加到备选区末尾
//   - 来自草坪同一格：空操作
//   - 来自草坪其他格：两格内容互换（目标为空则源格变空）
func DropOnGrid(s LawnState, target int) (LawnState, bool) {
	if s.Drag == nil || !validGridIndex(target) {
		return s, false
	}
	drag := s.Drag
	if drag.Plant == nil {
		return EndDrag(s)
	}

	switch drag.Source {
	case types.DragFromBench:
		benchIndex := s.BenchIndexOf(drag.Plant.InstanceID)
		if benchIndex < 0 {
			return EndDrag(s)
		}

		next := s.Clone()
		displaced := next.Grid[target]
		next.Bench = append(next.Bench[:benchIndex], next.Bench[benchIndex+1:]...)
		if displaced != nil {
			next.Bench = append(next.Bench, displaced)
		}
		next.Grid[target] = drag.Plant
		next.Drag = nil
		return next, true

	case types.DragFromGrid:
		if drag.Index == target || !validGridIndex(drag.Index) {
			return EndDrag(s)
		}

		moving := s.Grid[drag.Index]
		if moving == nil || moving.InstanceID != drag.Plant.InstanceID {
			return EndDrag(s)
		}

		next := s.Clone()
		next.Grid[drag.Index] = next.Grid[target]
		next.Grid[target] = moving
		next.Drag = nil
		return next, true
	}

	return s, false
}

// DropOnBench 把草坪上的实例收回备选区末尾
// 来自备选区的拖拽落回备选区只清除选择，备选区不变
func DropOnBench(s LawnState) (LawnState, bool) {
	if s.Drag == nil {
		return s, false
	}
	if s.Drag.Source != types.DragFromGrid {
		return EndDrag(s)
	}
	drag := s.Drag
	if drag.Plant == nil || !validGridIndex(drag.Index) {
		return EndDrag(s)
	}

	moving := s.Grid[drag.Index]
	if moving == nil || moving.InstanceID != drag.Plant.InstanceID {
		return EndDrag(s)
	}

	next := s.Clone()
	next.Grid[drag.Index] = nil
	next.Bench = append(next.Bench, moving)
	next.Drag = nil
	return next, true
}

// Ready 所有实例都已种到草坪上时进入 Reveal 阶段（不可逆）
func Ready(s LawnState) (LawnState, bool) {
	if !ComputeMetrics(s).ReadyEnabled {
		return s, false
	}
	next := s
	next.Phase = types.PhaseReveal
	next.Drag = nil
	return next, true
}
