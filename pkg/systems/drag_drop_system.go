package systems

import (
	"log"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/decker502/pvz-setup/pkg/types"
	"github.com/decker502/pvz-setup/pkg/utils"
)

// LawnController 布阵状态的拖拽入口，*game.SetupSession 满足该接口
type LawnController interface {
	StartDrag(source types.DragSource, index int) bool
	EndDrag() bool
	DropOnGrid(index int) bool
	DropOnBench() bool
	Phase() types.Phase
}

// DragDropSystem 把指针手势翻译成拖拽事件
//
// 手势流程：
//   - 按下：记录按下位置和下方的来源（备选卡片或草坪格子）
//   - 移动超过阈值：发送 StartDrag，之后植物跟随指针
//   - 释放：落在草坪格子上发送 DropOnGrid，落在备选区发送 DropOnBench，
//     最后总是发送 EndDrag（放置已清除选择时为空操作）
type DragDropSystem struct {
	entityManager *ecs.EntityManager
	controller    LawnController
	stateEntity   ecs.EntityID
	threshold     float64
}

// NewDragDropSystem 创建拖放系统
//
// 参数：
//   - em: 实体管理器（需要已创建拖放区域实体和拖拽状态单例）
//   - controller: 布阵会话
//   - stateEntity: DragStateComponent 所在实体
//   - threshold: 拖拽阈值（像素）
func NewDragDropSystem(em *ecs.EntityManager, controller LawnController, stateEntity ecs.EntityID, threshold float64) *DragDropSystem {
	return &DragDropSystem{
		entityManager: em,
		controller:    controller,
		stateEntity:   stateEntity,
		threshold:     threshold,
	}
}

// Update 读取指针状态并处理
func (s *DragDropSystem) Update(deltaTime float64) {
	pressed, x, y := utils.GetPointerState()
	s.HandlePointer(pressed, float64(x), float64(y))
}

// State 返回拖拽手势状态（渲染层用它绘制跟随指针的植物）
func (s *DragDropSystem) State() *components.DragStateComponent {
	state, _ := ecs.GetComponent[*components.DragStateComponent](s.entityManager, s.stateEntity)
	return state
}

// HandlePointer 处理一帧的指针状态
func (s *DragDropSystem) HandlePointer(pressed bool, x, y float64) {
	state := s.State()
	if state == nil {
		return
	}

	if s.controller.Phase() != types.PhaseSetup {
		*state = components.DragStateComponent{}
		return
	}

	state.CursorX, state.CursorY = x, y

	switch {
	case pressed && !state.Pressed:
		s.beginPress(state, x, y)

	case pressed && state.Pressed:
		if state.HasSource && !state.Dragging &&
			utils.ExceedsThreshold(state.PressX, state.PressY, x, y, s.threshold) {
			if s.controller.StartDrag(state.Source, state.Index) {
				state.Dragging = true
			} else {
				// 来源为空，本次手势不再尝试
				state.HasSource = false
			}
		}

	case !pressed && state.Pressed:
		if state.Dragging {
			s.drop(x, y)
			s.controller.EndDrag()
		}
		*state = components.DragStateComponent{CursorX: x, CursorY: y}
	}
}

// beginPress 记录按下位置和来源
func (s *DragDropSystem) beginPress(state *components.DragStateComponent, x, y float64) {
	*state = components.DragStateComponent{
		Pressed: true,
		PressX:  x,
		PressY:  y,
		CursorX: x,
		CursorY: y,
	}

	slot, ok := s.slotAt(x, y, components.DropSlotBenchCard, components.DropSlotGrid)
	if !ok {
		return
	}
	state.HasSource = true
	state.Index = slot.Index
	if slot.Kind == components.DropSlotBenchCard {
		state.Source = types.DragFromBench
	} else {
		state.Source = types.DragFromGrid
	}
}

// drop 根据释放位置发送放置事件；落在其他地方只结束拖拽
func (s *DragDropSystem) drop(x, y float64) {
	if slot, ok := s.slotAt(x, y, components.DropSlotGrid); ok {
		s.controller.DropOnGrid(slot.Index)
		return
	}
	if _, ok := s.slotAt(x, y, components.DropSlotBenchArea); ok {
		s.controller.DropOnBench()
		return
	}
	log.Printf("[DragDropSystem] Released outside any drop target at (%.0f, %.0f)", x, y)
}

// slotAt 返回包含 (x, y) 且类型属于 kinds 的第一个区域
func (s *DragDropSystem) slotAt(x, y float64, kinds ...components.DropSlotKind) (components.DropSlotComponent, bool) {
	entities := ecs.GetEntitiesWith2[*components.DropSlotComponent, *components.PositionComponent](s.entityManager)
	for _, kind := range kinds {
		for _, entityID := range entities {
			slot, _ := ecs.GetComponent[*components.DropSlotComponent](s.entityManager, entityID)
			if slot.Kind != kind {
				continue
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
			if slot.Contains(*pos, x, y) {
				return *slot, true
			}
		}
	}
	return components.DropSlotComponent{}, false
}
