package entities

import (
	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/decker502/pvz-setup/pkg/utils"
)

// NewDropSlot 创建一个拖放区域实体
func NewDropSlot(em *ecs.EntityManager, kind components.DropSlotKind, index int, rect utils.Rect) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: rect.X, Y: rect.Y})
	ecs.AddComponent(em, entity, &components.DropSlotComponent{
		Kind:   kind,
		Index:  index,
		Width:  rect.W,
		Height: rect.H,
	})
	return entity
}

// NewLawnSlots 创建草坪 45 个格子、备选区 MaxPlants 个卡片位置以及整个备选区面板
// 返回创建的实体数量
func NewLawnSlots(em *ecs.EntityManager) int {
	count := 0
	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridColumns; col++ {
			index := utils.GridIndex(row, col)
			NewDropSlot(em, components.DropSlotGrid, index, utils.CellRect(index))
			count++
		}
	}
	for index := 0; index < config.BenchSlotCount; index++ {
		NewDropSlot(em, components.DropSlotBenchCard, index, utils.BenchSlotRect(index))
		count++
	}
	NewDropSlot(em, components.DropSlotBenchArea, 0, utils.BenchAreaRect())
	count++
	return count
}

// NewDragState 创建拖拽手势状态单例
func NewDragState(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.DragStateComponent{})
	return entity
}
