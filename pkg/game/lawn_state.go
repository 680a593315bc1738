package game

import (
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/types"
)

// PlantInstance 抽卡得到的植物实例
// 创建后不可修改；任一时刻只属于备选区或某一个草坪格子
type PlantInstance struct {
	config.PlantEntry

	// InstanceID 全局唯一，格式 "<图鉴ID>-<序号>"
	InstanceID string
}

// DragSelection 当前拖拽中的对象，只在一次拖拽手势期间存在
type DragSelection struct {
	Source types.DragSource
	Index  int
	Plant  *PlantInstance
}

// LawnState 布阵界面的完整状态
//
// 状态转换总是返回新值：备选区切片和草坪数组整体替换，
// 不会修改传入的状态，因此每次转换对下一帧渲染来说都是原子的。
type LawnState struct {
	// Bench 备选区，顺序仅用于显示
	Bench []*PlantInstance

	// Grid 草坪格子，索引 = row*GridColumns + col，nil 表示空格
	Grid [config.GridSize]*PlantInstance

	// Drag 当前拖拽选择，nil 表示没有进行中的拖拽
	Drag *DragSelection

	Phase types.Phase

	// NextSeq 下一个实例序号（单调递增）
	NextSeq uint64
}

// NewLawnState 创建初始状态：空备选区、45 个空格、布阵阶段
func NewLawnState() LawnState {
	return LawnState{
		Bench: make([]*PlantInstance, 0, config.MaxPlants),
		Phase: types.PhaseSetup,
	}
}

// Clone 返回独立的副本（草坪数组按值复制，备选区切片重新分配）
func (s LawnState) Clone() LawnState {
	out := s
	out.Bench = make([]*PlantInstance, len(s.Bench), max(len(s.Bench), config.MaxPlants))
	copy(out.Bench, s.Bench)
	return out
}

// SlotAt 按行列读取草坪格子
func (s LawnState) SlotAt(row, col int) *PlantInstance {
	if row < 0 || row >= config.GridRows || col < 0 || col >= config.GridColumns {
		return nil
	}
	return s.Grid[row*config.GridColumns+col]
}

// BenchIndexOf 返回实例在备选区中的位置，不存在返回 -1
func (s LawnState) BenchIndexOf(instanceID string) int {
	for i, plant := range s.Bench {
		if plant.InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// Instances 按备选区、草坪的顺序列出全部实例
func (s LawnState) Instances() []*PlantInstance {
	out := make([]*PlantInstance, 0, config.MaxPlants)
	out = append(out, s.Bench...)
	for _, plant := range s.Grid {
		if plant != nil {
			out = append(out, plant)
		}
	}
	return out
}

// validGridIndex 检查格子索引是否在 [0, GridSize) 范围内
func validGridIndex(index int) bool {
	return index >= 0 && index < config.GridSize
}
