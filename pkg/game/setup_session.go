package game

import (
	"log"

	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/types"
)

// RenderView 每帧提供给渲染层的只读快照
type RenderView struct {
	Bench   []*PlantInstance
	Grid    [config.GridSize]*PlantInstance
	Drag    *DragSelection
	Phase   types.Phase
	Metrics Metrics

	// DrawEnabled / ReadyEnabled 决定按钮是否可点击
	DrawEnabled  bool
	ReadyEnabled bool

	Zombies []config.ZombieEntry

	// Revision 每次状态变化递增
	Revision uint64
}

// SetupSession 布阵界面的状态容器
//
// 持有当前 LawnState，所有修改都通过 Dispatch 完成，
// 每个事件完整处理后才处理下一个（单线程游戏循环内调用）。
type SetupSession struct {
	state    LawnState
	reducer  *Reducer
	zombies  []config.ZombieEntry
	revision uint64
}

// NewSetupSession 创建布阵会话
//
// 参数：
//   - plants: 植物图鉴
//   - zombies: 僵尸图鉴，可为 nil（Reveal 阶段不显示僵尸）
//   - rng: 抽卡随机源
func NewSetupSession(plants *config.PlantCatalog, zombies *config.ZombieCatalog, rng RandomSource) *SetupSession {
	session := &SetupSession{
		state:   NewLawnState(),
		reducer: NewReducer(plants, rng),
	}
	if zombies != nil {
		session.zombies = append([]config.ZombieEntry(nil), zombies.Zombies...)
	}

	log.Printf("[SetupSession] Created: %d plants in catalog, quota=%d", plants.Len(), config.MaxPlants)
	return session
}

// Dispatch 应用事件并整体替换状态，返回状态是否变化
func (s *SetupSession) Dispatch(ev Event) bool {
	next, changed := s.reducer.Apply(s.state, ev)
	if !changed {
		log.Printf("[SetupSession] Ignored %s (phase=%s)", ev, s.state.Phase)
		return false
	}

	prevPhase := s.state.Phase
	s.state = next
	s.revision++

	m := ComputeMetrics(next)
	log.Printf("[SetupSession] Applied %s: bench=%d, placed=%d, remaining=%d",
		ev, len(next.Bench), m.Placed, m.RemainingQuota)
	if prevPhase != next.Phase {
		log.Printf("[SetupSession] Phase %s -> %s", prevPhase, next.Phase)
	}
	return true
}

// State 返回当前状态的副本
func (s *SetupSession) State() LawnState {
	return s.state.Clone()
}

// Phase 返回当前阶段
func (s *SetupSession) Phase() types.Phase {
	return s.state.Phase
}

// View 生成渲染快照
func (s *SetupSession) View() RenderView {
	state := s.state.Clone()
	m := ComputeMetrics(state)
	return RenderView{
		Bench:        state.Bench,
		Grid:         state.Grid,
		Drag:         state.Drag,
		Phase:        state.Phase,
		Metrics:      m,
		DrawEnabled:  m.CanDraw,
		ReadyEnabled: m.ReadyEnabled,
		Zombies:      s.zombies,
		Revision:     s.revision,
	}
}

// RequestDraw 抽一株植物
func (s *SetupSession) RequestDraw() bool {
	return s.Dispatch(DrawRequested{})
}

// RequestReady 进入僵尸展示阶段
func (s *SetupSession) RequestReady() bool {
	return s.Dispatch(ReadyRequested{})
}

// StartDrag 开始拖拽
func (s *SetupSession) StartDrag(source types.DragSource, index int) bool {
	return s.Dispatch(DragStarted{Source: source, Index: index})
}

// EndDrag 结束拖拽
func (s *SetupSession) EndDrag() bool {
	return s.Dispatch(DragEnded{})
}

// DropOnGrid 放到草坪格子
func (s *SetupSession) DropOnGrid(index int) bool {
	return s.Dispatch(DropToGrid{Index: index})
}

// DropOnBench 放回备选区
func (s *SetupSession) DropOnBench() bool {
	return s.Dispatch(DropToBench{})
}
