package game

import (
	"fmt"

	"github.com/decker502/pvz-setup/pkg/config"
)

// RandomSource 抽卡使用的随机源，*rand.Rand 满足该接口
// 测试中可注入固定序列
type RandomSource interface {
	// Intn 返回 [0, n) 内的随机整数
	Intn(n int) int
}

// Draw 从图鉴中均匀随机抽取一株植物放入备选区末尾
//
// 配额用尽、图鉴为空或已经进入 Reveal 阶段时不做任何事，
// 返回原状态和 false。
func Draw(s LawnState, catalog *config.PlantCatalog, rng RandomSource) (LawnState, bool) {
	if !ComputeMetrics(s).CanDraw || catalog.Len() == 0 || rng == nil {
		return s, false
	}

	index := rng.Intn(catalog.Len())
	if index < 0 || index >= catalog.Len() {
		return s, false
	}

	next := s.Clone()
	next.Bench = append(next.Bench, newInstance(catalog.At(index), next.NextSeq))
	next.NextSeq++
	return next, true
}

// newInstance 为图鉴条目分配实例ID
func newInstance(entry config.PlantEntry, seq uint64) *PlantInstance {
	return &PlantInstance{
		PlantEntry: entry,
		InstanceID: fmt.Sprintf("%s-%d", entry.ID, seq),
	}
}
