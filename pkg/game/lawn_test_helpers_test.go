package game

import (
	"testing"

	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/types"
)

// sequenceRandom 按固定序列返回随机数，用于可重复的抽卡测试
type sequenceRandom struct {
	values []int
	next   int
}

func (r *sequenceRandom) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// newTestCatalog 创建含 3 个条目的植物图鉴
func newTestCatalog() *config.PlantCatalog {
	return &config.PlantCatalog{
		Plants: []config.PlantEntry{
			{ID: "peashooter", Name: "Peashooter", Role: "Attacker", Image: "IMAGE_PLANT_PEASHOOTER"},
			{ID: "sunflower", Name: "Sunflower", Role: "Producer", Image: "IMAGE_PLANT_SUNFLOWER"},
			{ID: "wallnut", Name: "Wall-nut", Role: "Defender", Image: "IMAGE_PLANT_WALLNUT"},
		},
	}
}

// newTestZombies 创建 4 个僵尸的图鉴
func newTestZombies() *config.ZombieCatalog {
	return &config.ZombieCatalog{
		Zombies: []config.ZombieEntry{
			{ID: "zombie-1", Name: "Walker", Image: "IMAGE_ZOMBIE_WALKER"},
			{ID: "zombie-2", Name: "Buckethead", Image: "IMAGE_ZOMBIE_BUCKETHEAD"},
			{ID: "zombie-3", Name: "Conehead", Image: "IMAGE_ZOMBIE_CONEHEAD"},
			{ID: "zombie-4", Name: "Flag Zombie", Image: "IMAGE_ZOMBIE_FLAG"},
		},
	}
}

// drawN 连续抽卡 n 次
func drawN(t *testing.T, s LawnState, n int, rng RandomSource) LawnState {
	t.Helper()
	catalog := newTestCatalog()
	for i := 0; i < n; i++ {
		s, _ = Draw(s, catalog, rng)
	}
	return s
}

// placeAllOnGrid 把备选区的实例依次种到格子 0..n-1
func placeAllOnGrid(t *testing.T, s LawnState) LawnState {
	t.Helper()
	target := 0
	for len(s.Bench) > 0 {
		for s.Grid[target] != nil {
			target++
		}
		var ok bool
		s, ok = StartDrag(s, types.DragFromBench, 0)
		if !ok {
			t.Fatalf("StartDrag on bench failed with bench=%d", len(s.Bench))
		}
		s, ok = DropOnGrid(s, target)
		if !ok {
			t.Fatalf("DropOnGrid(%d) failed", target)
		}
	}
	return s
}

// countInstances 统计实例ID出现次数，用于检测丢失或重复
func countInstances(s LawnState) map[string]int {
	counts := make(map[string]int)
	for _, plant := range s.Instances() {
		counts[plant.InstanceID]++
	}
	return counts
}
