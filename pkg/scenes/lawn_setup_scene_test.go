package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/ecs"
	"github.com/decker502/pvz-setup/pkg/entities"
	"github.com/decker502/pvz-setup/pkg/game"
	"github.com/decker502/pvz-setup/pkg/types"
	"github.com/decker502/pvz-setup/pkg/utils"
)

// firstRandom 总是抽到图鉴第一项
type firstRandom struct{}

func (firstRandom) Intn(n int) int { return 0 }

const testLawnStrings = `[DRAW_PLANT]
Draw Plant

[LIMIT_REACHED]
Limit Reached

[READY]
Ready!
`

func newTestScene(t *testing.T) *LawnSetupScene {
	t.Helper()

	lawnStrings, err := game.ParseLawnStrings(strings.NewReader(testLawnStrings))
	if err != nil {
		t.Fatalf("Failed to parse strings: %v", err)
	}
	plants := &config.PlantCatalog{Plants: []config.PlantEntry{
		{ID: "peashooter", Name: "Peashooter", Role: "Attacker", Image: "IMAGE_PLANT_PEASHOOTER"},
	}}
	zombies := &config.ZombieCatalog{Zombies: []config.ZombieEntry{
		{ID: "zombie-1", Name: "Walker", Image: "IMAGE_ZOMBIE_WALKER"},
		{ID: "zombie-2", Name: "Buckethead", Image: "IMAGE_ZOMBIE_BUCKETHEAD"},
		{ID: "zombie-3", Name: "Conehead", Image: "IMAGE_ZOMBIE_CONEHEAD"},
		{ID: "zombie-4", Name: "Flag Zombie", Image: "IMAGE_ZOMBIE_FLAG"},
	}}
	session := game.NewSetupSession(plants, zombies, firstRandom{})

	scene, err := NewLawnSetupScene(game.NewResourceManager(), lawnStrings, session)
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	return scene
}

// pointer 模拟一帧指针输入
func (s *LawnSetupScene) pointer(pressed bool, x, y float64) {
	s.buttonSystem.HandlePointer(pressed, x, y)
	s.dragDropSystem.HandlePointer(pressed, x, y)
	s.syncView()
}

func (s *LawnSetupScene) click(x, y float64) {
	s.pointer(false, x, y)
	s.pointer(true, x, y)
	s.pointer(false, x, y)
}

func (s *LawnSetupScene) drag(fromX, fromY, toX, toY float64) {
	s.pointer(true, fromX, fromY)
	s.pointer(true, toX, toY)
	s.pointer(false, toX, toY)
}

func center(r utils.Rect) (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

var (
	drawButtonX = config.PanelX + config.PanelWidth/2
	drawButtonY = config.DrawButtonY + config.DrawButtonHeight/2

	readyButtonX = config.ReadyButtonX + config.ReadyButtonWidth/2
	readyButtonY = config.ReadyButtonY + config.ReadyButtonHeight/2
)

func (s *LawnSetupScene) button(id ecs.EntityID) *components.ButtonComponent {
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	return button
}

func TestNewLawnSetupScene(t *testing.T) {
	scene := newTestScene(t)

	view := scene.View()
	if view.Phase != types.PhaseSetup {
		t.Errorf("Expected Setup phase, got %s", view.Phase)
	}
	if draw := scene.button(scene.drawButton); !draw.Enabled || !draw.Visible {
		t.Error("Expected draw button enabled and visible")
	}
	if ready := scene.button(scene.readyButton); ready.Enabled || !ready.Visible {
		t.Error("Expected ready button visible but disabled")
	}
}

func TestClickDrawButton(t *testing.T) {
	scene := newTestScene(t)

	scene.click(drawButtonX, drawButtonY)

	view := scene.View()
	if len(view.Bench) != 1 {
		t.Fatalf("Expected 1 benched plant, got %d", len(view.Bench))
	}
	if view.Bench[0].InstanceID != "peashooter-0" {
		t.Errorf("Expected peashooter-0, got %s", view.Bench[0].InstanceID)
	}
}

func TestDrawButtonDisabledAtQuota(t *testing.T) {
	scene := newTestScene(t)

	for i := 0; i < config.MaxPlants+2; i++ {
		scene.click(drawButtonX, drawButtonY)
	}

	view := scene.View()
	if view.Metrics.Created != config.MaxPlants {
		t.Errorf("Expected %d created, got %d", config.MaxPlants, view.Metrics.Created)
	}
	if scene.button(scene.drawButton).Enabled {
		t.Error("Expected draw button disabled at quota")
	}
}

// TestFullSetupFlow 抽满、全部拖到草坪、点击 Ready 进入僵尸展示
func TestFullSetupFlow(t *testing.T) {
	scene := newTestScene(t)

	for i := 0; i < config.MaxPlants; i++ {
		scene.click(drawButtonX, drawButtonY)
	}

	// 总是拖第一张卡片，备选区随之前移
	for i := 0; i < config.MaxPlants; i++ {
		fromX, fromY := center(utils.BenchSlotRect(0))
		toX, toY := center(utils.CellRect(i * 4))
		scene.drag(fromX, fromY, toX, toY)
	}

	view := scene.View()
	if len(view.Bench) != 0 || view.Metrics.Placed != config.MaxPlants {
		t.Fatalf("Expected all plants placed, got bench=%d placed=%d", len(view.Bench), view.Metrics.Placed)
	}
	if !scene.button(scene.readyButton).Enabled {
		t.Fatal("Expected ready button enabled")
	}

	scene.click(readyButtonX, readyButtonY)

	if scene.View().Phase != types.PhaseReveal {
		t.Fatalf("Expected Reveal phase, got %s", scene.View().Phase)
	}
	em := scene.entityManager
	if ecs.HasComponent[*components.ButtonComponent](em, scene.drawButton) ||
		ecs.HasComponent[*components.ButtonComponent](em, scene.readyButton) {
		t.Error("Expected buttons removed in Reveal phase")
	}
	if slots := ecs.GetEntitiesWith1[*components.DropSlotComponent](em); len(slots) != 0 {
		t.Errorf("Expected drop slots removed, got %d", len(slots))
	}
	if scene.dragDropSystem.State() != nil {
		t.Error("Expected drag state removed in Reveal phase")
	}

	// 揭示后的指针输入不再产生拖拽
	fromX, fromY := center(utils.CellRect(0))
	scene.drag(fromX, fromY, fromX+100, fromY)
	if scene.View().Grid[0] == nil || scene.View().Drag != nil {
		t.Error("Expected lawn unchanged after Reveal")
	}

	lane := ecs.GetEntitiesWith1[*entities.ZombieLaneMarker](scene.entityManager)
	if len(lane) != 4 {
		t.Errorf("Expected 4 zombie entities, got %d", len(lane))
	}

	// 再次同步不会重复创建
	scene.click(readyButtonX, readyButtonY)
	lane = ecs.GetEntitiesWith1[*entities.ZombieLaneMarker](scene.entityManager)
	if len(lane) != 4 {
		t.Errorf("Expected zombie lane created once, got %d entities", len(lane))
	}
}

// TestDropOnDrawButtonDoesNotClick 把植物拖到抽卡按钮上释放不会抽卡
func TestDropOnDrawButtonDoesNotClick(t *testing.T) {
	scene := newTestScene(t)
	scene.click(drawButtonX, drawButtonY)

	fromX, fromY := center(utils.BenchSlotRect(0))
	scene.drag(fromX, fromY, drawButtonX, drawButtonY)

	view := scene.View()
	if view.Metrics.Created != 1 {
		t.Errorf("Expected 1 created, got %d", view.Metrics.Created)
	}
	if len(view.Bench) != 1 || view.Drag != nil {
		t.Errorf("Expected plant back on bench with no drag, got bench=%d drag=%v", len(view.Bench), view.Drag)
	}
}

func TestSceneSetDebugOverlay(t *testing.T) {
	scene := newTestScene(t)
	sm := game.NewSceneManager()
	sm.SetDebugOverlay(true)
	sm.SwitchTo(scene)

	if !scene.lawnRenderSystem.DebugOverlay() {
		t.Error("Expected debug overlay inherited from scene manager")
	}
	sm.SetDebugOverlay(false)
	if scene.lawnRenderSystem.DebugOverlay() {
		t.Error("Expected debug overlay off")
	}
}
