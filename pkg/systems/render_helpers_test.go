package systems

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/decker502/pvz-setup/pkg/components"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/game"
	"github.com/decker502/pvz-setup/pkg/types"
	"github.com/decker502/pvz-setup/pkg/utils"
)

// keyStrings 直接返回键名
type keyStrings struct{}

func (keyStrings) GetString(key string) string { return key }

func TestHeaderStats(t *testing.T) {
	view := game.RenderView{
		Metrics: game.Metrics{Placed: 4, Created: 7, RemainingQuota: 3},
	}

	stats := headerStats(view, keyStrings{})
	want := []statItem{
		{Label: "STAT_DRAWN", Value: 7},
		{Label: "STAT_ON_FIELD", Value: 4},
		{Label: "STAT_SLOTS_LEFT", Value: 3},
	}
	if len(stats) != len(want) {
		t.Fatalf("Expected %d stats, got %d", len(want), len(stats))
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("Stat %d: expected %+v, got %+v", i, want[i], stats[i])
		}
	}
}

func TestBenchHighlighted(t *testing.T) {
	plant := &game.PlantInstance{InstanceID: "peashooter-0"}

	tests := []struct {
		name string
		view game.RenderView
		want bool
	}{
		{"没有拖拽", game.RenderView{Phase: types.PhaseSetup}, false},
		{"从备选区拖拽", game.RenderView{Phase: types.PhaseSetup, Drag: &game.DragSelection{Source: types.DragFromBench, Plant: plant}}, false},
		{"从草坪拖拽", game.RenderView{Phase: types.PhaseSetup, Drag: &game.DragSelection{Source: types.DragFromGrid, Index: 4, Plant: plant}}, true},
		{"Reveal 阶段", game.RenderView{Phase: types.PhaseReveal, Drag: &game.DragSelection{Source: types.DragFromGrid, Plant: plant}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := benchHighlighted(tt.view); got != tt.want {
				t.Errorf("benchHighlighted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDragSource(t *testing.T) {
	view := game.RenderView{Drag: &game.DragSelection{Source: types.DragFromGrid, Index: 12}}
	if !isDragSource(view, types.DragFromGrid, 12) {
		t.Error("Expected grid 12 to be the drag source")
	}
	if isDragSource(view, types.DragFromBench, 12) || isDragSource(view, types.DragFromGrid, 13) {
		t.Error("Expected other positions not to be the drag source")
	}
	if isDragSource(game.RenderView{}, types.DragFromGrid, 12) {
		t.Error("Expected no drag source without selection")
	}
}

func TestGridLabel(t *testing.T) {
	tests := map[int]string{
		0:  "R1 C1",
		8:  "R1 C9",
		9:  "R2 C1",
		44: "R5 C9",
	}
	for index, want := range tests {
		if got := gridLabel(index); got != want {
			t.Errorf("gridLabel(%d) = %q, want %q", index, got, want)
		}
	}
}

func TestButtonFillColor(t *testing.T) {
	base := color.RGBA{100, 150, 50, 255}
	button := &components.ButtonComponent{FillColor: base, Enabled: true, State: components.UINormal}

	if buttonFillColor(button) != base {
		t.Error("Expected base color in normal state")
	}

	button.State = components.UIHovered
	if c := buttonFillColor(button); c.R <= base.R || c.G <= base.G {
		t.Errorf("Expected brighter color when hovered, got %+v", c)
	}

	button.State = components.UIClicked
	if c := buttonFillColor(button); c.R >= base.R {
		t.Errorf("Expected darker color when clicked, got %+v", c)
	}

	button.Enabled = false
	if c := buttonFillColor(button); c == base {
		t.Error("Expected gray color when disabled")
	}
}

func TestShadeClamps(t *testing.T) {
	c := shade(color.RGBA{250, 10, 0, 200}, 2)
	if c.R != 255 || c.G != 20 || c.B != 0 || c.A != 200 {
		t.Errorf("Unexpected shaded color: %+v", c)
	}
}

// mapStrings 固定的文本表，缺失时返回 "[KEY]"
type mapStrings map[string]string

func (m mapStrings) GetString(key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return "[" + key + "]"
}

func TestGeneratorHintUsesQuota(t *testing.T) {
	hint := generatorHint(mapStrings{"RANDOM_PLANTS_HINT": "Up to %d pulls, duplicates are possible."})
	want := fmt.Sprintf("Up to %d pulls, duplicates are possible.", config.MaxPlants)
	if hint != want {
		t.Errorf("Expected %q, got %q", want, hint)
	}

	if got := generatorHint(mapStrings{"RANDOM_PLANTS_HINT": "Draw some plants."}); got != "Draw some plants." {
		t.Errorf("Expected text without placeholder unchanged, got %q", got)
	}
	if got := generatorHint(mapStrings{}); got != "[RANDOM_PLANTS_HINT]" {
		t.Errorf("Expected missing key marker, got %q", got)
	}
}

func TestDropTargetCell(t *testing.T) {
	plant := &game.PlantInstance{InstanceID: "peashooter-0"}
	dragging := game.RenderView{Drag: &game.DragSelection{Source: types.DragFromBench, Plant: plant}}
	cell := utils.CellRect(utils.GridIndex(2, 5))

	tests := []struct {
		name      string
		view      game.RenderView
		drag      *components.DragStateComponent
		wantIndex int
		wantOK    bool
	}{
		{"指针在格子上", dragging, &components.DragStateComponent{Dragging: true, CursorX: cell.X + 5, CursorY: cell.Y + 5}, 23, true},
		{"指针在草坪外", dragging, &components.DragStateComponent{Dragging: true, CursorX: config.PanelX + 10, CursorY: cell.Y}, 0, false},
		{"尚未超过阈值", dragging, &components.DragStateComponent{CursorX: cell.X + 5, CursorY: cell.Y + 5}, 0, false},
		{"没有选择", game.RenderView{}, &components.DragStateComponent{Dragging: true, CursorX: cell.X + 5, CursorY: cell.Y + 5}, 0, false},
		{"没有手势状态", dragging, nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := dropTargetCell(tt.view, tt.drag)
			if ok != tt.wantOK || index != tt.wantIndex {
				t.Errorf("dropTargetCell() = (%d, %v), want (%d, %v)", index, ok, tt.wantIndex, tt.wantOK)
			}
		})
	}
}
