package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// DebugToggler 是一个可选接口，场景实现后可响应调试叠加层开关（G 键）
type DebugToggler interface {
	SetDebugOverlay(enabled bool)
}
