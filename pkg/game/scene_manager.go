package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	debugOverlay bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 新场景继承当前的调试叠加层状态
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if toggler, ok := scene.(DebugToggler); ok {
		toggler.SetDebugOverlay(sm.debugOverlay)
	}
	log.Printf("[SceneManager] Switched scene: %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SetDebugOverlay 开关调试叠加层并通知当前场景
func (sm *SceneManager) SetDebugOverlay(enabled bool) {
	sm.debugOverlay = enabled
	if toggler, ok := sm.currentScene.(DebugToggler); ok {
		toggler.SetDebugOverlay(enabled)
	}
}

// DebugOverlay 返回调试叠加层是否开启
func (sm *SceneManager) DebugOverlay() bool {
	return sm.debugOverlay
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
