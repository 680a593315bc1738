// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/game"
	"github.com/decker502/pvz-setup/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "pvz_setup"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 抽卡随机种子，0 表示使用当前时间
	Seed int64
	// PlantCatalogPath / ZombieCatalogPath 图鉴路径，为空使用默认路径
	PlantCatalogPath  string
	ZombieCatalogPath string
	// Fullscreen 强制以全屏启动（否则使用保存的偏好）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	plantPath := cfg.PlantCatalogPath
	if plantPath == "" {
		plantPath = config.DefaultPlantCatalogPath
	}
	zombiePath := cfg.ZombieCatalogPath
	if zombiePath == "" {
		zombiePath = config.DefaultZombieCatalogPath
	}

	plants, err := config.LoadPlantCatalog(plantPath)
	if err != nil {
		return nil, fmt.Errorf("植物图鉴加载失败: %w", err)
	}
	zombies, err := config.LoadZombieCatalog(zombiePath)
	if err != nil {
		return nil, fmt.Errorf("僵尸图鉴加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %d plants from %s, %d zombies from %s", plants.Len(), plantPath, len(zombies.Zombies), zombiePath)

	// 创建资源管理器
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	// 单张图片失败时渲染使用占位图，不中断启动
	for _, group := range []string{"plants", "zombies"} {
		if err := resourceManager.LoadResourceGroup(group); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	lawnStrings, err := game.NewLawnStrings(game.DefaultLawnStringsPath)
	if err != nil {
		return nil, fmt.Errorf("界面文本加载失败: %w", err)
	}

	// 显示偏好；存储不可用时进入降级模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Draw seed: %d", seed)
	session := game.NewSetupSession(plants, zombies, rand.New(rand.NewSource(seed)))

	scene, err := scenes.NewLawnSetupScene(resourceManager, lawnStrings, session)
	if err != nil {
		return nil, fmt.Errorf("布阵界面创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetDebugOverlay(settingsManager.GetSettings().GridOverlay)
	sceneManager.SwitchTo(scene)

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// G 切换格子行列编号
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.toggleGridOverlay()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

func (a *App) toggleGridOverlay() {
	enabled := !a.sceneManager.DebugOverlay()
	a.sceneManager.SetDebugOverlay(enabled)

	a.settingsManager.SetGridOverlay(enabled)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
