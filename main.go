package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/pvz-setup/pkg/app"
	"github.com/decker502/pvz-setup/pkg/config"
	"github.com/decker502/pvz-setup/pkg/embedded"
	"github.com/decker502/pvz-setup/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	seed        = flag.Int64("seed", 0, "抽卡随机种子（0 表示使用当前时间）")
	plantsPath  = flag.String("plants", config.DefaultPlantCatalogPath, "植物图鉴路径")
	zombiesPath = flag.String("zombies", config.DefaultZombieCatalogPath, "僵尸图鉴路径")
	fullscreen  = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Main] Warning: storage directory unavailable: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:           *verbose,
		Seed:              *seed,
		PlantCatalogPath:  *plantsPath,
		ZombieCatalogPath: *zombiesPath,
		Fullscreen:        *fullscreen,
	})
	if err != nil {
		reportFatal(os.Stderr, "初始化失败", err)
		os.Exit(1)
	}

	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[Main] Storage path: %s", path)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Plants vs Zombies Stimulator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		reportFatal(os.Stderr, "运行失败", err)
		os.Exit(1)
	}
}

// reportFatal 输出致命错误，不经过 log（非 verbose 模式下 log 输出被丢弃）
func reportFatal(w io.Writer, stage string, err error) {
	fmt.Fprintf(w, "%s: %v\n", stage, err)
}
