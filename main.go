package main

import (
	"flag"
	"log"

	"github.com/decker502/cookieclicker/assets"
	"github.com/decker502/cookieclicker/pkg/app"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细日志")
	appName  = flag.String("app-name", app.DefaultAppName, "存档目录使用的应用名")
	autoload = flag.Bool("autoload", false, "启动时自动读取存档")
)

func main() {
	flag.Parse()

	embedded.Init(assets.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		AppName:  *appName,
		Autoload: *autoload,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Cookie Clicker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
