// cookieterm 是点击游戏的终端版本
//
// 与桌面版共用同一份存档（gdata 应用名相同时）和同一份嵌入数据。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/cookieclicker/assets"
	"github.com/decker502/cookieclicker/pkg/app"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/embedded"
	"github.com/decker502/cookieclicker/pkg/game"
	"github.com/gdamore/tcell/v2"
)

var (
	appName  = flag.String("app-name", app.DefaultAppName, "存档目录使用的应用名")
	autoload = flag.Bool("autoload", false, "启动时自动读取存档")
	logFile  = flag.String("log", "", "日志文件（终端被占用，默认丢弃日志）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cookieterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(assets.FS)
	catalog, err := config.LoadCatalogConfig("data/catalog.yaml")
	if err != nil {
		return err
	}
	gameState, err := game.NewGameState(catalog)
	if err != nil {
		return err
	}

	gdataManager := app.OpenStorage(*appName)
	saveManager := game.NewSaveManager(gdataManager)
	settingsManager := game.NewSettingsManager(gdataManager)

	var playClick func()
	if b := newBeeper(); b != nil {
		defer b.close()
		playClick = b.play
	}

	c := newClicker(gameState, saveManager, settingsManager, playClick)
	if *autoload && saveManager.HasSave() {
		c.load()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newTerminal(screen, c).run()
	return nil
}
