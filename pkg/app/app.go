// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/embedded"
	"github.com/decker502/cookieclicker/pkg/game"
	"github.com/decker502/cookieclicker/pkg/scenes"
	"github.com/decker502/cookieclicker/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// DefaultAppName gdata 存储使用的应用名（决定存档目录）
	DefaultAppName = "cookie_clicker"

	catalogPath   = "data/catalog.yaml"
	particlesPath = "data/particles.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// AppName gdata 应用名，为空时使用 DefaultAppName
	AppName string
	// Autoload 启动时自动读取存档
	Autoload bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
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

	catalog, err := config.LoadCatalogConfig(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("商店目录加载失败: %w", err)
	}
	gameState, err := game.NewGameState(catalog)
	if err != nil {
		return nil, fmt.Errorf("游戏状态初始化失败: %w", err)
	}

	gdataManager := OpenStorage(cfg.AppName)
	settingsManager := game.NewSettingsManager(gdataManager)
	saveManager := game.NewSaveManager(gdataManager)

	// 初始化音频上下文和点击音效
	audioContext := audio.NewContext(sound.SampleRate)
	clickPlayer, err := sound.NewClickPlayer(audioContext)
	if err != nil {
		log.Printf("[App] Warning: click sound unavailable: %v", err)
	}

	scene, err := scenes.NewClickerScene(scenes.ClickerSceneConfig{
		GameState:       gameState,
		SaveManager:     saveManager,
		SettingsManager: settingsManager,
		ParticleConfig:  LoadCrumbConfig(),
		ClickSound:      clickPlayer,
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		Autoload:        cfg.Autoload,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
	}, nil
}

// OpenStorage 打开 gdata 存储
// 失败时返回 nil，存档和设置进入降级模式（仅保存在内存中）
func OpenStorage(appName string) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[App] Warning: failed to open gdata storage %q: %v", appName, err)
		return nil
	}
	log.Printf("[App] gdata storage opened: %s", appName)
	return manager
}

// LoadCrumbConfig 加载碎屑粒子配置
// 配置文件可以省略；文件缺失或校验失败时使用默认参数
func LoadCrumbConfig() *config.CrumbParticleConfig {
	if !embedded.Exists(particlesPath) {
		log.Printf("[App] %s not found, using default crumb particles", particlesPath)
		return config.DefaultCrumbParticleConfig()
	}

	particleConfig, err := config.LoadParticleConfig(particlesPath)
	if err != nil {
		log.Printf("[App] Warning: %v, using default crumb particles", err)
		return config.DefaultCrumbParticleConfig()
	}
	return &particleConfig.Crumb
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，并使用线性滤波缩放
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

// Close 关闭当前场景（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}
