package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/entities"
	"github.com/decker502/cookieclicker/pkg/game"
	"github.com/decker502/cookieclicker/pkg/systems"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TickInterval 被动产出的固定节拍（秒）
const TickInterval = 0.1

// tickEpsilon 吸收帧时间累加的浮点误差（6 帧 1/60 秒应当正好触发一次节拍）
const tickEpsilon = 1e-9

// ClickerSceneConfig 点击场景依赖
type ClickerSceneConfig struct {
	GameState       *game.GameState
	SaveManager     *game.SaveManager
	SettingsManager *game.SettingsManager
	ParticleConfig  *config.CrumbParticleConfig // 为 nil 时使用默认参数
	ClickSound      ClickSounder                // 可为 nil（不播放音效）
	Rand            *rand.Rand                  // 粒子随机数源，可为 nil
	Autoload        bool                        // 进入场景时读取存档
}

// ClickerScene 点击游戏主场景（控制器）
//
// 职责：
//   - 处理点击、购买、保存、读取、重置等操作并修改 GameState
//   - 以固定 100ms 节拍累加被动产出
//   - 每次状态变化后重新判定成就并刷新显示内容
//   - 驱动粒子、脉冲、提示和对话框等 ECS 系统
type ClickerScene struct {
	gameState       *game.GameState
	saveManager     *game.SaveManager
	settingsManager *game.SettingsManager
	clickSound      ClickSounder
	autoload        bool

	entityManager      *ecs.EntityManager
	particleSystem     *systems.ParticleSystem
	lifetimeSystem     *systems.LifetimeSystem
	pulseSystem        *systems.PulseSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	dialogInputSystem  *systems.DialogInputSystem
	dialogRenderSystem *systems.DialogRenderSystem
	toastRenderSystem  *systems.ToastRenderSystem
	cookieRenderSystem *systems.CookieRenderSystem

	cookieEntity ecs.EntityID
	buyButtons   map[string]ecs.EntityID // 物品 ID -> 购买按钮实体

	tickAccumulator float64
	view            sceneView

	titleFont *text.GoTextFace
	bodyFont  *text.GoTextFace
	smallFont *text.GoTextFace
}

// NewClickerScene 创建点击场景
//
// 返回：
//   - error: 缺少 GameState / SaveManager / SettingsManager，或字体加载失败
func NewClickerScene(cfg ClickerSceneConfig) (*ClickerScene, error) {
	if cfg.GameState == nil || cfg.SaveManager == nil || cfg.SettingsManager == nil {
		return nil, fmt.Errorf("clicker scene requires game state, save manager and settings manager")
	}

	fontSource, err := utils.LoadUIFontSource()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	scene := &ClickerScene{
		gameState:       cfg.GameState,
		saveManager:     cfg.SaveManager,
		settingsManager: cfg.SettingsManager,
		clickSound:      cfg.ClickSound,
		autoload:        cfg.Autoload,
		entityManager:   em,
		buyButtons:      make(map[string]ecs.EntityID),
		titleFont:       utils.NewFace(fontSource, 28),
		bodyFont:        utils.NewFace(fontSource, 16),
		smallFont:       utils.NewFace(fontSource, 13),
	}

	scene.particleSystem = systems.NewParticleSystem(em, cfg.ParticleConfig, cfg.Rand)
	scene.lifetimeSystem = systems.NewLifetimeSystem(em)
	scene.pulseSystem = systems.NewPulseSystem(em)
	scene.buttonSystem = systems.NewButtonSystem(em)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(em)
	scene.dialogInputSystem = systems.NewDialogInputSystem(em)
	scene.dialogRenderSystem = systems.NewDialogRenderSystem(em, config.GameWindowWidth, config.GameWindowHeight, scene.bodyFont, scene.bodyFont)
	scene.toastRenderSystem = systems.NewToastRenderSystem(em, scene.bodyFont)
	scene.cookieRenderSystem = systems.NewCookieRenderSystem(em)

	scene.cookieEntity = entities.NewCookie(em)
	scene.createCommandButtons()
	scene.createBuyButtons()
	scene.refresh()

	log.Printf("[ClickerScene] Initialized: %d upgrades, %d auto clickers, %d achievements",
		len(cfg.GameState.Upgrades), len(cfg.GameState.AutoClickers), len(cfg.GameState.Achievements))
	return scene, nil
}

// OnEnter 场景激活时调用，按需读取存档
func (s *ClickerScene) OnEnter() {
	if s.autoload && s.saveManager.HasSave() {
		s.LoadGame()
	}
}

// Update 更新场景
func (s *ClickerScene) Update(deltaTime float64) {
	s.handleInput()
	s.advance(deltaTime)
}

// advance 推进与输入无关的部分：被动产出节拍、动画和实体清理
func (s *ClickerScene) advance(deltaTime float64) {
	s.tickAccumulator += deltaTime
	ticked := false
	for s.tickAccumulator >= TickInterval-tickEpsilon {
		s.tickAccumulator -= TickInterval
		s.gameState.Tick(TickInterval)
		ticked = true
	}
	if ticked {
		s.refresh()
	}

	s.particleSystem.Update(deltaTime)
	s.pulseSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// ClickCookie 点击饼干：增加饼干、触发碎屑粒子、脉冲动画和音效
func (s *ClickerScene) ClickCookie() {
	s.gameState.Click()

	settings := s.settingsManager.GetSettings()
	if settings.ShowParticles {
		s.particleSystem.Burst(s.particleSystem.BurstCount(), config.CookieCenterX, config.CookieCenterY)
	}
	s.pulseSystem.Start(s.cookieEntity, config.CookiePulseDuration, config.CookiePulseScale)
	if settings.SoundEnabled && s.clickSound != nil {
		s.clickSound.Play()
	}

	s.refresh()
}

// Buy 购买物品，饼干不足时返回 false 且状态不变
func (s *ClickerScene) Buy(itemID string) bool {
	if !s.gameState.PurchaseByID(itemID) {
		return false
	}
	s.refresh()
	return true
}

// SaveGame 保存当前进度
func (s *ClickerScene) SaveGame() {
	if err := s.saveManager.Save(s.gameState); err != nil {
		log.Printf("[ClickerScene] Save failed: %v", err)
		s.notify(fmt.Sprintf("Save failed: %v", err), entities.ToastErrorColor)
		return
	}
	s.notify("Game saved!", entities.ToastInfoColor)
}

// LoadGame 读取存档；失败时保留当前进度
func (s *ClickerScene) LoadGame() {
	err := s.saveManager.Load(s.gameState)
	switch {
	case errors.Is(err, game.ErrNoSave):
		s.notify("No save found!", entities.ToastInfoColor)
		return
	case err != nil:
		log.Printf("[ClickerScene] Load failed: %v", err)
		s.notify(fmt.Sprintf("Load failed: %v", err), entities.ToastErrorColor)
		return
	}

	s.refresh()
	s.notify("Game loaded!", entities.ToastInfoColor)
}

// RequestReset 打开重置确认对话框；已有对话框时不重复打开
func (s *ClickerScene) RequestReset() {
	if s.dialogInputSystem.HasActiveDialog() {
		return
	}
	entities.NewConfirmDialog(s.entityManager,
		"Reset Game",
		"Are you sure you want to reset all progress?",
		s.ConfirmReset, nil)
}

// ConfirmReset 清空进度（确认对话框的 Yes 回调）
// 存档不会被删除，读取仍可恢复
func (s *ClickerScene) ConfirmReset() {
	s.gameState.Reset()
	s.refresh()
	s.notify("Game reset!", entities.ToastInfoColor)
}

// ToggleSound 切换点击音效
func (s *ClickerScene) ToggleSound() {
	on := s.settingsManager.ToggleSound()
	s.notify("Sound "+onOff(on), entities.ToastInfoColor)
}

// ToggleParticles 切换碎屑粒子；关闭时立即清除现有粒子
func (s *ClickerScene) ToggleParticles() {
	on := s.settingsManager.ToggleParticles()
	if !on {
		s.particleSystem.Clear()
	}
	s.notify("Particles "+onOff(on), entities.ToastInfoColor)
}

// refresh 在任何改变饼干或等级的操作之后调用
// 先判定成就，再重建显示内容和购买按钮的启用状态
func (s *ClickerScene) refresh() {
	for _, ach := range s.gameState.EvaluateAchievements() {
		s.notify("Achievement unlocked: "+ach.Name, entities.ToastAchievementColor)
	}

	s.view = buildSceneView(s.gameState)

	for _, entry := range s.view.shopEntries() {
		id, ok := s.buyButtons[entry.ItemID]
		if !ok {
			continue
		}
		if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
			button.Enabled = entry.Affordable
		}
	}
}

// notify 显示一条提示消息
func (s *ClickerScene) notify(message string, clr color.RGBA) {
	log.Printf("[ClickerScene] %s", message)
	entities.NewToast(s.entityManager, message, clr)
}

// Draw 绘制场景
func (s *ClickerScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.drawShop(screen)
	s.cookieRenderSystem.Draw(screen)
	s.particleSystem.Draw(screen)
	s.drawHUD(screen)
	s.buttonRenderSystem.Draw(screen)
	s.drawAchievements(screen)
	s.toastRenderSystem.Draw(screen)
	s.dialogRenderSystem.Draw(screen)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
