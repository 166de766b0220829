package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景
// 任意时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 旧场景实现 SceneExiter 时先调用 OnExit，新场景实现 SceneEnterer 时再调用 OnEnter
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if exiter, ok := sm.currentScene.(SceneExiter); ok {
		exiter.OnExit()
	}

	log.Printf("[SceneManager] Switching to scene %T", scene)
	sm.currentScene = scene

	if enterer, ok := scene.(SceneEnterer); ok {
		enterer.OnEnter()
	}
}

// Close 退出当前场景（程序结束前调用）
func (sm *SceneManager) Close() {
	if exiter, ok := sm.currentScene.(SceneExiter); ok {
		exiter.OnExit()
	}
	sm.currentScene = nil
}

// GetCurrentScene 返回当前活动的场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
