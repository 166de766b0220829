package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景
// 每个场景有独立的更新和绘制逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 将场景绘制到屏幕
	Draw(screen *ebiten.Image)
}

// SceneEnterer 可选接口：场景成为活动场景时调用
type SceneEnterer interface {
	OnEnter()
}

// SceneExiter 可选接口：场景被切换出去时调用（例如退出前自动保存）
type SceneExiter interface {
	OnExit()
}
