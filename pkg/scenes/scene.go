package scenes

import (
	"github.com/decker502/cookieclicker/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

// ClickSounder 播放点击音效（桌面端为 *sound.ClickPlayer）
type ClickSounder interface {
	Play()
}

var (
	_ Scene             = (*ClickerScene)(nil)
	_ game.SceneEnterer = (*ClickerScene)(nil)
)
