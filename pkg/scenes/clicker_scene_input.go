package scenes

import (
	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput 处理本帧的键盘和指针输入
// 存在确认对话框时只处理对话框
func (s *ClickerScene) handleInput() {
	if s.dialogInputSystem.HasActiveDialog() {
		s.dialogInputSystem.Update(0)
		return
	}

	s.handleKeyboard()

	pointer := utils.ReadPointer()
	if s.buttonSystem.HandlePointer(pointer) {
		return
	}
	s.handleCookiePointer(pointer)
}

// handleKeyboard 快捷键：Space 点击、S 保存、L 读取、R 重置、M 音效、P 粒子
func (s *ClickerScene) handleKeyboard() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.ClickCookie()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.SaveGame()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.LoadGame()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.RequestReset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.ToggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.ToggleParticles()
	}
}

// handleCookiePointer 指针在饼干内释放时视为一次点击
// 返回是否点击了饼干
func (s *ClickerScene) handleCookiePointer(pointer utils.PointerState) bool {
	if !pointer.JustReleased {
		return false
	}

	cookie, ok := ecs.GetComponent[*components.CookieComponent](s.entityManager, s.cookieEntity)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cookieEntity)
	if !ok {
		return false
	}

	if !cookie.Contains(pos.X, pos.Y, pointer.X, pointer.Y) {
		return false
	}
	s.ClickCookie()
	return true
}
