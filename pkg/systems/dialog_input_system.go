package systems

import (
	"log"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DialogInputSystem 对话框输入系统
//
// 职责：
//   - 更新对话框按钮的悬停状态
//   - 指针在按钮内释放时关闭对话框并触发回调
//   - Enter 触发第一个按钮，ESC 关闭对话框（不触发回调）
//
// 对话框是模态的：存在可见对话框时，场景不再处理其他输入。
type DialogInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewDialogInputSystem 创建对话框输入系统
func NewDialogInputSystem(em *ecs.EntityManager) *DialogInputSystem {
	return &DialogInputSystem{
		entityManager: em,
	}
}

// HasActiveDialog 是否存在可见的对话框
func (s *DialogInputSystem) HasActiveDialog() bool {
	_, ok := s.topDialog()
	return ok
}

// Update 读取本帧输入并处理最上层对话框
func (s *DialogInputSystem) Update(deltaTime float64) {
	if !s.HasActiveDialog() {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.Dismiss()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.Confirm()
	default:
		s.HandlePointer(utils.ReadPointer())
	}
}

// HandlePointer 处理最上层对话框的指针输入
// 返回是否有按钮被点击
func (s *DialogInputSystem) HandlePointer(pointer utils.PointerState) bool {
	id, ok := s.topDialog()
	if !ok {
		return false
	}
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	for i := range dialog.Buttons {
		btn := &dialog.Buttons[i]
		inside := pointer.X >= pos.X+btn.X && pointer.X <= pos.X+btn.X+btn.Width &&
			pointer.Y >= pos.Y+btn.Y && pointer.Y <= pos.Y+btn.Y+btn.Height

		if !inside {
			btn.State = components.UINormal
			continue
		}

		if pointer.JustReleased {
			log.Printf("[DialogInputSystem] Button '%s' clicked", btn.Label)
			s.close(id)
			if btn.OnClick != nil {
				btn.OnClick()
			}
			return true
		}

		if pointer.Pressed {
			btn.State = components.UIClicked
		} else {
			btn.State = components.UIHovered
		}
	}

	return false
}

// Confirm 触发最上层对话框的第一个按钮
func (s *DialogInputSystem) Confirm() {
	id, ok := s.topDialog()
	if !ok {
		return
	}
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
	s.close(id)
	if len(dialog.Buttons) > 0 && dialog.Buttons[0].OnClick != nil {
		dialog.Buttons[0].OnClick()
	}
}

// Dismiss 关闭最上层对话框，不触发任何按钮回调
func (s *DialogInputSystem) Dismiss() {
	if id, ok := s.topDialog(); ok {
		log.Printf("[DialogInputSystem] Dialog dismissed")
		s.close(id)
	}
}

// close 隐藏并标记删除对话框
// 先隐藏，保证本帧剩余逻辑不再把它视为活动对话框
func (s *DialogInputSystem) close(id ecs.EntityID) {
	if dialog, ok := ecs.GetComponent[*components.DialogComponent](s.entityManager, id); ok {
		dialog.IsVisible = false
	}
	s.entityManager.DestroyEntity(id)
}

// topDialog 返回最上层（ID 最大）的可见对话框
func (s *DialogInputSystem) topDialog() (ecs.EntityID, bool) {
	dialogs := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager)
	for i := len(dialogs) - 1; i >= 0; i-- {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, dialogs[i])
		if dialog.IsVisible {
			return dialogs[i], true
		}
	}
	return 0, false
}
