package systems

import (
	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 读取本帧指针状态并处理
func (s *ButtonSystem) Update(deltaTime float64) {
	s.HandlePointer(utils.ReadPointer())
}

// HandlePointer 根据指针状态更新按钮并在释放时触发回调
// 返回本帧是否有按钮被点击（同一帧最多触发一个按钮）
func (s *ButtonSystem) HandlePointer(pointer utils.PointerState) bool {
	clicked := false

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !button.Contains(pos.X, pos.Y, pointer.X, pointer.Y) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pointer.JustReleased && !clicked:
			// 释放瞬间触发回调
			button.State = components.UIHovered
			clicked = true
			if button.OnClick != nil {
				button.OnClick()
			}
		case pointer.Pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}

	return clicked
}
