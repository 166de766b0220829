package entities

import (
	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
)

// NewConfirmDialog 创建“是/否”确认对话框，居中显示
//
// 参数：
//   - em: 实体管理器
//   - title: 对话框标题
//   - message: 对话框消息
//   - onConfirm: 点击 Yes 时调用
//   - onCancel: 点击 No 时调用（可为 nil）
//
// 两个按钮点击后都会关闭对话框（由 DialogInputSystem 销毁实体）。
func NewConfirmDialog(
	em *ecs.EntityManager,
	title, message string,
	onConfirm, onCancel func(),
) ecs.EntityID {
	x := float64(config.GameWindowWidth)/2 - config.DialogWidth/2
	y := float64(config.GameWindowHeight)/2 - config.DialogHeight/2

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})

	// 按钮底部居中，两个按钮之间留出一个按钮宽度的一半作为间距
	gap := config.DialogButtonWidth / 2
	totalWidth := 2*config.DialogButtonWidth + gap
	startX := config.DialogWidth/2 - totalWidth/2
	buttonY := config.DialogHeight - config.DialogButtonHeight - 20

	ecs.AddComponent(em, entity, &components.DialogComponent{
		Title:   title,
		Message: message,
		Buttons: []components.DialogButton{
			{
				Label:   "Yes",
				OnClick: onConfirm,
				X:       startX,
				Y:       buttonY,
				Width:   config.DialogButtonWidth,
				Height:  config.DialogButtonHeight,
			},
			{
				Label:   "No",
				OnClick: onCancel,
				X:       startX + config.DialogButtonWidth + gap,
				Y:       buttonY,
				Width:   config.DialogButtonWidth,
				Height:  config.DialogButtonHeight,
			},
		},
		IsVisible: true,
		Width:     config.DialogWidth,
		Height:    config.DialogHeight,
	})

	return entity
}
