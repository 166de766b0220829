package entities

import (
	"image/color"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮配色
var (
	CommandButtonColor      = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	CommandButtonHoverColor = color.RGBA{R: 0xa6, G: 0x7c, B: 0x52, A: 0xff}
	BuyButtonColor          = color.RGBA{R: 0x3c, G: 0x8d, B: 0x40, A: 0xff}
	BuyButtonHoverColor     = color.RGBA{R: 0x4f, G: 0xb0, B: 0x54, A: 0xff}
)

// NewButton 创建矩形按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - width, height: 按钮尺寸
//   - label: 按钮文字
//   - font: 文字字体
//   - onClick: 点击回调
func NewButton(
	em *ecs.EntityManager,
	x, y, width, height float64,
	label string,
	font *text.GoTextFace,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:       label,
		Font:       font,
		Width:      width,
		Height:     height,
		Color:      CommandButtonColor,
		HoverColor: CommandButtonHoverColor,
		State:      components.UINormal,
		Enabled:    true,
		OnClick:    onClick,
	})

	return entity
}

// NewBuyButton 创建商店条目的购买按钮
// 按钮通过 ShopEntryComponent 关联物品，启用状态由场景根据余额刷新
func NewBuyButton(
	em *ecs.EntityManager,
	itemID string,
	x, y, width, height float64,
	font *text.GoTextFace,
	onClick func(),
) ecs.EntityID {
	entity := NewButton(em, x, y, width, height, "Buy", font, onClick)

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, entity)
	button.Color = BuyButtonColor
	button.HoverColor = BuyButtonHoverColor

	ecs.AddComponent(em, entity, &components.ShopEntryComponent{ItemID: itemID})
	return entity
}
