package systems

import (
	"image/color"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonDisabledColor = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	buttonBorderColor   = color.RGBA{R: 0x3b, G: 0x24, B: 0x10, A: 0xff}
	buttonTextColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	buttonTextDimColor  = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
)

// ButtonRenderSystem 按钮渲染系统
// 绘制按钮背景（按状态选择颜色）、边框和居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawButton(screen, button, pos.X, pos.Y)
	}
}

func (s *ButtonRenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	bg, fg := buttonColors(button)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 2, buttonBorderColor, false)

	utils.DrawCenteredText(screen, button.Text, button.Font, x+button.Width/2, y+button.Height/2, fg)
}

// buttonColors 根据按钮状态返回背景色和文字色
func buttonColors(button *components.ButtonComponent) (bg, fg color.RGBA) {
	switch {
	case !button.Enabled || button.State == components.UIDisabled:
		return buttonDisabledColor, buttonTextDimColor
	case button.State == components.UIHovered || button.State == components.UIClicked:
		return button.HoverColor, buttonTextColor
	default:
		return button.Color, buttonTextColor
	}
}
