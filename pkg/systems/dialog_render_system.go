package systems

import (
	"image/color"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	dialogOverlayColor    = color.RGBA{A: 0x80}
	dialogBackgroundColor = color.RGBA{R: 0xf3, G: 0xe5, B: 0xab, A: 0xff}
	dialogBorderColor     = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	dialogTextColor       = color.RGBA{R: 0x3b, G: 0x24, B: 0x10, A: 0xff}
	dialogButtonColor     = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	dialogButtonHover     = color.RGBA{R: 0xa6, G: 0x7c, B: 0x52, A: 0xff}
)

// DialogRenderSystem 对话框渲染系统
//
// 职责：
//   - 渲染半透明遮罩（覆盖整个屏幕）
//   - 渲染对话框背景、标题和消息
//   - 渲染对话框按钮
type DialogRenderSystem struct {
	entityManager *ecs.EntityManager
	windowWidth   int
	windowHeight  int
	titleFont     *text.GoTextFace
	messageFont   *text.GoTextFace
}

// NewDialogRenderSystem 创建对话框渲染系统
func NewDialogRenderSystem(em *ecs.EntityManager, windowWidth, windowHeight int, titleFont, messageFont *text.GoTextFace) *DialogRenderSystem {
	return &DialogRenderSystem{
		entityManager: em,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
		titleFont:     titleFont,
		messageFont:   messageFont,
	}
}

// Draw 渲染所有可见对话框（ID 小的在下层）
func (s *DialogRenderSystem) Draw(screen *ebiten.Image) {
	overlayDrawn := false

	for _, id := range ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager) {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
		if !dialog.IsVisible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 遮罩只绘制一次
		if !overlayDrawn {
			vector.DrawFilledRect(screen, 0, 0, float32(s.windowWidth), float32(s.windowHeight), dialogOverlayColor, false)
			overlayDrawn = true
		}

		s.drawDialog(screen, dialog, pos.X, pos.Y)
	}
}

func (s *DialogRenderSystem) drawDialog(screen *ebiten.Image, dialog *components.DialogComponent, x, y float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(dialog.Width), float32(dialog.Height), dialogBackgroundColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(dialog.Width), float32(dialog.Height), 3, dialogBorderColor, false)

	centerX := x + dialog.Width/2
	utils.DrawCenteredText(screen, dialog.Title, s.titleFont, centerX, y+30, dialogTextColor)

	lines := utils.WrapText(dialog.Message, s.messageFont, dialog.Width-40)
	for i, line := range lines {
		utils.DrawCenteredText(screen, line, s.messageFont, centerX, y+66+float64(i)*22, dialogTextColor)
	}

	for i := range dialog.Buttons {
		btn := &dialog.Buttons[i]
		bx := x + btn.X
		by := y + btn.Y

		bg := dialogButtonColor
		if btn.State == components.UIHovered || btn.State == components.UIClicked {
			bg = dialogButtonHover
		}
		vector.DrawFilledRect(screen, float32(bx), float32(by), float32(btn.Width), float32(btn.Height), bg, false)
		utils.DrawCenteredText(screen, btn.Label, s.messageFont, bx+btn.Width/2, by+btn.Height/2, buttonTextColor)
	}
}
