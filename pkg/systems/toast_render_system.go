package systems

import (
	"image/color"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// toastFadeFraction 生命周期最后这一部分逐渐淡出
const toastFadeFraction = 0.3

var toastBackgroundColor = color.RGBA{R: 0x20, G: 0x14, B: 0x08, A: 0xd0}

// ToastRenderSystem 提示消息渲染系统
// 最新的提示显示在 ToastY，较早的依次向上排列
type ToastRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
}

// NewToastRenderSystem 创建提示消息渲染系统
func NewToastRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *ToastRenderSystem {
	return &ToastRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// ToastAlpha 根据生命周期进度计算透明度
// 最后一段时间内按 EaseOutQuad 淡出
func ToastAlpha(progress float64) float64 {
	return utils.EaseOutQuad(utils.Clamp01((1 - progress) / toastFadeFraction))
}

// Draw 渲染所有提示
func (s *ToastRenderSystem) Draw(screen *ebiten.Image) {
	toasts := ecs.GetEntitiesWith2[*components.ToastComponent, *components.LifetimeComponent](s.entityManager)

	centerX := float64(config.GameWindowWidth) / 2
	row := 0
	for i := len(toasts) - 1; i >= 0; i-- {
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, toasts[i])
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, toasts[i])
		if lifetime.IsExpired {
			continue
		}

		alpha := ToastAlpha(lifetime.Progress())
		y := config.ToastY - float64(row)*config.ToastLineHeight
		row++

		width := utils.MeasureTextWidth(toast.Message, s.font) + 24
		vector.DrawFilledRect(screen,
			float32(centerX-width/2), float32(y-config.ToastLineHeight/2+1),
			float32(width), float32(config.ToastLineHeight-2),
			utils.WithAlpha(toastBackgroundColor, alpha), false)
		utils.DrawCenteredText(screen, toast.Message, s.font, centerX, y, utils.WithAlpha(toast.Color, alpha))
	}
}
