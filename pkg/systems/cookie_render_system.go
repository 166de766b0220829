package systems

import (
	"image/color"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	cookieDoughColor = color.RGBA{R: 0xc6, G: 0x86, B: 0x42, A: 0xff}
	cookieEdgeColor  = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	cookieChipColor  = color.RGBA{R: 0x4a, G: 0x2c, B: 0x14, A: 0xff}
)

// cookieChips 巧克力豆相对圆心的位置（以半径为单位）和大小
var cookieChips = []struct{ dx, dy, r float64 }{
	{-0.45, -0.35, 0.11},
	{0.30, -0.50, 0.09},
	{0.50, 0.05, 0.12},
	{-0.10, 0.10, 0.10},
	{-0.55, 0.35, 0.08},
	{0.15, 0.55, 0.11},
	{0.05, -0.15, 0.07},
}

// CookieRenderSystem 绘制大饼干（随 ScaleComponent 缩放）
type CookieRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewCookieRenderSystem 创建饼干渲染系统
func NewCookieRenderSystem(em *ecs.EntityManager) *CookieRenderSystem {
	return &CookieRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有饼干实体
func (s *CookieRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CookieComponent, *components.PositionComponent](s.entityManager) {
		cookie, _ := ecs.GetComponent[*components.CookieComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		scale := 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale = sc.ScaleX
		}
		radius := cookie.Radius * scale

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius), cookieEdgeColor, true)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius*0.93), cookieDoughColor, true)
		for _, chip := range cookieChips {
			vector.DrawFilledCircle(screen,
				float32(pos.X+chip.dx*radius), float32(pos.Y+chip.dy*radius), float32(chip.r*radius),
				cookieChipColor, true)
		}
	}
}
