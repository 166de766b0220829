package entities

import (
	"image/color"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
)

// 提示颜色
var (
	ToastInfoColor        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ToastErrorColor       = color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	ToastAchievementColor = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// NewToast 创建提示消息实体，ToastDuration 秒后由 LifetimeSystem 销毁
func NewToast(em *ecs.EntityManager, message string, clr color.RGBA) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ToastComponent{
		Message: message,
		Color:   clr,
	})
	ecs.AddComponent(em, entity, &components.LifetimeComponent{
		MaxLifetime: config.ToastDuration,
	})
	return entity
}
