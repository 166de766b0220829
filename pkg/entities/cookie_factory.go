package entities

import (
	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
)

// NewCookie 创建可点击的大饼干实体
func NewCookie(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: config.CookieCenterX,
		Y: config.CookieCenterY,
	})
	ecs.AddComponent(em, entity, &components.CookieComponent{Radius: config.CookieRadius})
	ecs.AddComponent(em, entity, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	return entity
}
