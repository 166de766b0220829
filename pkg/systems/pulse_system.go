package systems

import (
	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/utils"
)

// PulseSystem 点击缩放脉冲系统
// 将 ScaleComponent 从 MinScale 按 EaseOutCubic 恢复到 1.0
type PulseSystem struct {
	entityManager *ecs.EntityManager
}

// NewPulseSystem 创建脉冲系统
func NewPulseSystem(em *ecs.EntityManager) *PulseSystem {
	return &PulseSystem{
		entityManager: em,
	}
}

// Start 对实体开始一次脉冲
// 上一次脉冲尚未结束时复用其组件，从头开始
func (s *PulseSystem) Start(id ecs.EntityID, duration, minScale float64) {
	if ecs.HasComponent[*components.PulseAnimationComponent](s.entityManager, id) {
		pulse, _ := ecs.GetComponent[*components.PulseAnimationComponent](s.entityManager, id)
		*pulse = components.PulseAnimationComponent{Duration: duration, MinScale: minScale}
	} else {
		ecs.AddComponent(s.entityManager, id, &components.PulseAnimationComponent{
			Duration: duration,
			MinScale: minScale,
		})
	}
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale.ScaleX = minScale
		scale.ScaleY = minScale
	}
}

// Update 推进所有脉冲动画，结束后移除脉冲组件
func (s *PulseSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PulseAnimationComponent, *components.ScaleComponent](s.entityManager) {
		pulse, _ := ecs.GetComponent[*components.PulseAnimationComponent](s.entityManager, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)

		pulse.ElapsedTime += deltaTime
		progress := 1.0
		if pulse.Duration > 0 {
			progress = pulse.ElapsedTime / pulse.Duration
		}

		value := utils.PulseScale(progress, pulse.MinScale)
		scale.ScaleX = value
		scale.ScaleY = value

		if progress >= 1 {
			pulse.IsCompleted = true
			ecs.RemoveComponent[*components.PulseAnimationComponent](s.entityManager, id)
		}
	}
}
