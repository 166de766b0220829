package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
)

// NewCrumbParticle 在 (x, y) 创建一个饼干碎屑粒子实体
//
// 参数：
//   - em: 实体管理器
//   - rng: 随机数源（测试时传入固定种子）
//   - cfg: 碎屑参数（速度、寿命、尺寸区间与调色板）
//   - x, y: 发射点
//
// 方向在 [0, 2π) 内均匀分布；寿命向上取整为整数帧。
func NewCrumbParticle(em *ecs.EntityManager, rng *rand.Rand, cfg *config.CrumbParticleConfig, x, y float64) ecs.EntityID {
	angle := rng.Float64() * 2 * math.Pi
	speed := uniform(rng, cfg.SpeedMin, cfg.SpeedMax)
	lifespan := int(math.Ceil(uniform(rng, cfg.LifespanMin, cfg.LifespanMax)))
	size := uniform(rng, cfg.SizeMin, cfg.SizeMax)

	palette := cfg.Colors()
	clr := palette[rng.Intn(len(palette))]

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.CrumbParticleComponent{
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Lifespan: lifespan,
		Size:     size,
		Color:    clr,
	})
	return entity
}

// uniform 返回 [lo, hi) 内的均匀分布随机数
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
