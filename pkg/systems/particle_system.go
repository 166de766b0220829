package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/entities"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SchedulerState 粒子动画调度状态
type SchedulerState int

const (
	// SchedulerIdle 没有存活粒子，Update 不做任何事
	SchedulerIdle SchedulerState = iota
	// SchedulerRunning 有存活粒子，每次 Update 推进一帧
	SchedulerRunning
)

// String 返回调度状态名称（用于日志）
func (s SchedulerState) String() string {
	if s == SchedulerRunning {
		return "running"
	}
	return "idle"
}

// ParticleSystem 饼干碎屑粒子系统
//
// 职责：
//   - Burst：在点击位置生成一批碎屑
//   - Step：推进一帧（清除过期粒子，更新位置、速度、尺寸和年龄）
//   - Draw：按透明度绘制方形碎屑
//
// 调度是显式的：Idle 状态下 Update 不查询实体；Burst 重新进入 Running，
// 所有粒子过期后回到 Idle。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	config        *config.CrumbParticleConfig
	rng           *rand.Rand
	state         SchedulerState
	live          int
}

// NewParticleSystem 创建粒子系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 碎屑参数，为 nil 时使用默认参数
//   - rng: 随机数源，为 nil 时使用当前时间作为种子
func NewParticleSystem(em *ecs.EntityManager, cfg *config.CrumbParticleConfig, rng *rand.Rand) *ParticleSystem {
	if cfg == nil {
		cfg = config.DefaultCrumbParticleConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ParticleSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		state:         SchedulerIdle,
	}
}

// State 返回当前调度状态
func (s *ParticleSystem) State() SchedulerState {
	return s.state
}

// LiveCount 返回存活粒子数量
func (s *ParticleSystem) LiveCount() int {
	return s.live
}

// BurstCount 返回配置的每次点击粒子数量
func (s *ParticleSystem) BurstCount() int {
	return s.config.BurstCount
}

// Burst 在 (x, y) 生成 n 个碎屑粒子；n <= 0 时不做任何事
func (s *ParticleSystem) Burst(n int, x, y float64) {
	if n <= 0 {
		return
	}

	for i := 0; i < n; i++ {
		entities.NewCrumbParticle(s.entityManager, s.rng, s.config, x, y)
	}
	s.live += n

	if s.state == SchedulerIdle {
		s.state = SchedulerRunning
		log.Printf("[ParticleSystem] Scheduler running (%d particles)", s.live)
	}
}

// Update 每个游戏帧调用一次，Idle 时直接返回
func (s *ParticleSystem) Update(deltaTime float64) {
	if s.state == SchedulerIdle {
		return
	}
	s.Step()
}

// Step 推进一帧动画
// 先清除 Age >= Lifespan 的粒子，再更新剩余粒子；没有剩余粒子时回到 Idle
func (s *ParticleSystem) Step() {
	particles := ecs.GetEntitiesWith2[*components.CrumbParticleComponent, *components.PositionComponent](s.entityManager)

	live := 0
	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.CrumbParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if p.Expired() {
			s.entityManager.DestroyEntity(id)
			continue
		}

		pos.X += p.VX
		pos.Y += p.VY
		p.VY += s.config.Gravity
		p.Size *= s.config.SizeDecay
		p.Age++
		live++
	}

	s.live = live
	if live == 0 && s.state == SchedulerRunning {
		s.state = SchedulerIdle
		log.Printf("[ParticleSystem] Scheduler idle")
	}
}

// Clear 立即移除所有粒子并回到 Idle（关闭粒子效果时调用）
func (s *ParticleSystem) Clear() {
	particles := ecs.GetEntitiesWith1[*components.CrumbParticleComponent](s.entityManager)
	for _, id := range particles {
		s.entityManager.DestroyEntity(id)
	}
	s.live = 0
	s.state = SchedulerIdle
}

// Draw 绘制所有存活粒子（左上角位于粒子坐标的实心方块）
func (s *ParticleSystem) Draw(screen *ebiten.Image) {
	if s.state == SchedulerIdle {
		return
	}

	particles := ecs.GetEntitiesWith2[*components.CrumbParticleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.CrumbParticleComponent](s.entityManager, id)
		if p.Expired() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		vector.DrawFilledRect(screen,
			float32(pos.X), float32(pos.Y), float32(p.Size), float32(p.Size),
			utils.WithAlpha(p.Color, p.Alpha()), false)
	}
}
