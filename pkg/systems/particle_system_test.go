package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/ecs"
)

func newTestParticleSystem() (*ecs.EntityManager, *ParticleSystem) {
	em := ecs.NewEntityManager()
	return em, NewParticleSystem(em, config.DefaultCrumbParticleConfig(), rand.New(rand.NewSource(7)))
}

func countParticles(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.CrumbParticleComponent](em))
}

func TestParticleBurstNonPositiveIsNoop(t *testing.T) {
	em, ps := newTestParticleSystem()

	ps.Burst(0, 100, 100)
	ps.Burst(-5, 100, 100)

	if ps.State() != SchedulerIdle {
		t.Errorf("state = %v, want idle", ps.State())
	}
	if n := countParticles(em); n != 0 {
		t.Errorf("spawned %d particles, want 0", n)
	}
}

func TestParticleBurstArmsScheduler(t *testing.T) {
	em, ps := newTestParticleSystem()

	ps.Burst(18, 160, 160)

	if ps.State() != SchedulerRunning {
		t.Fatalf("state = %v, want running", ps.State())
	}
	if n := countParticles(em); n != 18 {
		t.Errorf("spawned %d particles, want 18", n)
	}
	if ps.LiveCount() != 18 {
		t.Errorf("LiveCount = %d, want 18", ps.LiveCount())
	}
}

// TestParticleLifecycle Idle → Running → Idle，所有粒子最终被清除
func TestParticleLifecycle(t *testing.T) {
	em, ps := newTestParticleSystem()
	cfg := config.DefaultCrumbParticleConfig()

	ps.Burst(cfg.BurstCount, 160, 160)

	// 寿命最长 LifespanMax 帧，再加一帧用于清除
	maxFrames := int(cfg.LifespanMax) + 1
	frames := 0
	for ps.State() == SchedulerRunning {
		ps.Update(1.0 / 60)
		em.RemoveMarkedEntities()
		frames++
		if frames > maxFrames {
			t.Fatalf("scheduler still running after %d frames", frames)
		}
	}

	if frames < int(cfg.LifespanMin) {
		t.Errorf("scheduler went idle after %d frames, before any particle could expire", frames)
	}
	if n := countParticles(em); n != 0 {
		t.Errorf("%d particles left after idle", n)
	}
	if ps.LiveCount() != 0 {
		t.Errorf("LiveCount = %d, want 0", ps.LiveCount())
	}
}

// TestParticleUpdateIdleTouchesNothing Idle 状态下 Update 不推进任何粒子
func TestParticleUpdateIdleTouchesNothing(t *testing.T) {
	em, ps := newTestParticleSystem()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 10, Y: 10})
	ecs.AddComponent(em, id, &components.CrumbParticleComponent{VX: 1, VY: 1, Lifespan: 10, Size: 4})

	ps.Update(1.0 / 60)

	p, _ := ecs.GetComponent[*components.CrumbParticleComponent](em, id)
	if p.Age != 0 {
		t.Errorf("idle Update advanced particle: age = %d", p.Age)
	}
}

func TestParticleStepPhysics(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCrumbParticleConfig()
	ps := NewParticleSystem(em, cfg, rand.New(rand.NewSource(1)))

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, id, &components.CrumbParticleComponent{VX: 2, VY: -3, Lifespan: 40, Size: 5})

	ps.Step()

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	p, _ := ecs.GetComponent[*components.CrumbParticleComponent](em, id)

	if pos.X != 102 || pos.Y != 47 {
		t.Errorf("position = (%v, %v), want (102, 47)", pos.X, pos.Y)
	}
	if math.Abs(p.VY-(-3+cfg.Gravity)) > 1e-9 {
		t.Errorf("VY = %v, want %v", p.VY, -3+cfg.Gravity)
	}
	if math.Abs(p.Size-5*cfg.SizeDecay) > 1e-9 {
		t.Errorf("Size = %v, want %v", p.Size, 5*cfg.SizeDecay)
	}
	if p.Age != 1 {
		t.Errorf("Age = %d, want 1", p.Age)
	}
}

// TestParticleStepPurgesBeforeUpdate 过期粒子先被清除，不再移动
func TestParticleStepPurgesBeforeUpdate(t *testing.T) {
	em, ps := newTestParticleSystem()

	expired := em.CreateEntity()
	ecs.AddComponent(em, expired, &components.PositionComponent{X: 0, Y: 0})
	ecs.AddComponent(em, expired, &components.CrumbParticleComponent{VX: 1, Age: 5, Lifespan: 5, Size: 3})

	alive := em.CreateEntity()
	ecs.AddComponent(em, alive, &components.PositionComponent{X: 0, Y: 0})
	ecs.AddComponent(em, alive, &components.CrumbParticleComponent{VX: 1, Age: 4, Lifespan: 5, Size: 3})

	ps.Step()

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, expired)
	if pos.X != 0 {
		t.Errorf("expired particle moved to x=%v", pos.X)
	}
	if ps.LiveCount() != 1 {
		t.Errorf("LiveCount = %d, want 1", ps.LiveCount())
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(expired) {
		t.Error("expired particle not removed")
	}
	if !em.EntityExists(alive) {
		t.Error("live particle removed")
	}
}

func TestParticleClear(t *testing.T) {
	em, ps := newTestParticleSystem()
	ps.Burst(10, 0, 0)

	ps.Clear()
	em.RemoveMarkedEntities()

	if ps.State() != SchedulerIdle {
		t.Errorf("state = %v, want idle", ps.State())
	}
	if n := countParticles(em); n != 0 {
		t.Errorf("%d particles left after Clear", n)
	}

	// Clear 后可以再次 Burst
	ps.Burst(3, 0, 0)
	if ps.State() != SchedulerRunning || ps.LiveCount() != 3 {
		t.Errorf("re-arm failed: state=%v live=%d", ps.State(), ps.LiveCount())
	}
}

func TestParticleDrawIdleDoesNotTouchScreen(t *testing.T) {
	_, ps := newTestParticleSystem()
	// Idle 时不绘制，nil 屏幕不会被访问
	ps.Draw(nil)
}

func TestNewParticleSystemDefaults(t *testing.T) {
	ps := NewParticleSystem(ecs.NewEntityManager(), nil, nil)
	if ps.BurstCount() != 18 {
		t.Errorf("BurstCount = %d, want 18", ps.BurstCount())
	}
	if ps.State().String() != "idle" {
		t.Errorf("State = %v, want idle", ps.State())
	}
}
