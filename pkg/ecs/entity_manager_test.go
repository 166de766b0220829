package ecs

import "testing"

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount should be 2, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 不存在的组件类型
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}

	// 不存在的实体
	if _, ok := GetComponent[*testPositionComponent](em, EntityID(999)); ok {
		t.Error("Component of unknown entity should not be found")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 标记删除后，实体在清理前仍然存在
	if !em.EntityExists(id) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("RemoveMarkedEntities should remove 1 entity, got %d", removed)
	}
	if em.EntityExists(id) {
		t.Error("Entity should be removed")
	}

	// 重复标记同一个实体不会重复计数
	em.DestroyEntity(id)
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Removing an already removed entity should count 0, got %d", removed)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	e1 := em.CreateEntity()
	AddComponent(em, e1, &testPositionComponent{})
	AddComponent(em, e1, &testVelocityComponent{})

	e2 := em.CreateEntity()
	AddComponent(em, e2, &testPositionComponent{})

	e3 := em.CreateEntity()
	AddComponent(em, e3, &testPositionComponent{})
	AddComponent(em, e3, &testVelocityComponent{})
	AddComponent(em, e3, &testTagComponent{})

	withPos := GetEntitiesWith1[*testPositionComponent](em)
	if len(withPos) != 3 {
		t.Errorf("Expected 3 entities with position, got %d", len(withPos))
	}

	withBoth := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(withBoth) != 2 || withBoth[0] != e1 || withBoth[1] != e3 {
		t.Errorf("Expected [%d %d], got %v", e1, e3, withBoth)
	}
}

// TestGetEntitiesWithOrder 查询结果按创建顺序（ID 升序）返回
func TestGetEntitiesWithOrder(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
	}

	ids := GetEntitiesWith1[*testPositionComponent](em)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("entities not sorted at %d: %v", i, ids)
		}
	}
}
