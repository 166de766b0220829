package systems

import (
	"testing"

	"github.com/decker502/cookieclicker/pkg/components"
	"github.com/decker502/cookieclicker/pkg/ecs"
	"github.com/decker502/cookieclicker/pkg/entities"
	"github.com/decker502/cookieclicker/pkg/utils"
)

// buttonCenter 返回对话框第 i 个按钮中心的屏幕坐标
func buttonCenter(em *ecs.EntityManager, id ecs.EntityID, i int) (float64, float64) {
	dialog, _ := ecs.GetComponent[*components.DialogComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	btn := dialog.Buttons[i]
	return pos.X + btn.X + btn.Width/2, pos.Y + btn.Y + btn.Height/2
}

func TestDialogConfirmByPointer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDialogInputSystem(em)

	confirmed, cancelled := false, false
	id := entities.NewConfirmDialog(em, "Reset", "Sure?", func() { confirmed = true }, func() { cancelled = true })

	if !system.HasActiveDialog() {
		t.Fatal("dialog should be active")
	}

	x, y := buttonCenter(em, id, 0)
	system.HandlePointer(utils.PointerState{X: x, Y: y})
	dialog, _ := ecs.GetComponent[*components.DialogComponent](em, id)
	if dialog.Buttons[0].State != components.UIHovered {
		t.Errorf("Yes button state = %v, want hovered", dialog.Buttons[0].State)
	}

	if !system.HandlePointer(utils.PointerState{X: x, Y: y, JustReleased: true}) {
		t.Fatal("release on Yes should be handled")
	}
	if !confirmed || cancelled {
		t.Errorf("confirmed=%v cancelled=%v, want true/false", confirmed, cancelled)
	}
	if system.HasActiveDialog() {
		t.Error("dialog should be closed after click")
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("dialog entity should be removed")
	}
}

func TestDialogCancelByPointer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDialogInputSystem(em)

	confirmed, cancelled := false, false
	id := entities.NewConfirmDialog(em, "Reset", "Sure?", func() { confirmed = true }, func() { cancelled = true })

	x, y := buttonCenter(em, id, 1)
	system.HandlePointer(utils.PointerState{X: x, Y: y, JustReleased: true})

	if confirmed || !cancelled {
		t.Errorf("confirmed=%v cancelled=%v, want false/true", confirmed, cancelled)
	}
}

func TestDialogIgnoresClicksOutsideButtons(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDialogInputSystem(em)

	confirmed := false
	entities.NewConfirmDialog(em, "Reset", "Sure?", func() { confirmed = true }, nil)

	if system.HandlePointer(utils.PointerState{X: 1, Y: 1, JustReleased: true}) {
		t.Error("click outside buttons should not trigger anything")
	}
	if confirmed || !system.HasActiveDialog() {
		t.Error("dialog should stay open and unconfirmed")
	}
}

func TestDialogConfirmAndDismiss(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDialogInputSystem(em)

	confirmed := false
	entities.NewConfirmDialog(em, "Reset", "Sure?", func() { confirmed = true }, nil)
	system.Dismiss()
	if confirmed || system.HasActiveDialog() {
		t.Error("Dismiss should close without confirming")
	}

	entities.NewConfirmDialog(em, "Reset", "Sure?", func() { confirmed = true }, nil)
	system.Confirm()
	if !confirmed || system.HasActiveDialog() {
		t.Error("Confirm should trigger the first button and close")
	}

	// 没有对话框时不应 panic
	system.Confirm()
	system.Dismiss()
}

func TestDialogTopmostFirst(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewDialogInputSystem(em)

	var order []string
	entities.NewConfirmDialog(em, "First", "", func() { order = append(order, "first") }, nil)
	entities.NewConfirmDialog(em, "Second", "", func() { order = append(order, "second") }, nil)

	system.Confirm()
	system.Confirm()

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("confirm order = %v, want [second first]", order)
	}
}
