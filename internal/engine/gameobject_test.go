package engine

import "testing"

type counterComponent struct {
	BaseComponent
	starts   int
	updates  int
	lastDt   float32
	snapshot int
}

func (c *counterComponent) Start() { c.starts++ }

func (c *counterComponent) Update(deltaTime float32) {
	c.updates++
	c.lastDt = deltaTime
}

func (c *counterComponent) SnapshotPrev() { c.snapshot++ }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if !obj.Active {
		t.Error("New GameObject should be active")
	}

	if obj.Transform.Scale.X != 1 || obj.Transform.Scale.Y != 1 || obj.Transform.Scale.Z != 1 {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"platform", "solid"}

	if !obj.HasTag("platform") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("pickup") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.Components()) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components()))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	base := &BaseComponent{}
	counter := &counterComponent{}

	obj.AddComponent(base)
	obj.AddComponent(counter)

	if GetComponent[*counterComponent](obj) != counter {
		t.Error("GetComponent failed to find component")
	}
	if GetComponent[*BaseComponent](obj) != base {
		t.Error("GetComponent failed to find base component")
	}

	empty := NewGameObject("Empty")
	if GetComponent[*counterComponent](empty) != nil {
		t.Error("GetComponent should return nil when missing")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	c := &counterComponent{}
	obj.AddComponent(c)

	obj.Start()
	obj.Start()

	if c.starts != 1 {
		t.Errorf("Expected Start once, got %d", c.starts)
	}
}

func TestGameObjectInactiveSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	c := &counterComponent{}
	obj.AddComponent(c)

	obj.Update(0.5)
	obj.Active = false
	obj.Update(0.5)

	if c.updates != 1 {
		t.Errorf("Expected 1 update, got %d", c.updates)
	}
	if c.lastDt != 0.5 {
		t.Errorf("Expected dt 0.5, got %v", c.lastDt)
	}
}
