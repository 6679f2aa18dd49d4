package component

import "github.com/matjam/sword/internal/ecs"

// Item is one entry carried by an Inventory.
type Item struct {
	Name   string
	Weight int
}

// Inventory is a keep-on-replace component: a bulk Entity.Replace call
// that would otherwise overwrite an entity's existing Inventory
// preserves it instead. Grounded on the teacher's
// internal/ecs/component/inventory.go.
type Inventory struct {
	MaxSize     int
	MaxCapacity int

	Items []Item
}

// ComponentName satisfies ecs.Component.
func (*Inventory) ComponentName() string { return "Inventory" }

// KeepOnReplace satisfies ecs.KeepOnReplace: an Inventory already
// present on an entity is always preserved through Entity.Replace.
func (*Inventory) KeepOnReplace() bool { return true }

var _ ecs.KeepOnReplace = (*Inventory)(nil)
