// Package component holds the concrete component types the demo
// wiring in cmd exercises: a parent-relative transform, a
// modifiable health, and a keep-on-replace inventory, each generalizing
// the teacher's internal/ecs/component package (Location, Health,
// Inventory) to the core's marker interfaces — ParentRelative,
// Modifiable, KeepOnReplace.
package component

import "github.com/matjam/sword/internal/ecs"

// Transform is a position expressed relative to a parent entity. Parent is
// ecs.InvalidEntityID for a transform with no parent (world-relative).
type Transform struct {
	X, Y   int
	Parent ecs.EntityID
}

// ComponentName satisfies ecs.Component.
func (*Transform) ComponentName() string { return "Transform" }

// ParentEntity satisfies ecs.ParentRelative, marking every Transform's
// registry id as "parent-relative".
func (t *Transform) ParentEntity() ecs.EntityID { return t.Parent }

var (
	_ ecs.Component      = (*Transform)(nil)
	_ ecs.ParentRelative = (*Transform)(nil)
)
