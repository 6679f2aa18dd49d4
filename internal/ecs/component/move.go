package component

import "github.com/matjam/sword/internal/ecs"

// Move accumulates one turn's worth of movement for an entity: a
// movement system sets X/Y to the distance to travel this tick, and the
// system consuming it resets them to zero once applied. Grounded on the
// teacher's internal/ecs/component/move.go.
type Move struct {
	X, Y int
}

// ComponentName satisfies ecs.Component.
func (*Move) ComponentName() string { return "Move" }

var _ ecs.Component = (*Move)(nil)
