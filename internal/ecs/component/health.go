package component

import "github.com/matjam/sword/internal/ecs"

// Health is a Modifiable component: a system calls entity.Touch before
// mutating Current and entity.CommitModify after, so in-place damage
// and healing raise the same before-modifying/modified events a
// wholesale Entity.Replace would. Grounded on the teacher's
// internal/ecs/component/health.go (Damage/Heal), generalized to the
// Modifiable marker interface.
type Health struct {
	ecs.ModifiableMarker

	Max     int
	Current int
}

// ComponentName satisfies ecs.Component.
func (*Health) ComponentName() string { return "Health" }

// Damage lowers Current by d, floored at zero. The caller must bracket
// this with entity.Touch/entity.CommitModify.
func (h *Health) Damage(d int) int {
	h.Current -= d
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Heal raises Current by d, capped at Max. The caller must bracket this
// with entity.Touch/entity.CommitModify.
func (h *Health) Heal(d int) int {
	h.Current += d
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current
}

// ShouldPersist satisfies ecs.PersistField: a hypothetical serializer
// should include Health's data.
func (*Health) ShouldPersist() bool { return true }

var (
	_ ecs.Modifiable   = (*Health)(nil)
	_ ecs.PersistField = (*Health)(nil)
)
