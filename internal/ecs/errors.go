package ecs

import "fmt"

// ConfigurationError is returned by World construction when the system
// list cannot be made consistent: a duplicate system type, an
// unsatisfied Requires dependency, or a cyclic ordering constraint.
type ConfigurationError struct {
	// Kind names the specific condition, e.g. "duplicate-system",
	// "unsatisfied-requires", "cyclic-ordering".
	Kind string
	// SystemName identifies the offending system.
	SystemName string
	// Detail carries additional context, such as the name of the
	// dependency that could not be satisfied.
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ecs: configuration error (%s): %s", e.Kind, e.SystemName)
	}
	return fmt.Sprintf("ecs: configuration error (%s): %s: %s", e.Kind, e.SystemName, e.Detail)
}

// InvariantViolation is raised (via panic) for bugs: operating on a
// destroyed entity, double-adding a component id, registering the same
// system twice. These are never recovered internally.
type InvariantViolation struct {
	Kind   string
	Entity EntityID
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("ecs: invariant violation (%s) on entity %d: %s", e.Kind, e.Entity, e.Detail)
}

// panicInvariant raises an InvariantViolation. Invariant violations are
// bugs in the caller, not recoverable runtime conditions, so they panic
// rather than returning an error.
func panicInvariant(kind string, entity EntityID, detail string) {
	panic(&InvariantViolation{Kind: kind, Entity: entity, Detail: detail})
}
