package component

// DamageMessage is the demo Message variant: a transient payload
// recording one instance of incoming damage, attached to an entity for
// exactly one frame. Grounded on the teacher's
// internal/ecs/component/damage.go (DamageRecord), reshaped from a
// persistent accumulating record into a per-frame Message.
type DamageMessage struct {
	Amount int
	Source string
}

// MessageName satisfies ecs.Message.
func (*DamageMessage) MessageName() string { return "DamageMessage" }
