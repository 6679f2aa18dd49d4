package ecs

import "reflect"

// messageTypeKey returns a comparable key identifying m's concrete Go
// type, used to match a state-machine's message wait against the
// messages sent during a frame.
func messageTypeKey(m Message) reflect.Type {
	return reflect.TypeOf(m)
}
