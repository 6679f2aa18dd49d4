// Package ecs implements the framework for an Entity-Component-System
// (ECS) runtime. This architecture is used to decouple data from logic:
//
//  1. Entities are the objects in the simulation. Each is identified by a
//     unique number and holds the components attached to it, but carries
//     no data of its own beyond them.
//  2. Components are the data associated with an entity. Each component
//     stores data specific to a given concern, and can be added to an
//     entity to be processed by systems interested in that concern.
//  3. Systems operate on components associated with entities. They are
//     the logic of the simulation, driven once per frame by a World.
//
// The World is the main ECS object. It owns the entity table, the
// component registry, the per-filter contexts, and the per-component
// watchers, and drives the frame pipeline described in pipeline.go.
package ecs

// EntityID uniquely identifies an entity for the life of the World that
// created it. Ids are never reused within a World's lifetime.
type EntityID uint64

// ComponentID is a small dense integer assigned by a ComponentRegistry to
// a component or message Go type. Two types never share an id unless one
// aliases a reserved carrier interface (see registry.go).
type ComponentID uint32

// ContextID canonically identifies a distinct filter signature. Two
// systems whose filters normalize to the same signature share one
// Context.
type ContextID string

// WatcherID identifies a ComponentWatcher, which is keyed by the pair
// (ContextID, ComponentID).
type WatcherID string

// SystemID identifies a registered system within a World's pipeline.
type SystemID uint32

// InvalidEntityID is never assigned to a real entity (World ids start at
// 1); it marks "no entity", such as a Transform with no parent.
const InvalidEntityID EntityID = 0
