// Package ecs provides ECS adapters for wisp's cursor events.
//
// The primary adapter is [NewDonburiSink], which bridges wisp cursor events
// (state changes, presses, releases, hover enter/leave) into a [Donburi]
// world as typed events. Subscribe to [CursorEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// Nodes that carry a donburi.Entity in UserData, directly or through an
// ancestor, have that entity attached to their events.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
