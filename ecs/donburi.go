package ecs

import (
	"github.com/phanxgames/wisp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CursorEvent is a wisp cursor event with the entity of the node it concerns.
// Entity is donburi.Null when no node, or no ancestor, carries one.
type CursorEvent struct {
	wisp.CursorEvent
	Entity donburi.Entity
}

// CursorEventType is the Donburi event type for wisp cursor events.
var CursorEventType = events.NewEventType[CursorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Cursor events are published to CursorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) wisp.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCursorEvent(event wisp.CursorEvent) {
	CursorEventType.Publish(s.world, CursorEvent{
		CursorEvent: event,
		Entity:      entityOf(event.Node),
	})
}

// entityOf returns the nearest donburi.Entity stored in UserData at or above n.
func entityOf(n *wisp.Node) donburi.Entity {
	owner := n.Closest(func(p *wisp.Node) bool {
		_, ok := p.UserData.(donburi.Entity)
		return ok
	})
	if owner == nil {
		return donburi.Null
	}
	return owner.UserData.(donburi.Entity)
}
