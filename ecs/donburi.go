package ecs

import (
	"github.com/ArekP86/pong"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MatchEventType is the Donburi event type for match events.
var MatchEventType = events.NewEventType[pong.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on MatchEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) pong.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pong.Event) {
	MatchEventType.Publish(s.world, event)
}

// SubscribeKind registers fn for events of a single kind.
func SubscribeKind(world donburi.World, kind pong.EventKind, fn func(pong.Event)) {
	MatchEventType.Subscribe(world, func(_ donburi.World, e pong.Event) {
		if e.Kind == kind {
			fn(e)
		}
	})
}
