package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for panzoom gestures.
var GestureEventType = events.NewEventType[panzoom.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gestures are published to GestureEventType and delivered when the world
// processes events.
func NewDonburiStore(world donburi.World) panzoom.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event panzoom.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
