package ecs

import (
	"testing"

	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []panzoom.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e panzoom.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(panzoom.GestureEvent{Type: panzoom.GesturePan, DeltaX: 4, DeltaY: -2})
	store.EmitEvent(panzoom.GestureEvent{Type: panzoom.GesturePinch, Scale: 1.5, Zoom: 1.5})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != panzoom.GesturePan || e.DeltaX != 4 || e.DeltaY != -2 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != panzoom.GesturePinch || e.Scale != 1.5 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_FromController(t *testing.T) {
	world := donburi.NewWorld()
	model, err := panzoom.NewModel(panzoom.DefaultConfig(),
		panzoom.FillBounds(panzoom.Rect{Width: 400, Height: 300}), nil)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := panzoom.NewController(model)
	ctrl.SetEventStore(NewDonburiStore(world))

	var types []panzoom.GestureType
	GestureEventType.Subscribe(world, func(w donburi.World, e panzoom.GestureEvent) {
		types = append(types, e.Type)
	})

	ctrl.HandleEvent(panzoom.PointerEvent{Action: panzoom.PointerDown, PointerID: 0, X: 10, Y: 10})
	ctrl.HandleEvent(panzoom.PointerEvent{Action: panzoom.PointerMove, PointerID: 0, X: 20, Y: 10})
	ctrl.HandleEvent(panzoom.PointerEvent{Action: panzoom.PointerUp, PointerID: 0, X: 20, Y: 10})
	events.ProcessAllEvents(world)

	want := []panzoom.GestureType{panzoom.GesturePanStart, panzoom.GesturePan, panzoom.GesturePanEnd}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e panzoom.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e panzoom.GestureEvent) {
		count2++
	})

	store.EmitEvent(panzoom.GestureEvent{Type: panzoom.GestureDoubleTap})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
