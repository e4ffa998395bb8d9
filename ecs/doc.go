// Package ecs provides ECS adapters for panzoom's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges recognized
// gestures (pan, pinch, double-tap, long-press) into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	controller.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
