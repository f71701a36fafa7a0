// Package ecs bridges match events into a [Donburi] world.
//
// [NewDonburiSink] publishes every [pong.Event] to [MatchEventType]. Systems
// subscribe to it and receive the events when the host processes the world's
// event queues, typically once per frame after Session.Update.
//
// Usage:
//
//	world := donburi.NewWorld()
//	session, _ := pong.NewSession(cfg, pong.WithEventSink(ecs.NewDonburiSink(world)))
//	ecs.MatchEventType.Subscribe(world, onMatchEvent)
//	// each frame:
//	session.Update(delta, bounds)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
