// Package pong is the simulation core of a two-player paddle game.
//
// A [Session] owns the ball, both paddles, the score and the input flags. A
// host (a window, a terminal, a test) drives it by calling [Session.Update]
// once per display frame with the elapsed time in frame units and the current
// play-area [Bounds]. The session never draws anything and never blocks; hosts
// read its state afterwards and copy it onto their own presentation objects.
//
// # Quick start
//
//	s, err := pong.NewSession(pong.ClassicConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for {
//		s.KeyDown('w')
//		s.Update(1, pong.Bounds{W: 800, H: 600})
//		fmt.Println(s.Score())
//	}
//
// # Variants
//
// [ClassicConfig] reproduces the plain box-collision game. [CurveConfig]
// enables the spin mechanic: a moving paddle imparts curve to the ball, which
// then bends the ball's velocity each frame while decaying geometrically.
//
// # Events
//
// Score changes, serves, paddle hits, wall bounces and safety recenters are
// reported to an [EventSink]. The ecs package provides a donburi-backed sink.
//
// # Scripted input
//
// [LoadScript] parses a YAML or JSON list of key presses, pointer moves and
// waits. A [ScriptRunner] applies one step per frame before Update, which makes
// whole matches reproducible together with [WithSeed].
package pong
