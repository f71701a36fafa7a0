// Package view renders a match with Ebitengine.
//
// It keeps a small retained scene graph: a Scene owns a tree of Nodes, each
// with a local transform (position, scale, rotation around a pivot), a tint
// and an alpha. Sprites draw a 1x1 white pixel stretched by their scale, or a
// loaded image. Text nodes render TrueType text through text/v2 into a cached
// image. TweenGroup animates node fields with gween.
//
// [Game] wires a [pong.Session] into the scene and implements ebiten.Game.
// The window is resizable; the play area always matches the window.
//
//	world := donburi.NewWorld()
//	session, _ := pong.NewSession(cfg, pong.WithEventSink(ecs.NewDonburiSink(world)))
//	game, _ := view.NewGame(session, world, view.Options{})
//	err := view.Run(game, view.RunConfig{Title: "Pong", Width: 800, Height: 600})
package view
