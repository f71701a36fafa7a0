package view

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree.
type Scene struct {
	root *Node

	// ClearColor fills the screen before drawing. Zero alpha skips the fill.
	ClearColor Color

	op ebiten.DrawImageOptions
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update runs node update hooks and refreshes world transforms.
func (s *Scene) Update(dt float64) {
	runUpdateHooks(s.root, dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

func runUpdateHooks(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		runUpdateHooks(child, dt)
	}
}

// Draw traverses the scene tree in child order and draws every visible node.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.draw(screen, s.root)
}

func (s *Scene) draw(target *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}

	switch n.Type {
	case NodeTypeSprite:
		img := n.customImage
		if img == nil {
			img = WhitePixel()
		}
		s.drawImage(target, img, n, n.Color)
	case NodeTypeText:
		if img := n.TextBlock.render(); img != nil {
			s.drawImage(target, img, n, ColorWhite)
		}
	}

	for _, child := range n.children {
		s.draw(target, child)
	}
}

func (s *Scene) drawImage(target, img *ebiten.Image, n *Node, tint Color) {
	op := &s.op
	op.GeoM = geoM(n.worldTransform)
	op.ColorScale.Reset()
	a := float32(tint.A * n.worldAlpha)
	op.ColorScale.Scale(float32(tint.R)*a, float32(tint.G)*a, float32(tint.B)*a, a)
	target.DrawImage(img, op)
}
