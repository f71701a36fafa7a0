package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via TweenScale or TweenAlpha and call Update(dt) each frame. The group auto-applies values
// and marks the node dirty.
//
// There is no global animation manager; see Tweens.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// Tweens runs a set of tween groups, keeping at most one per node so a new
// animation replaces a running one.
type Tweens struct {
	groups []*TweenGroup
}

// Start adds g, replacing any running group on the same node.
func (t *Tweens) Start(g *TweenGroup) {
	for i, cur := range t.groups {
		if cur.target == g.target {
			t.groups[i] = g
			return
		}
	}
	t.groups = append(t.groups, g)
}

// Update advances every group and drops finished ones.
func (t *Tweens) Update(dt float32) {
	live := t.groups[:0]
	for _, g := range t.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(t.groups); i++ {
		t.groups[i] = nil
	}
	t.groups = live
}

// Len returns the number of running groups.
func (t *Tweens) Len() int {
	return len(t.groups)
}
