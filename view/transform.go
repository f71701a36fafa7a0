package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}
