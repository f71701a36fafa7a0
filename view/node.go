package view

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders the white pixel or a custom image
	NodeTypeText                      // renders a TextBlock
)

// nodeIDCounter is a plain counter (no atomic; the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. A single flat struct is used for all node
// types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during traversal
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool

	// Sprite fields (NodeTypeSprite)
	Color       Color
	customImage *ebiten.Image

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// OnUpdate is called once per Scene.Update with the frame time in
	// seconds.
	OnUpdate func(dt float64)
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node. With a nil image it draws the white pixel,
// so its scale is its size in pixels.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, customImage: img}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content and font.
func NewText(name string, content string, font *TTFFont) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content: content,
			Font:    font,
			Color:   ColorWhite,
			dirty:   true,
		},
	}
	nodeDefaults(n)
	return n
}

// imageSize returns the unscaled size of what the sprite draws.
func (n *Node) imageSize() (w, h float64) {
	if n.customImage == nil {
		return 1, 1
	}
	b := n.customImage.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// SetSize scales the sprite so it covers w x h pixels.
func (n *Node) SetSize(w, h float64) {
	iw, ih := n.imageSize()
	n.SetScale(w/iw, h/ih)
}

// CenterPivot moves the pivot to the middle of the sprite's image, so
// position and rotation refer to its center.
func (n *Node) CenterPivot() {
	iw, ih := n.imageSize()
	n.SetPivot(iw/2, ih/2)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("view: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("view: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
