package scene

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

// Node is one entry of a loaded scene graph. Geometry is set only on
// renderable (mesh) nodes.
type Node struct {
	ID        uuid.UUID
	Name      string
	Transform *math.Transform
	Geometry  *metadata.Geometry
	Children  []*Node
}

// NewNode creates a node with an identity transform and a fresh id.
func NewNode(id uuid.UUID, name string) *Node {
	return &Node{
		ID:        id,
		Name:      name,
		Transform: math.TransformCreate(),
	}
}

func (n *Node) IsMesh() bool {
	return n != nil && n.Geometry != nil
}

func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Traverse visits n and then each child subtree, depth first.
func (n *Node) Traverse(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Traverse(fn)
	}
}

// Graph is a loaded scene, read-only once handed to the systems.
type Graph struct {
	Name   string
	Source string
	Root   *Node
}

func (g *Graph) Traverse(fn func(*Node)) {
	if g == nil {
		return
	}
	g.Root.Traverse(fn)
}

// MeshCount returns the number of renderable nodes.
func (g *Graph) MeshCount() int {
	count := 0
	g.Traverse(func(n *Node) {
		if n.IsMesh() {
			count++
		}
	})
	return count
}
