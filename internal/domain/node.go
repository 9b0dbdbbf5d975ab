// Package domain contains core business entities and interfaces.
package domain

// NodeType is the type tag of a design node, as reported by the Figma API.
type NodeType string

// Node types that the pipeline has rules for. Any other tag is carried
// through untouched and treated as a structural-only node.
const (
	TypeDocument  NodeType = "DOCUMENT"
	TypeCanvas    NodeType = "CANVAS"
	TypeFrame     NodeType = "FRAME"
	TypeGroup     NodeType = "GROUP"
	TypeComponent NodeType = "COMPONENT"
	TypeInstance  NodeType = "INSTANCE"
	TypeText      NodeType = "TEXT"
	TypeVector    NodeType = "VECTOR"
	TypeRectangle NodeType = "RECTANGLE"
	TypeImage     NodeType = "IMAGE"
)

// Node is one element of the design document tree. Nodes live in a Tree
// arena and reference their parent and children by arena index, never by
// owning pointer.
type Node struct {
	ID         string   // Document-scoped identifier (e.g. "1:23")
	Name       string   // Display name, author-controlled free text
	Type       NodeType // Type tag
	Characters string   // Text content (TEXT nodes only)

	tree     *Tree
	index    int
	parent   int // arena index of parent, -1 for the root
	children []int

	width     float64
	height    float64
	hasBounds bool
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	if n.parent < 0 {
		return nil
	}
	return n.tree.nodes[n.parent]
}

// Children returns the child nodes in document order. The returned slice
// is freshly allocated; mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, idx := range n.children {
		out[i] = n.tree.nodes[idx]
	}
	return out
}

// ZeroSized reports whether the node carries bounding-box metadata that
// declares it zero-width or zero-height. Nodes without bounds metadata are
// not considered zero-sized.
func (n *Node) ZeroSized() bool {
	return n.hasBounds && (n.width <= 0 || n.height <= 0)
}

// IsRoot returns true if this node is the tree root.
func (n *Node) IsRoot() bool {
	return n.parent < 0
}
