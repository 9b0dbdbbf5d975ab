package domain

// RawNode is the JSON shape of one node in a Figma file response. Children
// nest under the conventional "children" key; type-specific metadata the
// pipeline cares about is decoded, everything else is dropped.
type RawNode struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Characters string       `json:"characters,omitempty"`
	Bounds     *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Children   []*RawNode   `json:"children,omitempty"`
}

// BoundingBox is a node's absolute bounding box in the design canvas.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// File is a fetched design document: its display name plus the raw node
// tree rooted at the document node.
type File struct {
	Key      string
	Name     string
	Document *RawNode
}

// Tree is an arena of Nodes indexed by position, with an id lookup table.
// Parent/child links are arena indices, so traversal is bounded by the
// arena size and terminates even if a caller holds stale references.
type Tree struct {
	nodes []*Node
	byID  map[string]int
}

// BuildTree converts a raw nested structure into a typed Node tree.
// It is a pure transform: no IO, no mutation of the input.
//
// It returns a *MalformedTreeError when a node is missing its id or type,
// when the same raw node or id appears on the current descent path (a
// cycle), or when an id repeats anywhere in the document.
func BuildTree(root *RawNode) (*Tree, error) {
	if root == nil {
		return &Tree{byID: map[string]int{}}, nil
	}
	t := &Tree{byID: make(map[string]int)}
	onPath := make(map[*RawNode]bool)
	if _, err := t.build(root, -1, onPath); err != nil {
		return nil, err
	}
	return t, nil
}

// build appends raw and its subtree to the arena, returning raw's index.
// onPath tracks the raw nodes on the current descent path for cycle
// detection.
func (t *Tree) build(raw *RawNode, parent int, onPath map[*RawNode]bool) (int, error) {
	if onPath[raw] {
		return 0, &MalformedTreeError{NodeID: raw.ID, Reason: "node is its own ancestor"}
	}
	if raw.ID == "" {
		return 0, &MalformedTreeError{Reason: "node has no id"}
	}
	if raw.Type == "" {
		return 0, &MalformedTreeError{NodeID: raw.ID, Reason: "node has no type"}
	}
	if _, dup := t.byID[raw.ID]; dup {
		return 0, &MalformedTreeError{NodeID: raw.ID, Reason: "duplicate node id"}
	}

	idx := len(t.nodes)
	n := &Node{
		ID:         raw.ID,
		Name:       raw.Name,
		Type:       NodeType(raw.Type),
		Characters: raw.Characters,
		tree:       t,
		index:      idx,
		parent:     parent,
	}
	if raw.Bounds != nil {
		n.width = raw.Bounds.Width
		n.height = raw.Bounds.Height
		n.hasBounds = true
	}
	t.nodes = append(t.nodes, n)
	t.byID[raw.ID] = idx

	onPath[raw] = true
	for _, child := range raw.Children {
		ci, err := t.build(child, idx, onPath)
		if err != nil {
			return 0, err
		}
		n.children = append(n.children, ci)
	}
	delete(onPath, raw)

	return idx, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[0]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Get retrieves a node by id. Returns nil if not found.
func (t *Tree) Get(id string) *Node {
	idx, ok := t.byID[id]
	if !ok {
		return nil
	}
	return t.nodes[idx]
}

// Walk visits every node depth-first pre-order (parent before children,
// children in document order). Returning false from fn prunes the subtree
// below the current node; siblings are still visited.
func (t *Tree) Walk(fn func(*Node) bool) {
	root := t.Root()
	if root == nil {
		return
	}
	t.walk(root, fn)
}

func (t *Tree) walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, ci := range n.children {
		t.walk(t.nodes[ci], fn)
	}
}
