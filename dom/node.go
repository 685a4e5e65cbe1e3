// Package dom holds the node tree the tree builder assembles and the
// Document it is wrapped in once parsing finishes.
//
// Modifications from the teacher's golang.org/x/net/html.Node (which
// this package does not import): children are kept as an ordered slice
// on the parent rather than a sibling-linked list, following
// original_source/dash/dom/node.py's "children: ordered sequence"
// model; there is no namespace field since foreign content is a
// non-goal.
package dom

import "strings"

// TextName is the Name of a node that holds a run of character data.
const TextName = "<text>"

// nullName is the Name reported by Null and by any node produced via
// the kind-predicate accessors when nothing matched.
const nullName = "<null>"

// Node is a single element, text run, or (transiently, during
// construction) document fragment in the tree.
type Node struct {
	// Name is the ASCII-lowercase tag name, TextName for text nodes, or
	// nullName for the Null sentinel.
	Name string

	// Attrs holds attribute name/value pairs. Always ASCII-lowercase
	// keys (spec.md §8 invariant 4).
	Attrs map[string]string

	// Parent is a non-owning back-reference; nil only for the tree root.
	Parent *Node

	// Children is the ordered list of child nodes. The tree owns this
	// slice; Parent is a read-only traversal aid.
	Children []*Node

	// Text accumulates character data for a text node (Name == TextName).
	Text string

	null bool
}

// Null is the shared null-node sentinel returned by predicate accessors
// when the queried relationship doesn't exist (e.g. LastChild of a leaf,
// or a well-known child that was never inserted). Its boolean
// interpretation is IsNull() == true and its Name/Text read as "<null>".
var Null = &Node{Name: nullName, Text: nullName, null: true}

// IsNull reports whether n is the Null sentinel.
func (n *Node) IsNull() bool {
	return n == nil || n.null
}

// IsText reports whether n holds character data.
func (n *Node) IsText() bool {
	return !n.IsNull() && n.Name == TextName
}

// NewNode creates an element node with the given tag name and attributes.
// attrs may be nil.
func NewNode(name string, attrs map[string]string) *Node {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Node{Name: name, Attrs: attrs}
}

// NewText creates a text node seeded with the given data.
func NewText(data string) *Node {
	return &Node{Name: TextName, Text: data}
}

// Adopt appends child to n's children and sets child's parent to n.
func (n *Node) Adopt(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// LastChild returns n's last child, or Null if n has none.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return Null
	}
	return n.Children[len(n.Children)-1]
}

// Child returns the first child whose Name matches (case-insensitively
// irrelevant here since names are always stored lowercase), or Null.
// This is the Go equivalent of the Python source's attribute-style
// __getattr__ lookup (spec.md §6's "convenience attribute access").
func (n *Node) Child(name string) *Node {
	if n.IsNull() {
		return Null
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return Null
}

// Walk performs a depth-first pre-order traversal of n's descendants,
// calling visit for each one. It stops early if visit returns false.
func (n *Node) Walk(visit func(*Node) bool) {
	var walk func(*Node) bool
	walk = func(p *Node) bool {
		for _, c := range p.Children {
			if !visit(c) || !walk(c) {
				return false
			}
		}
		return true
	}
	walk(n)
}

// TextContent concatenates the Text of every text-node descendant of n,
// in document order.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.IsText() {
			sb.WriteString(c.Text)
		}
		return true
	})
	return sb.String()
}
