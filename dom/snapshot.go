package dom

// Snapshot is a cycle-free, comparable projection of a Node subtree,
// meant for diffing in tests (e.g. with github.com/google/go-cmp) where
// Node itself isn't a good fit: its Parent back-reference makes the
// tree cyclic and its null sentinel field is unexported.
type Snapshot struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []Snapshot
}

// Snap projects n and its descendants into a Snapshot tree.
func Snap(n *Node) Snapshot {
	if n.IsNull() {
		return Snapshot{Name: nullName}
	}
	s := Snapshot{Name: n.Name, Attrs: n.Attrs, Text: n.Text}
	for _, c := range n.Children {
		s.Children = append(s.Children, Snap(c))
	}
	return s
}
