package dom

import "testing"

func TestAdoptSetsParent(t *testing.T) {
	parent := NewNode("div", nil)
	child := NewNode("span", nil)
	parent.Adopt(child)

	if child.Parent != parent {
		t.Fatalf("child.Parent = %v, want %v", child.Parent, parent)
	}
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Fatalf("parent.Children = %v, want [child]", parent.Children)
	}
}

func TestLastChildOnEmptyReturnsNull(t *testing.T) {
	n := NewNode("p", nil)
	if got := n.LastChild(); !got.IsNull() {
		t.Fatalf("LastChild() = %v, want Null", got)
	}
}

func TestChildMissingReturnsNull(t *testing.T) {
	n := NewNode("html", nil)
	if got := n.Child("head"); !got.IsNull() {
		t.Fatalf("Child(%q) = %v, want Null", "head", got)
	}
	if Null.Name != nullName || Null.Text != nullName {
		t.Fatalf("Null sentinel fields corrupted: %+v", Null)
	}
}

func TestWalkIsDepthFirstPreOrder(t *testing.T) {
	root := NewNode("html", nil)
	head := NewNode("head", nil)
	body := NewNode("body", nil)
	title := NewNode("title", nil)
	root.Adopt(head)
	root.Adopt(body)
	head.Adopt(title)
	title.Adopt(NewText("Hi"))
	body.Adopt(NewText("World"))

	var order []string
	root.Walk(func(n *Node) bool {
		if n.IsText() {
			order = append(order, n.Text)
		} else {
			order = append(order, n.Name)
		}
		return true
	})

	want := []string{"head", "title", "Hi", "body", "World"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q (full: %v)", i, order[i], want[i], order)
		}
	}
}

func TestTextContentConcatenatesDescendants(t *testing.T) {
	title := NewNode("title", nil)
	title.Adopt(NewText("A"))
	title.Adopt(NewText("B"))
	if got := title.TextContent(); got != "AB" {
		t.Fatalf("TextContent() = %q, want %q", got, "AB")
	}
}
