package dom

// Doctype records the resolved DOCTYPE declaration for a Document, if
// one was present in the source.
type Doctype struct {
	Name  string
	PubID string
	SysID string
}

// DoctypeFromParts builds a Doctype from the tokenizer's nilable
// PubID/SysID pointers, reading absent identifiers as empty strings.
func DoctypeFromParts(name string, pubID, sysID *string) Doctype {
	d := Doctype{Name: name}
	if pubID != nil {
		d.PubID = *pubID
	}
	if sysID != nil {
		d.SysID = *sysID
	}
	return d
}

// Document wraps the finished node tree along with the metadata the
// tree builder accumulated while constructing it: the resolved
// doctype, the quirks-mode flag it implies, and the document title
// (the concatenated text content of head > title).
//
// Mirrors original_source/dash/dom/document.py and
// original_source/dash/html_parser/document.py, which both compute
// Title eagerly from root.head.title rather than on demand.
type Document struct {
	Root    *Node
	Doctype Doctype
	Quirks  bool
	Title   string
}

// NewDocument builds a Document from a finished root <html> node,
// computing Title from head > title once; Head and Body are looked up
// on demand by the methods below.
func NewDocument(root *Node, doctype Doctype, quirks bool) *Document {
	title := root.Child("head").Child("title").TextContent()
	return &Document{
		Root:    root,
		Doctype: doctype,
		Quirks:  quirks,
		Title:   title,
	}
}

// Head returns the document's <head> element, or Null if it has none.
func (d *Document) Head() *Node { return d.Root.Child("head") }

// Body returns the document's <body> element, or Null if it has none.
func (d *Document) Body() *Node { return d.Root.Child("body") }

// Walk performs a depth-first pre-order traversal over the whole
// document, starting at the root element (spec.md §6: "The tree
// supports depth-first pre-order walk() iteration").
func (d *Document) Walk(visit func(*Node) bool) {
	if d.Root == nil {
		return
	}
	if !visit(d.Root) {
		return
	}
	d.Root.Walk(visit)
}
