package treebuilder

import (
	"github.com/cbrowse/htmlcore/dom"
	"github.com/cbrowse/htmlcore/token"
	"github.com/cbrowse/htmlcore/tokenizer"
)

// blockTags is the trimmed "special" category (WHATWG §13.2.6.4.7) this
// builder recognizes: elements whose start tag implicitly closes an
// open <p> in button scope, and whose end tag is handled generically by
// generating implied end tags and popping to the matching element.
// Table, form, and list-item elements are excluded — the list-related
// and table insertion modes are non-goals (spec.md §11).
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"center": true, "details": true, "dialog": true, "dir": true,
	"div": true, "dl": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "header": true, "hgroup": true,
	"main": true, "menu": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "summary": true, "ul": true, "listing": true,
}

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Builder runs the tree-construction state machine over a
// tokenizer.Tokenizer. One Builder parses one document and is not
// reused (spec.md §5).
type Builder struct {
	tok          *tokenizer.Tokenizer
	sink         tokenizer.Sink
	mode         insertionMode
	originalMode insertionMode
	oe           nodeStack

	doc        *dom.Node
	htmlNode   *dom.Node
	headNode   *dom.Node

	framesetOK bool
	quirks     bool
	doctype    dom.Doctype

	pending    token.Token
	hasPending bool

	done bool
}

// New creates a Builder that reads tokens from tok, reporting parse
// errors to sink (which may be nil).
func New(tok *tokenizer.Tokenizer, sink tokenizer.Sink) *Builder {
	return &Builder{
		tok:        tok,
		sink:       sink,
		mode:       modeInitial,
		doc:        dom.NewNode("#document", nil),
		framesetOK: true,
	}
}

// Run drives the builder to completion and returns the resulting
// document. It is the only exported entry point; the per-mode handlers
// below are implementation detail.
func (b *Builder) Run() *dom.Document {
	for !b.done {
		tok := b.nextToken()
		builderDispatch[b.mode](b, tok)
	}
	return b.finish()
}

func (b *Builder) finish() *dom.Document {
	root := b.htmlNode
	if root == nil {
		root = dom.NewNode("html", nil)
	}
	return dom.NewDocument(root, b.doctype, b.quirks)
}

// nextToken returns the next token to process, honoring a single slot
// of lookahead used by modes that "reprocess" a token under a different
// insertion mode (spec.md §4.2's reprocess semantics).
func (b *Builder) nextToken() token.Token {
	if b.hasPending {
		b.hasPending = false
		return b.pending
	}
	return b.tok.Next()
}

// reprocess requeues tok to be returned by the next call to nextToken,
// used when a mode changes state and wants the same token handled again
// under the new mode instead of advancing the tokenizer.
func (b *Builder) reprocess(tok token.Token) {
	b.pending = tok
	b.hasPending = true
}

func (b *Builder) errorf(msg string) {
	if b.sink != nil {
		b.sink(tokenizer.ParseError{State: b.mode.String(), Message: msg})
	}
}

func (b *Builder) currentParent() *dom.Node {
	if t := b.oe.top(); !t.IsNull() {
		return t
	}
	return b.doc
}

func (b *Builder) insertElement(name string, attrs map[string]string) *dom.Node {
	n := dom.NewNode(name, attrs)
	b.currentParent().Adopt(n)
	b.oe.push(n)
	return n
}

func (b *Builder) insertText(data string) {
	if data == "" {
		return
	}
	parent := b.currentParent()
	if last := parent.LastChild(); last != nil && last.IsText() {
		last.Text += data
		return
	}
	parent.Adopt(dom.NewText(data))
}

func (b *Builder) insertComment(data string) {
	// Comments are modeled as nodes named "#comment" with their data in
	// Text, mirroring the text-node convention (spec.md §3).
	n := &dom.Node{Name: "#comment", Text: data}
	b.currentParent().Adopt(n)
}

// mergeHTMLAttrs folds a second <html> start tag's attributes into the
// document element without overwriting attributes it already has. This
// is the corrected version of the original tree constructor's
// html_in_body, which iterated `self.token.attrs.values()` — the
// values of an already-built dict — as if they were (name, value)
// pairs, so it never actually merged anything. The fix iterates the
// token's attributes themselves and only ever fills in names the root
// element doesn't already carry (spec.md §9 "corrected algorithm").
func mergeHTMLAttrs(root *dom.Node, st token.StartTag) {
	if root == nil {
		return
	}
	for name, value := range st.Attrs {
		if _, exists := root.Attrs[name]; !exists {
			if root.Attrs == nil {
				root.Attrs = map[string]string{}
			}
			root.Attrs[name] = value
		}
	}
}

// builderDispatch is the insertion-mode dispatch table, mirroring the
// tokenizer's compile-time-sized array (spec.md §9).
var builderDispatch = [numModes]func(*Builder, token.Token){
	modeInitial:    (*Builder).handleInitial,
	modeBeforeHTML: (*Builder).handleBeforeHTML,
	modeBeforeHead: (*Builder).handleBeforeHead,
	modeInHead:     (*Builder).handleInHead,
	modeAfterHead:  (*Builder).handleAfterHead,
	modeInBody:     (*Builder).handleInBody,
	modeText:       (*Builder).handleText,
}
