package treebuilder

import (
	"github.com/cbrowse/htmlcore/dom"
	"github.com/cbrowse/htmlcore/quirks"
	"github.com/cbrowse/htmlcore/token"
)

func (b *Builder) handleInitial(tok token.Token) {
	if c := tok.IsCharacter(); !c.IsNull() && isWhitespace(c.Data) {
		return
	}
	if cm := tok.IsComment(); !cm.IsNull() {
		b.insertComment(cm.Data)
		return
	}
	if d := tok.IsDoctype(); !d.IsNull() {
		b.doctype = dom.DoctypeFromParts(d.Name, d.PubID, d.SysID)
		qd := quirks.Doctype{Name: d.Name, PubID: d.PubID, SysID: d.SysID, ForceQuirks: d.ForceQuirks}
		b.quirks = quirks.Determine(qd)
		b.mode = modeBeforeHTML
		return
	}
	b.errorf("expected doctype")
	b.quirks = true
	b.mode = modeBeforeHTML
	b.reprocess(tok)
}

func (b *Builder) handleBeforeHTML(tok token.Token) {
	switch {
	case !tok.IsComment().IsNull():
		b.insertComment(tok.IsComment().Data)
		return
	case !tok.IsCharacter().IsNull() && isWhitespace(tok.IsCharacter().Data):
		return
	case isStartTagNamed(tok, "html"):
		st := tok.IsStartTag()
		b.htmlNode = b.insertElement("html", st.Attrs)
		b.mode = modeBeforeHead
		return
	case isEndTagOtherThan(tok, "head", "body", "html", "br"):
		return
	default:
		b.htmlNode = b.insertElement("html", nil)
		b.mode = modeBeforeHead
		b.reprocess(tok)
	}
}

func (b *Builder) handleBeforeHead(tok token.Token) {
	switch {
	case !tok.IsComment().IsNull():
		b.insertComment(tok.IsComment().Data)
		return
	case !tok.IsCharacter().IsNull() && isWhitespace(tok.IsCharacter().Data):
		return
	case isStartTagNamed(tok, "html"):
		mergeHTMLAttrs(b.htmlNode, tok.IsStartTag())
		return
	case isStartTagNamed(tok, "head"):
		st := tok.IsStartTag()
		b.headNode = b.insertElement("head", st.Attrs)
		b.mode = modeInHead
		return
	case isEndTagOtherThan(tok, "head", "body", "html", "br"):
		return
	default:
		b.headNode = b.insertElement("head", nil)
		b.mode = modeInHead
		b.reprocess(tok)
	}
}

// voidTags never receive children or a matching end tag (spec.md §4.2).
var voidTags = map[string]bool{
	"base": true, "link": true, "meta": true,
}

func (b *Builder) handleInHead(tok token.Token) {
	switch {
	case !tok.IsComment().IsNull():
		b.insertComment(tok.IsComment().Data)
		return
	case !tok.IsCharacter().IsNull() && isWhitespace(tok.IsCharacter().Data):
		b.insertText(string(tok.IsCharacter().Data))
		return
	case isStartTagNamed(tok, "html"):
		mergeHTMLAttrs(b.htmlNode, tok.IsStartTag())
		return
	case isStartTagIn(tok, voidTags):
		st := tok.IsStartTag()
		b.insertElement(st.Name, st.Attrs)
		b.oe.pop()
		return
	case isStartTagNamed(tok, "title"):
		st := tok.IsStartTag()
		b.insertElement("title", st.Attrs)
		b.originalMode = b.mode
		b.mode = modeText
		return
	case isStartTagIn(tok, map[string]bool{"style": true, "noframes": true}):
		st := tok.IsStartTag()
		b.insertElement(st.Name, st.Attrs)
		b.originalMode = b.mode
		b.mode = modeText
		return
	case isEndTagNamed(tok, "head"):
		b.oe.pop()
		b.mode = modeAfterHead
		return
	case isEndTagOtherThan(tok, "body", "html", "br"):
		b.errorf("unexpected end tag in head")
		return
	default:
		b.oe.pop()
		b.mode = modeAfterHead
		b.reprocess(tok)
	}
}

func (b *Builder) handleAfterHead(tok token.Token) {
	switch {
	case !tok.IsComment().IsNull():
		b.insertComment(tok.IsComment().Data)
		return
	case !tok.IsCharacter().IsNull() && isWhitespace(tok.IsCharacter().Data):
		b.insertText(string(tok.IsCharacter().Data))
		return
	case isStartTagNamed(tok, "html"):
		mergeHTMLAttrs(b.htmlNode, tok.IsStartTag())
		return
	case isStartTagNamed(tok, "body"):
		st := tok.IsStartTag()
		b.insertElement("body", st.Attrs)
		b.framesetOK = false
		b.mode = modeInBody
		return
	case isEndTagOtherThan(tok, "body", "html", "br"):
		b.errorf("unexpected end tag after head")
		return
	default:
		b.insertElement("body", nil)
		b.mode = modeInBody
		b.reprocess(tok)
	}
}

func (b *Builder) handleInBody(tok token.Token) {
	switch {
	case tok.IsEOF().IsNull() == false:
		b.done = true
		return
	case !tok.IsCharacter().IsNull():
		c := tok.IsCharacter()
		if c.Data == 0 {
			b.errorf("unexpected null character")
			return
		}
		b.insertText(string(c.Data))
		if !isWhitespace(c.Data) {
			b.framesetOK = false
		}
		return
	case !tok.IsComment().IsNull():
		b.insertComment(tok.IsComment().Data)
		return
	case isStartTagNamed(tok, "html"):
		for _, n := range b.oe {
			if n.Name == "template" {
				return
			}
		}
		mergeHTMLAttrs(b.htmlNode, tok.IsStartTag())
		return
	case isStartTagIn(tok, blockTags):
		st := tok.IsStartTag()
		if b.oe.inScope(buttonScope, "p") {
			b.closeP()
		}
		b.insertElement(st.Name, st.Attrs)
		return
	case isStartTagIn(tok, headingTags):
		st := tok.IsStartTag()
		if b.oe.inScope(buttonScope, "p") {
			b.closeP()
		}
		if headingTags[b.oe.top().Name] {
			b.errorf("nested heading element")
			b.oe.pop()
		}
		b.insertElement(st.Name, st.Attrs)
		return
	case isStartTagIn(tok, voidTags) || isStartTagNamed(tok, "br"):
		st := tok.IsStartTag()
		b.insertElement(st.Name, st.Attrs)
		b.oe.pop()
		b.framesetOK = false
		return
	case isEndTagNamed(tok, "p"):
		if !b.oe.inScope(buttonScope, "p") {
			b.errorf("end tag p with no open p element")
			b.insertElement("p", nil)
		}
		b.closeP()
		return
	case isEndTagIn(tok, blockTags):
		et := tok.IsEndTag()
		if !b.oe.inScope(defaultScope, et.Name) {
			b.errorf("unmatched end tag " + et.Name)
			return
		}
		b.oe.generateImpliedPEndTags()
		b.oe.popUntilPopped(defaultScope, et.Name)
		return
	case isEndTagIn(tok, headingTags):
		et := tok.IsEndTag()
		if !b.oe.inScope(defaultScope, "h1", "h2", "h3", "h4", "h5", "h6") {
			b.errorf("unmatched end tag " + et.Name)
			return
		}
		b.oe.generateImpliedPEndTags()
		b.oe.popUntilPopped(defaultScope, "h1", "h2", "h3", "h4", "h5", "h6")
		return
	case !tok.IsStartTag().IsNull():
		st := tok.IsStartTag()
		b.insertElement(st.Name, st.Attrs)
		if st.SelfClosing {
			b.oe.pop()
		}
		return
	case !tok.IsEndTag().IsNull():
		et := tok.IsEndTag()
		if i := b.oe.indexInScope(defaultScope, et.Name); i != -1 {
			b.oe = b.oe[:i]
		} else {
			b.errorf("unmatched end tag " + et.Name)
		}
		return
	}
}

// closeP implements the "close a p element" steps this builder's
// scope supports: pop any <p> elements on top of the stack, then pop
// to and including the nearest <p> still in button scope, if any.
func (b *Builder) closeP() {
	b.oe.generateImpliedPEndTags()
	b.oe.popUntilPopped(buttonScope, "p")
}

func (b *Builder) handleText(tok token.Token) {
	switch {
	case !tok.IsCharacter().IsNull():
		b.insertText(string(tok.IsCharacter().Data))
	case !tok.IsEndTag().IsNull():
		b.oe.pop()
		b.mode = b.originalMode
	case tok.IsEOF().IsNull() == false:
		b.errorf("eof in raw text element")
		b.oe.pop()
		b.mode = b.originalMode
		b.reprocess(tok)
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isStartTagNamed(tok token.Token, name string) bool {
	st := tok.IsStartTag()
	return !st.IsNull() && st.Name == name
}

func isEndTagNamed(tok token.Token, name string) bool {
	et := tok.IsEndTag()
	return !et.IsNull() && et.Name == name
}

func isStartTagIn(tok token.Token, set map[string]bool) bool {
	st := tok.IsStartTag()
	return !st.IsNull() && set[st.Name]
}

func isEndTagIn(tok token.Token, set map[string]bool) bool {
	et := tok.IsEndTag()
	return !et.IsNull() && set[et.Name]
}

func isEndTagOtherThan(tok token.Token, names ...string) bool {
	et := tok.IsEndTag()
	if et.IsNull() {
		return false
	}
	for _, n := range names {
		if et.Name == n {
			return false
		}
	}
	return true
}
