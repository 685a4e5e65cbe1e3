package tokenizer

import "strings"

// tagBuilder accumulates a StartTag or EndTag under construction. It is
// explicit scratch state on the Tokenizer, cleared on emission, rather
// than shared mutable state (spec.md §9 "Scratch state lifecycle").
type tagBuilder struct {
	isEnd       bool
	name        strings.Builder
	selfClosing bool
	attrs       map[string]string
	hasCurAttr  bool
	curName     strings.Builder
	curValue    strings.Builder
	curInvalid  bool
}

func newTagBuilder(isEnd bool) *tagBuilder {
	return &tagBuilder{isEnd: isEnd, attrs: map[string]string{}}
}

func (b *tagBuilder) writeName(r rune) {
	b.name.WriteRune(toLowerRune(r))
}

// newAttr saves whatever attribute was being built and starts a new one.
func (b *tagBuilder) newAttr(sink Sink, st state, offset int) {
	b.saveAttr(sink, st, offset)
	b.curName.Reset()
	b.curValue.Reset()
	b.curInvalid = false
	b.hasCurAttr = true
}

// checkDuplicate marks the in-progress attribute invalid if its name
// (as built so far) already exists, matching the original tokenizer's
// early duplicate check in attr_name_state/post_attr_name_state.
func (b *tagBuilder) checkDuplicate(sink Sink, st state, offset int) {
	if !b.hasCurAttr {
		return
	}
	name := b.curName.String()
	if _, exists := b.attrs[name]; exists {
		b.curInvalid = true
		sink.emit(st, offset, "duplicate attribute "+name)
	}
}

// saveAttr commits the in-progress attribute to attrs unless its name is
// empty or it was flagged invalid (duplicate).
func (b *tagBuilder) saveAttr(sink Sink, st state, offset int) {
	if !b.hasCurAttr {
		return
	}
	name := b.curName.String()
	if name != "" && !b.curInvalid {
		b.attrs[name] = b.curValue.String()
	}
	b.hasCurAttr = false
}
