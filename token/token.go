// Package token defines the tagged-variant token model the tokenizer
// emits and the tree builder consumes.
//
// Modifications from the teacher's golang.org/x/net/html.Token model:
//   - split into one concrete type per kind instead of a single struct
//     with a Type discriminant, so a re-implementation can dispatch with
//     a type switch instead of checking a string field.
//   - added the null-token sentinel (Null) and the Is* chaining
//     predicates used throughout the tree builder.
package token

import "golang.org/x/net/html/atom"

// Kind identifies which of the six token variants a Token is.
type Kind int

const (
	KindDoctype Kind = iota
	KindStartTag
	KindEndTag
	KindComment
	KindCharacter
	KindEOF
	kindNull
)

func (k Kind) String() string {
	switch k {
	case KindDoctype:
		return "DOCTYPE"
	case KindStartTag:
		return "START_TAG"
	case KindEndTag:
		return "END_TAG"
	case KindComment:
		return "COMMENT"
	case KindCharacter:
		return "CHAR"
	case KindEOF:
		return "EOF"
	default:
		return "<null>"
	}
}

// Token is the common interface satisfied by every token variant and by
// Null. Kind-predicate accessors on the tree builder return Null instead
// of a nil Token so callers can chain field access without an explicit
// conditional (see dom.Null for the equivalent convention on the node
// side).
type Token interface {
	Kind() Kind

	// IsDoctype returns the token itself if it is a Doctype, Null otherwise.
	IsDoctype() Doctype
	// IsStartTag returns the token itself if it is a StartTag, Null otherwise.
	IsStartTag() StartTag
	// IsEndTag returns the token itself if it is an EndTag, Null otherwise.
	IsEndTag() EndTag
	// IsComment returns the token itself if it is a Comment, Null otherwise.
	IsComment() Comment
	// IsCharacter returns the token itself if it is a Character, Null otherwise.
	IsCharacter() Character
	// IsEOF returns the token itself if it is an EOF, Null otherwise.
	IsEOF() EOF
}

// base implements the non-matching half of every Is* predicate so each
// concrete type only needs to override the one that matches its kind.
type base struct{}

func (base) IsDoctype() Doctype     { return Doctype{null: true} }
func (base) IsStartTag() StartTag   { return StartTag{null: true} }
func (base) IsEndTag() EndTag       { return EndTag{null: true} }
func (base) IsComment() Comment     { return Comment{null: true} }
func (base) IsCharacter() Character { return Character{null: true} }
func (base) IsEOF() EOF             { return EOF{null: true} }

// Doctype is the DOCTYPE token. PubID and SysID are nil when the
// corresponding identifier was absent from the source, as opposed to
// present-but-empty.
type Doctype struct {
	base
	Name        string
	PubID       *string
	SysID       *string
	ForceQuirks bool
	null        bool
}

func (Doctype) Kind() Kind { return KindDoctype }

// IsDoctype overrides base to report that this token matches.
func (d Doctype) IsDoctype() Doctype { return d }

// IsNull reports whether this is the null sentinel returned when a
// caller asked for a Doctype but the underlying token was something
// else.
func (d Doctype) IsNull() bool { return d.null }

// StartTag is a start tag token, e.g. <div class="x">.
//
// NewState, when non-empty, instructs the tokenizer to switch content
// model immediately after this token is emitted (the feedback channel
// spec.md §9 describes — modeled here as a plain field the tokenizer's
// top-level loop reads once as the token is emitted, never as shared
// mutable state). The field is left set on the token passed on.
type StartTag struct {
	base
	Name        string
	Atom        atom.Atom
	SelfClosing bool
	Attrs       map[string]string
	NewState    string
	null        bool
}

func (StartTag) Kind() Kind { return KindStartTag }

func (t StartTag) IsStartTag() StartTag { return t }

func (t StartTag) IsNull() bool { return t.null }

// EndTag is an end tag token, e.g. </div>.
type EndTag struct {
	base
	Name string
	Atom atom.Atom
	null bool
}

func (EndTag) Kind() Kind { return KindEndTag }

func (t EndTag) IsEndTag() EndTag { return t }

func (t EndTag) IsNull() bool { return t.null }

// Comment is a comment token, e.g. <!-- ... -->.
type Comment struct {
	base
	Data string
	null bool
}

func (Comment) Kind() Kind { return KindComment }

func (c Comment) IsComment() Comment { return c }

func (c Comment) IsNull() bool { return c.null }

// Character is a single code point emitted by the tokenizer. The tree
// builder coalesces consecutive Character tokens into one text node
// (spec.md §3 invariant).
type Character struct {
	base
	Data rune
	null bool
}

func (Character) Kind() Kind { return KindCharacter }

func (c Character) IsCharacter() Character { return c }

func (c Character) IsNull() bool { return c.null }

// EOF is the terminal sentinel token.
type EOF struct {
	base
	null bool
}

func (EOF) Kind() Kind { return KindEOF }

func (e EOF) IsEOF() EOF { return e }

func (e EOF) IsNull() bool { return e.null }

// Null is the null-token sentinel: its boolean-ish predicates (the
// Is*().IsNull() pattern above) all report true, and Kind returns a
// value distinct from every real kind.
var Null Token = nullToken{}

type nullToken struct{ base }

func (nullToken) Kind() Kind { return kindNull }
