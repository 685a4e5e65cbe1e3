// Package treebuilder implements the tree-construction state machine
// (spec.md §4.2): it pulls tokens from a tokenizer.Tokenizer and builds
// a dom.Document, one insertion mode at a time.
package treebuilder

// insertionMode is an exhaustive tagged variant of tree-construction
// modes, dispatched the same way tokenizer.state is: through a
// compile-time-sized array indexed by ordinal (spec.md §9).
type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHTML
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText

	numModes
)

var modeNames = [numModes]string{
	modeInitial:    "INITIAL",
	modeBeforeHTML: "BEFORE_HTML",
	modeBeforeHead: "BEFORE_HEAD",
	modeInHead:     "IN_HEAD",
	modeAfterHead:  "AFTER_HEAD",
	modeInBody:     "IN_BODY",
	modeText:       "TEXT",
}

func (m insertionMode) String() string {
	if m < 0 || m >= numModes {
		return "UNKNOWN"
	}
	return modeNames[m]
}
