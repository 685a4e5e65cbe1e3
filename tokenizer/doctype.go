package tokenizer

import "strings"

// doctypeBuilder accumulates a DOCTYPE token under construction.
type doctypeBuilder struct {
	name        strings.Builder
	havePub     bool
	pub         strings.Builder
	haveSys     bool
	sys         strings.Builder
	forceQuirks bool
}

func newDoctypeBuilder() *doctypeBuilder {
	return &doctypeBuilder{}
}
