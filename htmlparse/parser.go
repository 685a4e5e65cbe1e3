// Package htmlparse is the facade spec.md §8 describes: it wires a
// tokenizer.Tokenizer into a treebuilder.Builder and returns the
// finished document together with every parse error either stage
// raised.
package htmlparse

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cbrowse/htmlcore/dom"
	"github.com/cbrowse/htmlcore/tokenizer"
	"github.com/cbrowse/htmlcore/treebuilder"
)

// Result is the outcome of a Parse call: the document plus the
// accumulated parse errors. Parsing never fails outright (spec.md §7's
// "total parser"); err is only non-nil for an I/O failure reading src.
type Result struct {
	*dom.Document
	Errors []tokenizer.ParseError
}

// Option configures a Parse call, following the functional-options
// convention the teacher uses for its Handler/chtmlParser construction.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger routes each recoverable parse error through logger at
// debug level as it's discovered, in addition to collecting it in
// Result.Errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Parse reads all of src, tokenizes and tree-constructs it, and returns
// the resulting document.
func Parse(src io.Reader, opts ...Option) (*Result, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	sink := func(e tokenizer.ParseError) {
		res.Errors = append(res.Errors, e)
		cfg.logger.Debug("parse error", "state", e.State, "offset", e.Offset, "message", e.Message)
	}

	tok := tokenizer.New(string(data), tokenizer.Sink(sink))
	res.Document = treebuilder.New(tok, tokenizer.Sink(sink)).Run()
	return res, nil
}

// ParseString is a convenience wrapper for callers that already have
// the source in memory.
func ParseString(src string, opts ...Option) *Result {
	res, _ := Parse(strings.NewReader(src), opts...)
	return res
}
