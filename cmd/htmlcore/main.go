// Command htmlcore parses an HTML document and prints the resulting
// node tree, in the style of the teacher's own cobra-based CLIs: a root
// command with a handful of local flags, no subcommands.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cbrowse/htmlcore/dom"
	"github.com/cbrowse/htmlcore/htmlparse"
)

var (
	inputPath string
	titleOnly bool
	useColor  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htmlcore",
		Short: "Parse an HTML document and print its node tree",
		RunE:  runParse,
	}
	cmd.Flags().StringVar(&inputPath, "input", "-", "file to parse, or - for stdin")
	cmd.Flags().BoolVar(&titleOnly, "title-only", false, "print only the document title")
	cmd.Flags().BoolVar(&useColor, "color", true, "colorize element names in tree output")
	return cmd
}

func runParse(cmd *cobra.Command, _ []string) error {
	src, err := openInput(inputPath)
	if err != nil {
		return fmt.Errorf("htmlcore: %w", err)
	}
	defer src.Close()

	res, err := htmlparse.Parse(src, htmlparse.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("htmlcore: %w", err)
	}

	for _, e := range res.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "parse error at %s (offset %d): %s\n", e.State, e.Offset, e.Message)
	}

	if titleOnly {
		fmt.Fprintln(cmd.OutOrStdout(), res.Title)
		return nil
	}

	dumpTree(cmd.OutOrStdout(), res.Document)
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// dumpTree renders the parsed document as an indented outline, the
// "drawable primitive" consumer spec.md §8 calls for: it walks the
// element tree in document order the way a renderer eventually would,
// without attempting any actual layout or painting.
func dumpTree(w io.Writer, doc *dom.Document) {
	elementName := color.New(color.FgCyan).SprintFunc()
	attrName := color.New(color.FgYellow).SprintFunc()
	if !useColor {
		color.NoColor = true
	}

	var walk func(n *dom.Node, depth int)
	walk = func(n *dom.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		if n.IsText() {
			fmt.Fprintf(w, "%s%q\n", indent, n.Text)
			return
		}
		line := indent + elementName(n.Name)
		for name, value := range n.Attrs {
			line += fmt.Sprintf(" %s=%q", attrName(name), value)
		}
		fmt.Fprintln(w, line)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(doc.Root, 0)
}
