package htmlparse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/cbrowse/htmlcore/dom"
)

func TestParseEndToEndMinimalDocument(t *testing.T) {
	res, err := Parse(strings.NewReader(`<!DOCTYPE html><html lang="en"><head><title>Example</title></head><body><h1>Hi</h1><p>there</p></body></html>`))
	require.NoError(t, err)
	require.False(t, res.Quirks)
	require.Equal(t, "Example", res.Title)
	require.Equal(t, "en", res.Root.Attrs["lang"])

	body := res.Body()
	require.False(t, body.IsNull())
	require.Len(t, body.Children, 2)
	require.Equal(t, "h1", body.Children[0].Name)
	require.Equal(t, "p", body.Children[1].Name)
	require.Empty(t, res.Errors)
}

func TestParseQuirksScenarios(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		quirks bool
	}{
		{"bare html5", `<!DOCTYPE html>`, false},
		{"no doctype at all", `<p>x</p>`, true},
		{"legacy public id", `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 3.2 Final//EN">`, true},
		{"html 4.01 strict with system id", `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, false},
		{"html 4.01 transitional with system id (limited quirks collapsed)", `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Parse(strings.NewReader(tc.src))
			require.NoError(t, err)
			require.Equal(t, tc.quirks, res.Quirks)
		})
	}
}

func TestParseCollectsRecoverableErrorsWithoutFailing(t *testing.T) {
	res, err := Parse(strings.NewReader(`<a href="x" href="y">broken<`))
	require.NoError(t, err)
	require.NotEmpty(t, res.Errors)
}

func TestParseStringConvenienceWrapper(t *testing.T) {
	res := ParseString(`<title>quick</title>`)
	require.Equal(t, "quick", res.Title)
}

func TestParseTreeShapeMatchesExpectedSnapshot(t *testing.T) {
	res := ParseString(`<body><div><p>a</p><p>b</p></div></body>`)

	want := dom.Snapshot{
		Name: "html",
		Children: []dom.Snapshot{
			{Name: "head"},
			{
				Name: "body",
				Children: []dom.Snapshot{
					{
						Name: "div",
						Children: []dom.Snapshot{
							{Name: "p", Children: []dom.Snapshot{{Name: dom.TextName, Text: "a"}}},
							{Name: "p", Children: []dom.Snapshot{{Name: dom.TextName, Text: "b"}}},
						},
					},
				},
			},
		},
	}

	got := dom.Snap(res.Root)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("document tree mismatch (-want +got):\n%s", diff)
	}
}
