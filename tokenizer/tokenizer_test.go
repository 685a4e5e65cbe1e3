package tokenizer

import (
	"testing"

	"github.com/cbrowse/htmlcore/token"
)

func collect(t *testing.T, src string) ([]token.Token, []ParseError) {
	t.Helper()
	var errs []ParseError
	tok := New(src, func(e ParseError) { errs = append(errs, e) })
	var toks []token.Token
	for {
		tk := tok.Next()
		toks = append(toks, tk)
		if tk.IsEOF().IsNull() == false {
			break
		}
		if len(toks) > 10000 {
			t.Fatal("tokenizer did not terminate")
		}
	}
	return toks, errs
}

func chars(toks []token.Token) string {
	var s []rune
	for _, tk := range toks {
		if c := tk.IsCharacter(); !c.IsNull() {
			s = append(s, c.Data)
		}
	}
	return string(s)
}

func TestDataStateEmitsCharacters(t *testing.T) {
	toks, _ := collect(t, "hello")
	if got := chars(toks); got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestStartTagLowercasesName(t *testing.T) {
	toks, _ := collect(t, "<DIV>")
	st := toks[0].IsStartTag()
	if st.IsNull() || st.Name != "div" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestStartTagWithAttributes(t *testing.T) {
	toks, _ := collect(t, `<a href="x" TARGET='y'>`)
	st := toks[0].IsStartTag()
	if st.IsNull() {
		t.Fatalf("expected start tag, got %+v", toks[0])
	}
	if st.Attrs["href"] != "x" || st.Attrs["target"] != "y" {
		t.Fatalf("got attrs %+v", st.Attrs)
	}
}

func TestDuplicateAttributeKeepsFirst(t *testing.T) {
	toks, errs := collect(t, `<a href="x" href="y">`)
	st := toks[0].IsStartTag()
	if st.Attrs["href"] != "x" {
		t.Fatalf("expected first value to win, got %q", st.Attrs["href"])
	}
	if len(errs) == 0 {
		t.Fatal("expected a duplicate-attribute parse error")
	}
}

func TestSelfClosingFlag(t *testing.T) {
	toks, _ := collect(t, `<br/>`)
	st := toks[0].IsStartTag()
	if !st.SelfClosing {
		t.Fatal("expected self-closing flag")
	}
}

func TestEndTag(t *testing.T) {
	toks, _ := collect(t, `</P>`)
	et := toks[0].IsEndTag()
	if et.IsNull() || et.Name != "p" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestNullCharacterReplaced(t *testing.T) {
	toks, errs := collect(t, "a\x00b")
	if got := chars(toks); got != "a�b" {
		t.Fatalf("got %q", got)
	}
	if len(errs) == 0 {
		t.Fatal("expected a parse error for the null character")
	}
}

func TestComment(t *testing.T) {
	toks, _ := collect(t, "<!-- hi -->")
	c := toks[0].IsComment()
	if c.IsNull() || c.Data != " hi " {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestBogusComment(t *testing.T) {
	toks, errs := collect(t, "<?xml?>")
	c := toks[0].IsComment()
	if c.IsNull() || c.Data != "?xml?" {
		t.Fatalf("got %+v", toks[0])
	}
	if len(errs) == 0 {
		t.Fatal("expected a parse error")
	}
}

func TestDoctypeBareHTML5(t *testing.T) {
	toks, _ := collect(t, "<!DOCTYPE html>")
	d := toks[0].IsDoctype()
	if d.IsNull() || d.Name != "html" || d.PubID != nil || d.SysID != nil {
		t.Fatalf("got %+v", d)
	}
}

func TestDoctypeWithPublicAndSystem(t *testing.T) {
	src := `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`
	toks, _ := collect(t, src)
	d := toks[0].IsDoctype()
	if d.IsNull() {
		t.Fatalf("expected doctype, got %+v", toks[0])
	}
	if d.PubID == nil || *d.PubID != "-//W3C//DTD HTML 4.01//EN" {
		t.Fatalf("got pubid %v", d.PubID)
	}
	if d.SysID == nil || *d.SysID != "http://www.w3.org/TR/html4/strict.dtd" {
		t.Fatalf("got sysid %v", d.SysID)
	}
}

func TestDoctypeSystemOnly(t *testing.T) {
	src := `<!DOCTYPE html SYSTEM "about:legacy-compat">`
	toks, _ := collect(t, src)
	d := toks[0].IsDoctype()
	if d.IsNull() || d.PubID != nil {
		t.Fatalf("got %+v", d)
	}
	if d.SysID == nil || *d.SysID != "about:legacy-compat" {
		t.Fatalf("got sysid %v", d.SysID)
	}
}

func TestDoctypeMissingQuoteForcesQuirksAndBogus(t *testing.T) {
	toks, errs := collect(t, `<!DOCTYPE html PUBLIC x>`)
	d := toks[0].IsDoctype()
	if d.IsNull() || !d.ForceQuirks {
		t.Fatalf("expected force-quirks doctype, got %+v", toks[0])
	}
	if len(errs) == 0 {
		t.Fatal("expected a parse error")
	}
}

func TestRCDATAContentModelHidesTags(t *testing.T) {
	tok := New("<script>a<b>c</script>d", nil)
	tok.state = stateData
	start := tok.Next().IsStartTag()
	if start.IsNull() || start.Name != "script" {
		t.Fatalf("got start tag %+v", start)
	}
	tok.state = stateRCDATA
	var text []rune
	for {
		tk := tok.Next()
		if et := tk.IsEndTag(); !et.IsNull() {
			if et.Name != "script" {
				t.Fatalf("wrong end tag %+v", et)
			}
			break
		}
		if c := tk.IsCharacter(); !c.IsNull() {
			text = append(text, c.Data)
			continue
		}
		t.Fatalf("unexpected token in RCDATA content: %+v", tk)
	}
	if string(text) != "a<b>c" {
		t.Fatalf("got %q", string(text))
	}
}

func TestRCDATAMismatchedEndTagIsReEmittedAsCharacters(t *testing.T) {
	tok := New("<title>x</b>y</title>", nil)
	start := tok.Next().IsStartTag()
	if start.Name != "title" {
		t.Fatalf("got %+v", start)
	}
	tok.state = stateRCDATA
	var text []rune
	for {
		tk := tok.Next()
		if et := tk.IsEndTag(); !et.IsNull() {
			if et.Name != "title" {
				t.Fatalf("wrong end tag %+v", et)
			}
			break
		}
		text = append(text, tk.IsCharacter().Data)
	}
	if string(text) != "x</b>y" {
		t.Fatalf("got %q", string(text))
	}
}

func TestEOFInTagEmitsEOF(t *testing.T) {
	toks, _ := collect(t, "<a href=")
	last := toks[len(toks)-1]
	if last.IsEOF().IsNull() {
		t.Fatalf("expected a trailing EOF token, got %+v", last)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	tok := New("", nil)
	a := tok.Next()
	b := tok.Next()
	if a.IsEOF().IsNull() || b.IsEOF().IsNull() {
		t.Fatalf("expected repeated EOF, got %+v, %+v", a, b)
	}
}

func TestAmpersandWithoutDecodingIsLiteralCharacter(t *testing.T) {
	toks, _ := collect(t, "a&amp;b")
	if got := chars(toks); got != "a&amp;b" {
		t.Fatalf("got %q", got)
	}
}

func TestAmpersandInsideAttributeValue(t *testing.T) {
	toks, _ := collect(t, `<a href="x&y">`)
	st := toks[0].IsStartTag()
	if st.Attrs["href"] != "x&y" {
		t.Fatalf("got %q", st.Attrs["href"])
	}
}
