package treebuilder

import (
	"testing"

	"github.com/cbrowse/htmlcore/dom"
	"github.com/cbrowse/htmlcore/tokenizer"
)

func build(t *testing.T, src string) (*dom.Document, []tokenizer.ParseError) {
	t.Helper()
	var errs []tokenizer.ParseError
	tok := tokenizer.New(src, func(e tokenizer.ParseError) { errs = append(errs, e) })
	doc := New(tok, func(e tokenizer.ParseError) { errs = append(errs, e) }).Run()
	return doc, errs
}

func TestMinimalDocumentStructure(t *testing.T) {
	doc, _ := build(t, "<!DOCTYPE html><html><head><title>Hi</title></head><body><p>hello</p></body></html>")
	if doc.Quirks {
		t.Fatal("expected no-quirks mode for bare html5 doctype")
	}
	if doc.Title != "Hi" {
		t.Fatalf("got title %q", doc.Title)
	}
	body := doc.Body()
	if body.IsNull() {
		t.Fatal("expected a body element")
	}
	p := body.Child("p")
	if p.IsNull() || p.TextContent() != "hello" {
		t.Fatalf("got body children %+v", body.Children)
	}
}

func TestImplicitHeadAndBody(t *testing.T) {
	doc, _ := build(t, "<p>x</p>")
	if doc.Head().IsNull() {
		t.Fatal("expected an implicitly created head")
	}
	if doc.Body().IsNull() {
		t.Fatal("expected an implicitly created body")
	}
	if doc.Body().Child("p").TextContent() != "x" {
		t.Fatalf("got %+v", doc.Body().Children)
	}
}

func TestQuirksModeFromLegacyDoctype(t *testing.T) {
	doc, _ := build(t, `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN"><html></html>`)
	if !doc.Quirks {
		t.Fatal("expected quirks mode for legacy frameset doctype")
	}
}

func TestMissingDoctypeIsQuirks(t *testing.T) {
	doc, errs := build(t, "<html><body>x</body></html>")
	if !doc.Quirks {
		t.Fatal("expected quirks mode when no doctype is present")
	}
	if len(errs) == 0 {
		t.Fatal("expected a parse error for the missing doctype")
	}
}

func TestClosingPImplicitlyClosesOpenP(t *testing.T) {
	doc, _ := build(t, "<body><p>one<p>two</body>")
	body := doc.Body()
	if len(body.Children) != 2 {
		t.Fatalf("expected two sibling <p> elements, got %d: %+v", len(body.Children), body.Children)
	}
	if body.Children[0].TextContent() != "one" || body.Children[1].TextContent() != "two" {
		t.Fatalf("got %+v / %+v", body.Children[0], body.Children[1])
	}
}

func TestDuplicateHTMLTagMergesAttributesWithoutOverwrite(t *testing.T) {
	doc, _ := build(t, `<html lang="en"><head></head><body></body><html lang="fr" data-extra="1"></html>`)
	if doc.Root.Attrs["lang"] != "en" {
		t.Fatalf("expected first lang to win, got %q", doc.Root.Attrs["lang"])
	}
	if doc.Root.Attrs["data-extra"] != "1" {
		t.Fatalf("expected the new attribute to be merged in, got %+v", doc.Root.Attrs)
	}
}

func TestTitleContentIsTreatedAsRawText(t *testing.T) {
	doc, _ := build(t, "<title>a &lt; b</title>")
	if doc.Title != "a &lt; b" {
		t.Fatalf("got %q", doc.Title)
	}
}

func TestCommentsAreNotPartOfTextContent(t *testing.T) {
	doc, _ := build(t, "<body><p>a<!-- skip -->b</p></body>")
	if got := doc.Body().Child("p").TextContent(); got != "ab" {
		t.Fatalf("got %q", got)
	}
}

func TestHeadingElementClosesPreviousHeading(t *testing.T) {
	doc, _ := build(t, "<body><h1>one<h2>two</body>")
	body := doc.Body()
	if len(body.Children) != 2 {
		t.Fatalf("expected h1 and h2 as siblings, got %+v", body.Children)
	}
	if body.Children[0].Name != "h1" || body.Children[1].Name != "h2" {
		t.Fatalf("got %+v", body.Children)
	}
}
