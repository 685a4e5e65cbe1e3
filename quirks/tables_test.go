package quirks

import "testing"

func strptr(s string) *string { return &s }

func TestDetermineForceQuirksWins(t *testing.T) {
	if !Determine(Doctype{Name: "html", ForceQuirks: true}) {
		t.Fatal("expected quirks mode when ForceQuirks is set")
	}
}

func TestDetermineNonHTMLNameIsQuirks(t *testing.T) {
	if !Determine(Doctype{Name: "not-html"}) {
		t.Fatal("expected quirks mode for non-html doctype name")
	}
}

func TestDetermineBareHTML5DoctypeIsNotQuirks(t *testing.T) {
	if Determine(Doctype{Name: "html"}) {
		t.Fatal("expected standards mode for bare <!DOCTYPE html>")
	}
}

func TestDeterminePubIDStartsWithMatch(t *testing.T) {
	// scenario (d) from spec.md §8
	pub := "-//IETF//DTD HTML 2.0//EN"
	if !Determine(Doctype{Name: "html", PubID: strptr(pub)}) {
		t.Fatalf("expected quirks mode for legacy public id %q", pub)
	}
}

func TestDeterminePubIDStartsNoSysID(t *testing.T) {
	pub := "-//W3C//DTD HTML 4.01 Transitional//EN"
	if !Determine(Doctype{Name: "html", PubID: strptr(pub)}) {
		t.Fatal("expected quirks mode when sys id absent for this prefix")
	}
	if !Determine(Doctype{Name: "html", PubID: strptr(pub), SysID: strptr("http://example.com/dtd")}) {
		t.Fatal("expected quirks mode with a sys id too (limited quirks collapsed to full quirks)")
	}
}

func TestDetermineSysIDEquals(t *testing.T) {
	sys := "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"
	if !Determine(Doctype{Name: "html", SysID: strptr(sys)}) {
		t.Fatal("expected quirks mode for matching system id")
	}
}

func TestDeterminePubIDEqualsCaseInsensitive(t *testing.T) {
	if !Determine(Doctype{Name: "html", PubID: strptr("html")}) {
		t.Fatal("expected case-insensitive match against PubIDEquals")
	}
}
