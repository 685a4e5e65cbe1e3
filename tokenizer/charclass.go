package tokenizer

// eof is the synthetic end-of-input rune: a one-past-end read yields
// this value rather than an error (spec.md §4.1 "Position model").
const eof rune = -1

const (
	null            rune = 0
	replacementChar rune = 0xFFFD
)

// space is whitespace that doesn't include carriage return; spaceCR
// adds it in. Matches spec.md §6's SPACE / SPACE_CR character sets.
const space = " \t\n\f"
const spaceCR = space + "\r"

func isSpace(r rune) bool   { return containsRune(space, r) }
func isSpaceCR(r rune) bool { return containsRune(spaceCR, r) }

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIILetter(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r)
}

func isQuote(r rune) bool { return r == '\'' || r == '"' }

func toLowerRune(r rune) rune {
	if isASCIIUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
