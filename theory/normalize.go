package theory

import (
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
)

var accidentalFolder = strings.NewReplacer(
	"♯", "#",
	"♭", "b",
	"𝄪", "##",
	"𝄫", "bb",
)

// FoldAccidentals rewrites unicode accidental symbols to their ASCII
// equivalents. Input is NFKC-normalized first so full-width characters
// (common from IME input) fold to plain ASCII before the replacement runs.
func FoldAccidentals(s string) string {
	return accidentalFolder.Replace(norm.NFKC.String(s))
}

// queryRules rewrite word forms to symbols. They run in this exact order;
// several rules overlap ("major" must rewrite before anything later could
// see its bare "m"), so reordering them changes output.
var queryRules = [][2]string{
	{"diminished", "dim"},
	{"augmented", "aug"},
	{"dominant", "dom"},
	{"suspended", "sus"},
	{"major", "maj"},
	{"minor", "min"},
	{"sharp", "#"},
	{"flat", "b"},
}

// NormalizeQuery canonicalizes free text for matching: folds unicode
// accidentals, lowercases, strips whitespace and punctuation, and rewrites
// word forms ("sharp", "major", ...) to their symbol forms.
func NormalizeQuery(q string) string {
	q = strings.ToLower(FoldAccidentals(q))
	var b strings.Builder
	for _, r := range q {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		switch r {
		case '#', '+', '-', '/', '°':
			b.WriteRune(r)
		}
	}
	q = b.String()
	for _, rule := range queryRules {
		q = strings.ReplaceAll(q, rule[0], rule[1])
	}
	return q
}

// HasDoubledAccidental reports whether any note in the list is spelled with
// a double sharp or double flat.
func HasDoubledAccidental(notes []string) bool {
	for _, n := range notes {
		f := FoldAccidentals(n)
		if strings.HasSuffix(f, "##") || strings.HasSuffix(f, "bb") {
			return true
		}
	}
	return false
}

// NeedsSoundsLike is true only when the strict spelling carries a double
// accidental, an enharmonic alternative exists, and that alternative is a
// genuinely different spelling.
func NeedsSoundsLike(strict, alt []string) bool {
	if len(alt) == 0 || slices.Equal(strict, alt) {
		return false
	}
	return HasDoubledAccidental(strict)
}
