package chordindex

import (
	"regexp"
	"strings"

	"github.com/jsphweid/fretdex/theory"
)

// Normalize is applied to every index key and every query: fold unicode
// accidentals to ASCII, trim, lowercase, strip internal whitespace. Keys and
// queries going through the one function is what keeps lookups stable.
func Normalize(s string) string {
	s = strings.ToLower(theory.FoldAccidentals(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), "")
}

// predictiveRules map partial typing to the likely intended symbol. Only the
// first matching rule applies, so the list order is the priority order.
var predictiveRules = []struct {
	re      *regexp.Regexp
	rewrite string
}{
	{regexp.MustCompile(`^([a-g])(?:s|sh|sha|shar|sharp)$`), "${1}#"},
	{regexp.MustCompile(`^([a-g])(?:f|fl|fla|flat)$`), "${1}b"},
}

// ExpandPredictive rewrites a normalized query per the first matching typing
// pattern: "gs", "gsh" and "gsharp" all become "g#". Returns the input
// unchanged (and false) when no rule matches.
func ExpandPredictive(q string) (string, bool) {
	for _, r := range predictiveRules {
		if r.re.MatchString(q) {
			return r.re.ReplaceAllString(q, r.rewrite), true
		}
	}
	return q, false
}

// enharmonics covers the 5 black-key pitch classes in both directions plus
// the theoretical pairs Cb/B, B#/C, Fb/E, E#/F.
var enharmonics = map[string][]string{
	"c#": {"db"}, "db": {"c#"},
	"d#": {"eb"}, "eb": {"d#"},
	"f#": {"gb"}, "gb": {"f#"},
	"g#": {"ab"}, "ab": {"g#"},
	"a#": {"bb"}, "bb": {"a#"},
	"cb": {"b"}, "b": {"cb"},
	"b#": {"c"}, "c": {"b#"},
	"fb": {"e"}, "e": {"fb"},
	"e#": {"f"}, "f": {"e#"},
}

// ExpandEnharmonic returns the query with its 1-2 character root prefix
// swapped for the enharmonic spelling(s), quality suffix preserved. The
// 2-character prefix is tried first so "bbm" expands on "bb", not "b".
func ExpandEnharmonic(q string) []string {
	var res []string
	if len(q) >= 2 {
		if alts, ok := enharmonics[q[:2]]; ok {
			for _, a := range alts {
				res = append(res, a+q[2:])
			}
			return res
		}
	}
	if len(q) >= 1 {
		if alts, ok := enharmonics[q[:1]]; ok {
			for _, a := range alts {
				res = append(res, a+q[1:])
			}
		}
	}
	return res
}

// qualitySynonyms are interchangeable quality suffixes for prefix probing.
var qualitySynonyms = [][]string{
	{"maj", "major", ""},
	{"min", "minor", "m", "-"},
	{"dim", "diminished", "°", "o"},
	{"aug", "augmented", "+"},
	{"sus", "sus4", "sus2"},
	{"dom", "7"},
}

// commonSuffixes expand a bare root query to the chords people usually mean.
var commonSuffixes = []string{"m", "7", "maj7", "m7", "dim", "aug", "sus4", "sus2", "6", "9"}

// splitRoot peels a note-shaped prefix (letter plus optional accidental) off
// a normalized query.
func splitRoot(q string) (root, rest string) {
	if len(q) == 0 || q[0] < 'a' || q[0] > 'g' {
		return "", q
	}
	root = q[:1]
	if len(q) >= 2 && (q[1] == '#' || q[1] == 'b') {
		root = q[:2]
	}
	return root, q[len(root):]
}

// ExpandQualities produces alternate queries: a recognized quality suffix is
// swapped for each of its synonyms, and a bare root grows the curated common
// suffixes.
func ExpandQualities(q string) []string {
	root, rest := splitRoot(q)
	if root == "" {
		return nil
	}
	var res []string
	if rest == "" {
		for _, s := range commonSuffixes {
			res = append(res, root+s)
		}
		return res
	}
	for _, group := range qualitySynonyms {
		for _, syn := range group {
			if syn != "" && rest == syn {
				for _, alt := range group {
					if alt != rest {
						res = append(res, root+alt)
					}
				}
				return res
			}
		}
	}
	return nil
}
