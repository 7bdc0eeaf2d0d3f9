package chordindex

import (
	"regexp"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
)

var typingPattern = regexp.MustCompile(`^[a-g][sf]?$`)

// Suggest produces lightweight typeahead entries, capped at limit
// (DefaultSuggestLimit when limit <= 0). Very short inputs that look like
// the start of a note name get synthesized readable suggestions whether or
// not the dictionary holds a match; real search results fill whatever quota
// remains, deduplicated by text.
func (x *Index) Suggest(partial string, limit int) []model.Suggestion {
	if limit <= 0 {
		limit = constants.DefaultSuggestLimit
	}
	q := Normalize(partial)
	if q == "" {
		return nil
	}

	seen := make(map[string]bool)
	var res []model.Suggestion
	add := func(text, hint string) {
		if len(res) >= limit || seen[text] {
			return
		}
		seen[text] = true
		res = append(res, model.Suggestion{Text: text, Hint: hint})
	}

	if typingPattern.MatchString(q) {
		letter := strings.ToUpper(q[:1])
		switch {
		case len(q) == 2 && q[1] == 's':
			add(letter+" sharp", "note")
			add(letter+" sharp minor", "chord")
		case len(q) == 2 && q[1] == 'f':
			add(letter+" flat", "note")
			add(letter+" flat minor", "chord")
		default:
			add(letter, "note")
			add(letter+" minor", "chord")
			add(letter+"7", "chord")
		}
	}

	for _, def := range x.Search(q, limit) {
		hint := def.Category
		if hint == "" {
			hint = "chord"
		}
		add(def.DisplayName, hint)
	}
	return res
}
