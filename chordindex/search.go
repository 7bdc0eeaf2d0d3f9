package chordindex

import (
	"sort"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
)

// Search resolves free text to ranked chord definitions, capped at limit
// (DefaultSearchLimit when limit <= 0). Stages run in a fixed order and each
// only runs while the result count is under the cap; the order encodes the
// relevance prior: exact > enharmonic > prefix > quality expansion >
// substring. Results are deduplicated by id and ranked once at the end.
func (x *Index) Search(query string, limit int) []model.ChordDefinition {
	if limit <= 0 {
		limit = constants.DefaultSearchLimit
	}
	q := Normalize(query)
	if q == "" {
		return nil
	}
	predictive, _ := ExpandPredictive(q)

	seen := make(map[string]bool)
	var res []model.ChordDefinition
	add := func(def *model.ChordDefinition) {
		if def == nil || seen[def.ID] || len(res) >= limit {
			return
		}
		seen[def.ID] = true
		res = append(res, *def)
	}
	addAll := func(defs []*model.ChordDefinition) {
		for _, d := range defs {
			add(d)
		}
	}

	// 1. exact, on the query and its predictive expansion
	add(x.exact[q])
	add(x.exact[predictive])

	// 2. exact on enharmonic expansions
	if len(res) < limit {
		for _, alt := range ExpandEnharmonic(q) {
			add(x.exact[alt])
		}
	}

	// 3. prefix lookups
	if len(res) < limit {
		addAll(x.prefixes[q])
	}
	if len(res) < limit {
		addAll(x.prefixes[predictive])
	}

	// 4. quality expansions
	if len(res) < limit {
		for _, alt := range ExpandQualities(q) {
			if len(res) >= limit {
				break
			}
			addAll(x.prefixes[alt])
		}
	}

	// 5. substring fallback over everything still unmatched
	if len(res) < limit {
		for _, def := range x.defs {
			if len(res) >= limit {
				break
			}
			if seen[def.ID] {
				continue
			}
			if strings.Contains(Normalize(def.DisplayName), q) || tokensContain(def.SearchTokens, q) {
				add(def)
			}
		}
	}

	rankSort(res, q)
	return res
}

func tokensContain(tokens []string, q string) bool {
	for _, t := range tokens {
		if strings.Contains(Normalize(t), q) {
			return true
		}
	}
	return false
}

// qualityPriority ranks the common qualities for display; anything unranked
// sorts after all of these.
var qualityPriority = map[string]int{
	"maj": 0, "major": 0, "": 0,
	"min": 1, "minor": 1, "m": 1,
	"7": 2, "dom7": 2,
	"m7": 3, "min7": 3,
	"maj7": 4,
	"dim": 5, "diminished": 5,
	"aug": 6, "augmented": 6,
	"sus4": 7,
	"sus2": 8,
	"9": 9, "11": 10, "13": 11,
}

func qualityRank(q string) int {
	if r, ok := qualityPriority[strings.ToLower(q)]; ok {
		return r
	}
	return 100
}

// rankSort is the single ranking pass: exact display-name match, then
// names starting with the query, then shorter names, then quality priority,
// then name. The final name comparison makes this a total order, so equal
// inputs always rank identically.
func rankSort(defs []model.ChordDefinition, q string) {
	sort.SliceStable(defs, func(i, j int) bool {
		a, b := defs[i], defs[j]
		an, bn := Normalize(a.DisplayName), Normalize(b.DisplayName)
		if q != "" {
			if (an == q) != (bn == q) {
				return an == q
			}
			ap, bp := strings.HasPrefix(an, q), strings.HasPrefix(bn, q)
			if ap != bp {
				return ap
			}
		}
		if len(an) != len(bn) {
			return len(an) < len(bn)
		}
		if ar, br := qualityRank(a.Quality), qualityRank(b.Quality); ar != br {
			return ar < br
		}
		return a.DisplayName < b.DisplayName
	})
}
