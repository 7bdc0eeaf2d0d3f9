package chordindex

import (
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/util"
)

// Index resolves free-text queries against a chord dictionary snapshot. It
// holds two structures with separate contracts: an exact-match table from
// normalized key to one definition, and a prefix table from every prefix of
// every key to the definitions sharing it (typeahead). Built once per
// dictionary snapshot, immutable after New returns, safe for concurrent
// readers. Reloading the dictionary means building a fresh Index.
type Index struct {
	exact      map[string]*model.ChordDefinition
	prefixes   map[string][]*model.ChordDefinition
	defs       []*model.ChordDefinition
	byCategory map[string][]*model.ChordDefinition
}

// New builds the full index. Every display name, root, alias and search
// token is registered exactly and under all of its prefixes; the root's
// enharmonic counterpart is registered the same way so either spelling finds
// the chord. When two keys collide the later registration wins, leaving the
// most specific alias in place.
func New(defs []model.ChordDefinition) *Index {
	idx := &Index{
		exact:      make(map[string]*model.ChordDefinition),
		prefixes:   make(map[string][]*model.ChordDefinition),
		byCategory: make(map[string][]*model.ChordDefinition),
	}
	for i := range defs {
		def := &defs[i]
		idx.defs = append(idx.defs, def)
		if def.Category != "" {
			idx.byCategory[def.Category] = append(idx.byCategory[def.Category], def)
		}

		root := Normalize(def.Root)
		raw := make([]string, 0, 2+len(def.Aliases)+len(def.SearchTokens))
		raw = append(raw, def.DisplayName, def.Root)
		raw = append(raw, def.Aliases...)
		raw = append(raw, def.SearchTokens...)

		seen := make(map[string]bool)
		for _, r := range raw {
			key := Normalize(r)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			idx.register(key, def)
			if root != "" && strings.HasPrefix(key, root) {
				for _, alt := range enharmonics[root] {
					idx.register(alt+key[len(root):], def)
				}
			}
		}
	}
	return idx
}

func (x *Index) register(key string, def *model.ChordDefinition) {
	x.exact[key] = def
	for i := 1; i <= len(key); i++ {
		p := key[:i]
		x.prefixes[p] = appendUnique(x.prefixes[p], def)
	}
}

func appendUnique(defs []*model.ChordDefinition, def *model.ChordDefinition) []*model.ChordDefinition {
	for _, d := range defs {
		if d.ID == def.ID {
			return defs
		}
	}
	return append(defs, def)
}

// Size is the number of indexed definitions.
func (x *Index) Size() int {
	return len(x.defs)
}

// FindByRoot returns every chord whose root is enharmonically the given
// spelling, in display rank order. Unparseable roots find nothing.
func (x *Index) FindByRoot(root string) []model.ChordDefinition {
	pc := theory.PitchClass(root)
	if pc == theory.NotFound {
		return nil
	}
	var res []model.ChordDefinition
	for _, def := range x.defs {
		if theory.PitchClass(def.Root) == pc {
			res = append(res, *def)
		}
	}
	rankSort(res, Normalize(root))
	return res
}

// Categories returns the sorted distinct category names.
func (x *Index) Categories() []string {
	return util.SortedKeys(x.byCategory)
}

// ByCategory returns the chords of one category in display rank order.
func (x *Index) ByCategory(category string) []model.ChordDefinition {
	defs := x.byCategory[category]
	if len(defs) == 0 {
		return nil
	}
	res := make([]model.ChordDefinition, 0, len(defs))
	for _, def := range defs {
		res = append(res, *def)
	}
	rankSort(res, "")
	return res
}
