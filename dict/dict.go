package dict

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

// Load reads the chord dictionary asset. An explicit path is used alone;
// otherwise CHORD_DICT_PATH and then the compiled-in candidates are tried in
// order. Exhausting every candidate is fatal and wraps the last underlying
// failure, as is a malformed dictionary.
func Load(path string) ([]model.ChordDefinition, error) {
	var candidates []string
	if path != "" {
		candidates = []string{path}
	} else {
		if env := constants.GetDictPath(); env != "" {
			candidates = append(candidates, env)
		}
		candidates = append(candidates, constants.DictCandidates...)
	}

	var lastErr error
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		defs, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "chord dictionary %v", p)
		}
		return defs, nil
	}
	return nil, errors.Wrap(lastErr, "no chord dictionary asset found")
}

// Parse decodes a JSON array of chord records and fills derived and
// defaulted fields: optional lists default to empty, records without an id
// get a generated one, and NeedsSoundsLikeLine is computed from the strict
// spelling and its enharmonic alternative.
func Parse(data []byte) ([]model.ChordDefinition, error) {
	var defs []model.ChordDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, errors.Wrap(err, "not an array of chord records")
	}
	for i := range defs {
		def := &defs[i]
		if def.ID == "" {
			def.ID = uuid.New().String()
		}
		if def.Aliases == nil {
			def.Aliases = []string{}
		}
		if def.SearchTokens == nil {
			def.SearchTokens = []string{}
		}
		def.NeedsSoundsLikeLine = theory.NeedsSoundsLike(def.Notes, def.SoundsLike)
	}
	return defs, nil
}
