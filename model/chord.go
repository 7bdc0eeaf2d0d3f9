package model

// ChordDefinition is one entry of the chord dictionary. Loaded once from the
// dictionary asset and read-only after that.
type ChordDefinition struct {
	ID          string         `json:"id"`
	Root        NoteSpelling   `json:"root"`
	Quality     string         `json:"quality"`
	Formula     []int          `json:"formula"`
	DisplayName string         `json:"displayName"`
	Notes       []NoteSpelling `json:"notes"`

	// SoundsLike is the enharmonic alternative of Notes, populated only when
	// the strict spelling needs one (double accidentals).
	SoundsLike   []NoteSpelling `json:"soundsLike,omitempty"`
	Aliases      []string       `json:"aliases,omitempty"`
	SearchTokens []string       `json:"searchTokens,omitempty"`
	Category     string         `json:"category,omitempty"`

	// NeedsSoundsLikeLine is derived at load time: true iff Notes contains a
	// doubled accidental and SoundsLike differs from Notes.
	NeedsSoundsLikeLine bool `json:"needsSoundsLikeLine"`
}

// Suggestion is one typeahead entry: display text plus a short hint about
// where it came from.
type Suggestion struct {
	Text string `json:"text"`
	Hint string `json:"hint"`
}
