package model

// NoteSpelling is a letter A-G plus up to two accidental marks, e.g. "F#",
// "Bb", "E##". A spelling maps to exactly one pitch class; the reverse is
// context-dependent and never assumed unique.
type NoteSpelling = string

// PitchClass is an integer in [0, 11]. Equality of pitch classes is the whole
// of enharmonic equivalence: C# and Db are both 1.
type PitchClass = int

// KeyPack is everything the key views need for one (root, view) request.
// Built on demand, never mutated after construction.
type KeyPack struct {
	Root      NoteSpelling     `json:"root"`
	Scale     []NoteSpelling   `json:"scale"`
	Chords    []string         `json:"chords"`
	Numerals  []string         `json:"numerals"`
	Triads    [][]NoteSpelling `json:"triads"`
	Qualities []string         `json:"qualities"`
}

// ModeInfo is fixed descriptive metadata for one diatonic mode.
type ModeInfo struct {
	Name   string `json:"name"`
	Mood   string `json:"mood"`
	Family string `json:"family"` // "Major" or "Minor"
	Color  string `json:"color"`
	Usage  string `json:"usage"`
}

// ModePack is one diatonic mode spelled from a root, plus its metadata.
type ModePack struct {
	Info  ModeInfo       `json:"info"`
	Root  NoteSpelling   `json:"root"`
	Scale []NoteSpelling `json:"scale"`
}
