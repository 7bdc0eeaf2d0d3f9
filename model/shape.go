package model

// NoPosition/NoInversion mark the optional shape fields as unset.
const (
	NoPosition  = -1
	NoInversion = -1
)

// GuitarChordShape is one playable grouping of notes on a 6-string fretted
// instrument. Frets maps string index (0 = low E .. 5 = high E) to fret
// number; a string absent from the map is muted, which is not the same as
// fret 0.
type GuitarChordShape struct {
	Label    string      `json:"label"`
	Frets    map[int]int `json:"frets"`
	BaseFret int         `json:"baseFret"`

	// Inversion is 0/1/2 for triad shapes (bass = root/third/fifth),
	// NoInversion otherwise.
	Inversion int `json:"inversion"`

	// Position is the position bucket (0, 5, 7, 9 or 12) for triad shapes,
	// NoPosition for barre shapes.
	Position int `json:"position"`

	IsTriad bool `json:"isTriad"`

	// StringSet names the 3 strings of a triad shape in guitar numbering,
	// e.g. "6-5-4". Empty for barre shapes.
	StringSet string `json:"stringSet,omitempty"`
}
