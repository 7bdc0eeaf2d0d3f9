package theory

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
)

// MinorVariant selects how the upper degrees of a minor key are spelled.
type MinorVariant int

const (
	NaturalMinor MinorVariant = iota
	HarmonicMinor
	MelodicMinor
)

func (v MinorVariant) formulaName() string {
	switch v {
	case HarmonicMinor:
		return "harmonicMinor"
	case MelodicMinor:
		return "melodicMinor"
	}
	return "naturalMinor"
}

var majorNumerals = []string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
var majorQualities = []string{"Major", "Minor", "Minor", "Major", "Major", "Minor", "Diminished"}

var minorNumerals = map[MinorVariant][]string{
	NaturalMinor:  {"i", "ii°", "III", "iv", "v", "VI", "VII"},
	HarmonicMinor: {"i", "ii°", "III+", "iv", "V", "VI", "vii°"},
	MelodicMinor:  {"i", "ii", "III+", "IV", "V", "vi°", "vii°"},
}

var minorQualities = map[MinorVariant][]string{
	NaturalMinor:  {"Minor", "Diminished", "Major", "Minor", "Minor", "Major", "Major"},
	HarmonicMinor: {"Minor", "Diminished", "Augmented", "Minor", "Major", "Major", "Diminished"},
	MelodicMinor:  {"Minor", "Minor", "Augmented", "Major", "Major", "Diminished", "Diminished"},
}

func chordSuffix(quality string) string {
	switch quality {
	case "Minor":
		return "m"
	case "Diminished":
		return "°"
	case "Augmented":
		return "+"
	}
	return ""
}

// buildPack assembles the pack from a spelled 7-degree scale. Triads stack
// scale degrees i, i+2, i+4 so spellings stay diatonic.
func buildPack(root string, scale []string, numerals []string, qualities []string) model.KeyPack {
	chords := make([]string, len(scale))
	triads := make([][]model.NoteSpelling, len(scale))
	for i := range scale {
		chords[i] = scale[i] + chordSuffix(qualities[i])
		triads[i] = []model.NoteSpelling{
			scale[i],
			scale[(i+2)%7],
			scale[(i+4)%7],
		}
	}
	return model.KeyPack{
		Root:      root,
		Scale:     scale,
		Chords:    chords,
		Numerals:  numerals,
		Triads:    triads,
		Qualities: qualities,
	}
}

// BuildMajorPack builds the full key pack for a major key. Zero value for an
// unparseable root.
func BuildMajorPack(root string) model.KeyPack {
	scale := BuildScale(root, Formulas["major"])
	if scale == nil {
		return model.KeyPack{}
	}
	return buildPack(scale[0], scale, majorNumerals, majorQualities)
}

// BuildMinorPack builds the key pack for a minor key in the given variant.
// The harmonic variant raises the 7th, the melodic variant the 6th and 7th.
func BuildMinorPack(root string, variant MinorVariant) model.KeyPack {
	scale := BuildScaleByName(root, variant.formulaName())
	if scale == nil {
		return model.KeyPack{}
	}
	return buildPack(scale[0], scale, minorNumerals[variant], minorQualities[variant])
}

// keySignatures holds the signed sharp (positive) or flat (negative) count
// per major key root.
var keySignatures = map[string]int{
	"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
	"F": -1, "Bb": -2, "Eb": -3, "Ab": -4, "Db": -5, "Gb": -6, "Cb": -7,
}

// canonicalRoot uppercases the letter and lowercases the accidentals so
// "bb" and "BB" both key as "Bb".
func canonicalRoot(s string) string {
	s = FoldAccidentals(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// KeySignature returns the signed accidental count for a major key root.
// ok is false for roots with no conventional signature.
func KeySignature(root string) (int, bool) {
	n, ok := keySignatures[canonicalRoot(root)]
	return n, ok
}

// FormatKeySignature renders a signed signature count as "—", "3♯" or "2♭".
func FormatKeySignature(n int) string {
	if n == 0 {
		return "—"
	}
	if n > 0 {
		return fmt.Sprintf("%d♯", n)
	}
	return fmt.Sprintf("%d♭", -n)
}

// CircleEntry is one stop on the circle of fifths: a major root, its
// idiomatically spelled relative minor, and the key signature count.
type CircleEntry struct {
	Major         string `json:"major"`
	RelativeMinor string `json:"relativeMinor"`
	Signature     int    `json:"signature"`
}

// circle lists the 12 majors in fifths order. Relative minors are fixed
// spellings (3 semitones down), not recomputed, so F# major pairs with D#
// minor rather than Eb minor.
var circle = []CircleEntry{
	{"C", "A", 0},
	{"G", "E", 1},
	{"D", "B", 2},
	{"A", "F#", 3},
	{"E", "C#", 4},
	{"B", "G#", 5},
	{"F#", "D#", 6},
	{"Db", "Bb", -5},
	{"Ab", "F", -4},
	{"Eb", "C", -3},
	{"Bb", "G", -2},
	{"F", "D", -1},
}

// CircleOfFifths returns the circle entries in fifths order.
func CircleOfFifths() []CircleEntry {
	res := make([]CircleEntry, len(circle))
	copy(res, circle)
	return res
}

// RelativeMinor maps a circle major root to its relative minor root.
func RelativeMinor(root string) (string, bool) {
	key := canonicalRoot(root)
	for _, e := range circle {
		if e.Major == key {
			return e.RelativeMinor, true
		}
	}
	return "", false
}
