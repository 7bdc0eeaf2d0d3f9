package theory

import (
	"strings"
)

// NotFound is returned by PitchClass and Interval for note text that does not
// parse. Callers treat it as "no result", not as a fault.
const NotFound = -1

var letterPitch = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

func mod12(v int) int {
	return ((v % 12) + 12) % 12
}

// PitchClass parses a note spelling into its pitch class. The letter is
// case-insensitive, each "#" raises a semitone and each "b" lowers one;
// unicode accidentals are folded to ASCII first. Accidental marks end at the
// first character that is neither "#" nor "b", so "C major" still parses as
// C. Returns NotFound for empty input or an unrecognized leading letter.
func PitchClass(spelling string) int {
	s := FoldAccidentals(strings.TrimSpace(spelling))
	if s == "" {
		return NotFound
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	base, ok := letterPitch[letter]
	if !ok {
		return NotFound
	}
	pc := base
	for i := 1; i < len(s); i++ {
		if s[i] == '#' {
			pc++
		} else if s[i] == 'b' {
			pc--
		} else {
			break
		}
	}
	return mod12(pc)
}

// PitchClassToNote returns the canonical single-accidental spelling for a
// pitch class. Natural pitch classes spell the same regardless of
// preferFlats. Negative inputs wrap (-1 is 11).
func PitchClassToNote(pc int, preferFlats bool) string {
	pc = mod12(pc)
	if preferFlats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// Interval is the semitone distance from a up to b, in [0, 11], or NotFound
// if either spelling fails to parse.
func Interval(a, b string) int {
	pa := PitchClass(a)
	pb := PitchClass(b)
	if pa == NotFound || pb == NotFound {
		return NotFound
	}
	return mod12(pb - pa)
}

// IsNatural reports whether pc is a white-key pitch class.
func IsNatural(pc int) bool {
	switch mod12(pc) {
	case 0, 2, 4, 5, 7, 9, 11:
		return true
	}
	return false
}

// rootLetter extracts the A-G letter of a spelling, uppercased.
func rootLetter(s string) (byte, bool) {
	s = FoldAccidentals(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'G' {
		return 0, false
	}
	return c, true
}
