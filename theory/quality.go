package theory

import "strings"

// TriadQuality is the classification of a free-text chord quality into the
// four triad qualities. Downstream code switches on it exhaustively instead
// of re-testing strings.
type TriadQuality int

const (
	Major TriadQuality = iota
	Minor
	Diminished
	Augmented
)

func (q TriadQuality) String() string {
	switch q {
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Augmented:
		return "augmented"
	}
	return "major"
}

// ClassifyQuality buckets a free-text quality ("", "m", "maj7", "dim", ...)
// into a TriadQuality. "maj" never counts as minor: every "maj" occurrence is
// removed before looking for a bare "m". Anything unrecognized is major.
func ClassifyQuality(quality string) TriadQuality {
	q := NormalizeQuery(quality)
	switch {
	case strings.Contains(q, "dim") || strings.Contains(q, "°") || q == "o" || strings.HasPrefix(q, "o7"):
		return Diminished
	case strings.Contains(q, "aug") || strings.Contains(q, "+"):
		return Augmented
	}
	stripped := strings.ReplaceAll(q, "maj", "")
	if strings.Contains(stripped, "m") || strings.Contains(stripped, "-") {
		return Minor
	}
	return Major
}

// SpellTriad spells the triad tones of a root and quality with one letter
// per tone: the third sits two letters above the root, the fifth four. Nil
// for an unparseable root.
func SpellTriad(root string, q TriadQuality) []string {
	rootPC := PitchClass(root)
	if rootPC == NotFound {
		return nil
	}
	letter, ok := rootLetter(root)
	if !ok {
		return nil
	}
	idx := strings.IndexByte(scaleLetters, letter)
	pcs := TriadPitchClasses(rootPC, q)
	return []string{
		spellOnLetter(scaleLetters[idx], pcs[0]),
		spellOnLetter(scaleLetters[(idx+2)%7], pcs[1]),
		spellOnLetter(scaleLetters[(idx+4)%7], pcs[2]),
	}
}

// TriadPitchClasses computes root/third/fifth pitch classes for a root pitch
// class and quality: third is +4 (major, augmented) or +3 (minor,
// diminished); fifth is +7 except diminished (+6) and augmented (+8).
func TriadPitchClasses(rootPC int, q TriadQuality) [3]int {
	third := 4
	if q == Minor || q == Diminished {
		third = 3
	}
	fifth := 7
	switch q {
	case Diminished:
		fifth = 6
	case Augmented:
		fifth = 8
	}
	return [3]int{mod12(rootPC), mod12(rootPC + third), mod12(rootPC + fifth)}
}
