package theory

import "strings"

// Formulas are semitone offsets from the root: strictly increasing, first
// offset 0, values in [0, 11]. All supported scales are heptatonic.
var Formulas = map[string][]int{
	"major":         {0, 2, 4, 5, 7, 9, 11},
	"naturalMinor":  {0, 2, 3, 5, 7, 8, 10},
	"harmonicMinor": {0, 2, 3, 5, 7, 8, 11},
	"melodicMinor":  {0, 2, 3, 5, 7, 9, 11},
}

const scaleLetters = "CDEFGAB"

// spellOnLetter spells pc on a fixed letter, choosing whatever accidental
// count (up to 2 in practice) reproduces the pitch class.
func spellOnLetter(letter byte, pc int) string {
	diff := mod12(pc - letterPitch[letter])
	if diff > 6 {
		diff -= 12
	}
	if diff >= 0 {
		return string(letter) + strings.Repeat("#", diff)
	}
	return string(letter) + strings.Repeat("b", -diff)
}

// BuildScale spells formula offsets from root with letter stepping: each
// degree advances exactly one base letter from the previous and takes the
// accidental that reproduces the required pitch class. This is what makes
// F# major contain E# (not F) and Gb major contain Cb (not B); a
// nearest-accidental spelling would repeat letters, which is wrong.
// Returns nil for an unparseable root or empty formula.
func BuildScale(root string, formula []int) []string {
	rootPC := PitchClass(root)
	if rootPC == NotFound || len(formula) == 0 {
		return nil
	}
	letter, ok := rootLetter(root)
	if !ok {
		return nil
	}
	letterIdx := strings.IndexByte(scaleLetters, letter)
	res := make([]string, len(formula))
	for i, off := range formula {
		l := scaleLetters[(letterIdx+i)%7]
		res[i] = spellOnLetter(l, mod12(rootPC+off))
	}
	return res
}

// BuildScaleByName looks the formula up by name. Unknown names yield an
// empty scale, not an error: "nothing found" is a valid outcome here.
func BuildScaleByName(root, name string) []string {
	formula, ok := Formulas[name]
	if !ok {
		return nil
	}
	return BuildScale(root, formula)
}
