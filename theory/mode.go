package theory

import "github.com/jsphweid/fretdex/model"

// ModeNames lists the 7 diatonic modes in parent-degree order.
var ModeNames = []string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"}

var modeMeta = map[string]model.ModeInfo{
	"Ionian": {
		Name: "Ionian", Mood: "Bright, settled", Family: "Major",
		Color: "the plain major scale",
		Usage: "Pop, folk and classical melodies; the default major sound.",
	},
	"Dorian": {
		Name: "Dorian", Mood: "Cool, hopeful minor", Family: "Minor",
		Color: "natural 6 over a minor scale",
		Usage: "Funk and jazz minor grooves, Celtic tunes.",
	},
	"Phrygian": {
		Name: "Phrygian", Mood: "Dark, exotic", Family: "Minor",
		Color: "b2",
		Usage: "Flamenco, film tension cues, metal riffs.",
	},
	"Lydian": {
		Name: "Lydian", Mood: "Floating, dreamy", Family: "Major",
		Color: "#4",
		Usage: "Film scores and ballads that want lift.",
	},
	"Mixolydian": {
		Name: "Mixolydian", Mood: "Earthy, bluesy", Family: "Major",
		Color: "b7",
		Usage: "Blues, rock and anything over a dominant chord.",
	},
	"Aeolian": {
		Name: "Aeolian", Mood: "Sad, serious", Family: "Minor",
		Color: "the natural minor scale",
		Usage: "Rock ballads and minor-key pop.",
	},
	"Locrian": {
		Name: "Locrian", Mood: "Unstable, unresolved", Family: "Minor",
		Color: "b2 and b5",
		Usage: "Passing colors over half-diminished chords.",
	},
}

// ModeMeta returns the fixed metadata for a mode name.
func ModeMeta(name string) (model.ModeInfo, bool) {
	info, ok := modeMeta[name]
	return info, ok
}

// BuildMode spells the degree-th diatonic mode (0 = Ionian) from root. The
// formula is the parent major rotated to start at that degree; spelling still
// letter-steps, so every mode keeps one note per letter.
func BuildMode(root string, degree int) []string {
	maj := Formulas["major"]
	if degree < 0 || degree >= len(maj) {
		return nil
	}
	formula := make([]int, len(maj))
	for j := range maj {
		formula[j] = mod12(maj[(degree+j)%7] - maj[degree])
	}
	return BuildScale(root, formula)
}

// BuildModes returns all 7 modes on root, Ionian through Locrian, each with
// its metadata.
func BuildModes(root string) []model.ModePack {
	var res []model.ModePack
	for i, name := range ModeNames {
		scale := BuildMode(root, i)
		if scale == nil {
			return nil
		}
		res = append(res, model.ModePack{
			Info:  modeMeta[name],
			Root:  scale[0],
			Scale: scale,
		})
	}
	return res
}
