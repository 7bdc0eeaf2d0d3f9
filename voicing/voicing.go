package voicing

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/util"
)

// Standard tuning, string 0 (low E) to string 5 (high E).
var OpenPitchClasses = [6]int{4, 9, 2, 7, 11, 4}
var OpenPitches = [6]int{40, 45, 50, 55, 59, 64}

// PositionBuckets are the canonical starting frets voicings are grouped by.
var PositionBuckets = []int{0, 5, 7, 9, 12}

var stringSets = [4][3]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}, {3, 4, 5}}

const maxFret = 12

// maxTriadSpan keeps non-open shapes reachable by one hand.
const maxTriadSpan = 4

// Barre templates: fret offset per string relative to the barre fret,
// muted = -1. E shape roots on string 0, A shape on string 1.
var eShapeMajor = [6]int{0, 2, 2, 1, 0, 0}
var eShapeMinor = [6]int{0, 2, 2, 0, 0, 0}
var aShapeMajor = [6]int{-1, 0, 2, 2, 2, 0}
var aShapeMinor = [6]int{-1, 0, 2, 2, 1, 0}

var inversionNames = [3]string{"root position", "1st inversion", "2nd inversion"}

func mod12(v int) int {
	return ((v % 12) + 12) % 12
}

func minFret(frets map[int]int) int {
	min := math.MaxInt
	for _, f := range frets {
		if f < min {
			min = f
		}
	}
	return min
}

// stringSetName names a set in guitar numbering, where string 0 is the 6th.
func stringSetName(set [3]int) string {
	return fmt.Sprintf("%d-%d-%d", 6-set[0], 6-set[1], 6-set[2])
}

// barreShapes builds the E-form and A-form grips: find the lowest fret on
// the root string whose pitch class is the root, then stamp the template.
// There is no standard barre template for diminished or augmented, so those
// qualities get none.
func barreShapes(rootPC int, q theory.TriadQuality) []model.GuitarChordShape {
	if q == theory.Diminished || q == theory.Augmented {
		return nil
	}
	type grip struct {
		label    string
		rootStr  int
		template [6]int
	}
	grips := []grip{
		{"Barre (E shape)", 0, eShapeMajor},
		{"Barre (A shape)", 1, aShapeMajor},
	}
	if q == theory.Minor {
		grips = []grip{
			{"Barre (E shape)", 0, eShapeMinor},
			{"Barre (A shape)", 1, aShapeMinor},
		}
	}
	var res []model.GuitarChordShape
	for _, g := range grips {
		barreFret := mod12(rootPC - OpenPitchClasses[g.rootStr])
		frets := make(map[int]int)
		for s := 0; s < 6; s++ {
			if g.template[s] < 0 {
				continue
			}
			frets[s] = barreFret + g.template[s]
		}
		res = append(res, model.GuitarChordShape{
			Label:     g.label,
			Frets:     frets,
			BaseFret:  minFret(frets),
			Inversion: model.NoInversion,
			Position:  model.NoPosition,
		})
	}
	return res
}

// triadShape searches one (string set, position, inversion) combination
// exhaustively and keeps the lowest-scoring fret triple. Score is
// 10*span + average fret + 0.5*distance from the requested position (the
// last term only away from open position): compactness first, then low
// frets, then closeness to the position. ok is false when nothing playable
// exists there.
func triadShape(triad [3]int, set [3]int, pos, inv int) (model.GuitarChordShape, bool) {
	lo, hi := 0, 5
	if pos != 0 {
		lo, hi = pos, util.Min(maxFret, pos+5)
	}
	bass := triad[inv]
	inTriad := func(pc int) bool {
		return pc == triad[0] || pc == triad[1] || pc == triad[2]
	}

	var best model.GuitarChordShape
	bestScore := math.MaxFloat64
	found := false
	for f0 := lo; f0 <= hi; f0++ {
		if mod12(OpenPitchClasses[set[0]]+f0) != bass {
			continue
		}
		for f1 := lo; f1 <= hi; f1++ {
			if !inTriad(mod12(OpenPitchClasses[set[1]] + f1)) {
				continue
			}
			for f2 := lo; f2 <= hi; f2++ {
				if !inTriad(mod12(OpenPitchClasses[set[2]] + f2)) {
					continue
				}
				pc0 := mod12(OpenPitchClasses[set[0]] + f0)
				pc1 := mod12(OpenPitchClasses[set[1]] + f1)
				pc2 := mod12(OpenPitchClasses[set[2]] + f2)
				// all three triad tones, none doubled
				if pc0 == pc1 || pc1 == pc2 || pc0 == pc2 {
					continue
				}
				p0 := OpenPitches[set[0]] + f0
				p1 := OpenPitches[set[1]] + f1
				p2 := OpenPitches[set[2]] + f2
				if !(p0 < p1 && p1 < p2) {
					continue
				}
				low := util.Min(f0, util.Min(f1, f2))
				high := util.Max(f0, util.Max(f1, f2))
				span := high - low
				if pos != 0 && span > maxTriadSpan {
					continue
				}
				score := 10*float64(span) + float64(f0+f1+f2)/3
				if pos != 0 {
					score += 0.5 * math.Abs(float64(low-pos))
				}
				if score < bestScore {
					bestScore = score
					frets := map[int]int{set[0]: f0, set[1]: f1, set[2]: f2}
					best = model.GuitarChordShape{
						Label:     fmt.Sprintf("Triad %s (strings %s)", inversionNames[inv], stringSetName(set)),
						Frets:     frets,
						BaseFret:  low,
						Inversion: inv,
						Position:  pos,
						IsTriad:   true,
						StringSet: stringSetName(set),
					}
					found = true
				}
			}
		}
	}
	return best, found
}

// bucketOf buckets barre shapes by base fret so barre and triad shapes
// interleave in display order.
func bucketOf(s model.GuitarChordShape) int {
	if s.Position != model.NoPosition {
		return s.Position
	}
	b := 0
	for _, p := range PositionBuckets {
		if s.BaseFret >= p {
			b = p
		}
	}
	return b
}

// sortShapes fixes display order: position bucket, then base fret, then
// triads after barre shapes, then label. Keeps output independent of
// generation order.
func sortShapes(shapes []model.GuitarChordShape) {
	sort.SliceStable(shapes, func(i, j int) bool {
		a, b := shapes[i], shapes[j]
		if x, y := bucketOf(a), bucketOf(b); x != y {
			return x < y
		}
		if a.BaseFret != b.BaseFret {
			return a.BaseFret < b.BaseFret
		}
		if a.IsTriad != b.IsTriad {
			return !a.IsTriad
		}
		return a.Label < b.Label
	})
}

// GenerateVoicings finds playable shapes for a root and free-text quality:
// barre grips plus the best triad shape per string set, position bucket and
// inversion. An unparseable root yields nil. Combinations with no playable
// shape are simply absent from the result, not errors.
func GenerateVoicings(root, quality string) []model.GuitarChordShape {
	rootPC := theory.PitchClass(root)
	if rootPC == theory.NotFound {
		return nil
	}
	q := theory.ClassifyQuality(quality)
	triad := theory.TriadPitchClasses(rootPC, q)

	res := barreShapes(rootPC, q)
	for _, set := range stringSets {
		for _, pos := range PositionBuckets {
			for inv := 0; inv < 3; inv++ {
				if shape, ok := triadShape(triad, set, pos, inv); ok {
					res = append(res, shape)
				}
			}
		}
	}
	sortShapes(res)
	return res
}
