package theory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchClassBasics(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, PitchClass("C"))
	assert.Equal(1, PitchClass("C#"))
	assert.Equal(1, PitchClass("c#"))
	assert.Equal(10, PitchClass("Bb"))
	assert.Equal(2, PitchClass("C##"))
	assert.Equal(9, PitchClass("Bbb"))
	assert.Equal(1, PitchClass("C♯"))
	assert.Equal(10, PitchClass("B♭"))
}

func TestPitchClassInvalid(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(NotFound, PitchClass(""))
	assert.Equal(NotFound, PitchClass("   "))
	assert.Equal(NotFound, PitchClass("H"))
	assert.Equal(NotFound, PitchClass("#"))
	assert.Equal(NotFound, PitchClass("3"))
}

func TestEnharmonicSpellingsShareAPitchClass(t *testing.T) {
	pairs := [][2]string{
		{"C#", "Db"},
		{"F#", "Gb"},
		{"B", "Cb"},
		{"E", "Fb"},
		{"B#", "C"},
		{"E#", "F"},
	}
	for _, p := range pairs {
		t.Run(p[0]+"="+p[1], func(t *testing.T) {
			assert.Equal(t, PitchClass(p[0]), PitchClass(p[1]))
		})
	}
}

func TestPitchClassRoundTrip(t *testing.T) {
	assert := assert.New(t)
	spellings := []string{"C", "C#", "Db", "D", "Eb", "E", "Fb", "F", "F#", "Gb", "G", "Ab", "A", "Bb", "B", "Cb", "B#", "E#"}
	for _, s := range spellings {
		pc := PitchClass(s)
		assert.Equal(pc, PitchClass(PitchClassToNote(pc, false)), s)
		assert.Equal(pc, PitchClass(PitchClassToNote(pc, true)), s)
	}
}

func TestPitchClassToNote(t *testing.T) {
	assert := assert.New(t)
	// naturals ignore the flats flag
	for _, pc := range []int{0, 2, 4, 5, 7, 9, 11} {
		assert.Equal(PitchClassToNote(pc, false), PitchClassToNote(pc, true))
	}
	assert.Equal("C#", PitchClassToNote(1, false))
	assert.Equal("Db", PitchClassToNote(1, true))
	// negative input wraps
	assert.Equal("B", PitchClassToNote(-1, false))
	assert.Equal("C", PitchClassToNote(12, true))
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, Interval("C", "E"))
	assert.Equal(8, Interval("E", "C"))
	assert.Equal(0, Interval("C#", "Db"))
	assert.Equal(NotFound, Interval("C", "H"))
	assert.Equal(NotFound, Interval("", "C"))
}

func TestMajorScaleLetterStepping(t *testing.T) {
	cases := []struct {
		root     string
		expected []string
	}{
		{"C", []string{"C", "D", "E", "F", "G", "A", "B"}},
		{"G", []string{"G", "A", "B", "C", "D", "E", "F#"}},
		{"F", []string{"F", "G", "A", "Bb", "C", "D", "E"}},
		{"F#", []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{"C#", []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}},
		{"Gb", []string{"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"}},
		{"Eb", []string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
	}
	for _, c := range cases {
		t.Run(c.root+" major", func(t *testing.T) {
			assert.Equal(t, c.expected, BuildScale(c.root, Formulas["major"]))
		})
	}
}

func TestMajorScaleNeverRepeatsLetters(t *testing.T) {
	assert := assert.New(t)
	scale := BuildScale("F#", Formulas["major"])
	assert.Contains(scale, "E#")
	assert.NotContains(scale, "F")
	scale = BuildScale("C#", Formulas["major"])
	assert.Contains(scale, "B#")
	assert.NotContains(scale, "C")
	scale = BuildScale("Gb", Formulas["major"])
	assert.Contains(scale, "Cb")
	assert.NotContains(scale, "B")
}

func TestBuildScaleInvalid(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(BuildScale("H", Formulas["major"]))
	assert.Nil(BuildScale("", Formulas["major"]))
	assert.Nil(BuildScaleByName("C", "wholeTone"))
}

func TestMinorVariants(t *testing.T) {
	assert := assert.New(t)
	natural := BuildMinorPack("A", NaturalMinor)
	assert.Equal([]string{"A", "B", "C", "D", "E", "F", "G"}, natural.Scale)

	harmonic := BuildMinorPack("A", HarmonicMinor)
	assert.Equal("G#", harmonic.Scale[6])

	melodic := BuildMinorPack("A", MelodicMinor)
	assert.Equal("F#", melodic.Scale[5])
	assert.Equal("G#", melodic.Scale[6])
}

func TestMajorPackChords(t *testing.T) {
	assert := assert.New(t)
	pack := BuildMajorPack("C")
	assert.Equal([]string{"C", "Dm", "Em", "F", "G", "Am", "B°"}, pack.Chords)
	assert.Equal([]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}, pack.Numerals)
	assert.Equal([]string{"G", "B", "D"}, pack.Triads[4])
	assert.Equal(7, len(pack.Qualities))
}

func TestMinorPackHarmonicDominant(t *testing.T) {
	assert := assert.New(t)
	pack := BuildMinorPack("A", HarmonicMinor)
	// raised 7th turns the v chord major
	assert.Equal("E", pack.Chords[4])
	assert.Equal([]string{"E", "G#", "B"}, pack.Triads[4])
}

func TestKeySignatures(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]int{
		"C": 0, "G": 1, "D": 2, "F#": 6, "C#": 7,
		"F": -1, "Bb": -2, "Gb": -6, "Cb": -7,
	}
	for root, expected := range cases {
		n, ok := KeySignature(root)
		assert.True(ok, root)
		assert.Equal(expected, n, root)
	}
	_, ok := KeySignature("G#")
	assert.False(ok)
}

func TestFormatKeySignature(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("—", FormatKeySignature(0))
	assert.Equal("3♯", FormatKeySignature(3))
	assert.Equal("2♭", FormatKeySignature(-2))
}

func TestRelativeMinors(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]string{
		"C": "A", "G": "E", "F#": "D#", "Db": "Bb", "F": "D",
	}
	for major, minor := range cases {
		rel, ok := RelativeMinor(major)
		assert.True(ok, major)
		assert.Equal(minor, rel, major)
	}
	_, ok := RelativeMinor("H")
	assert.False(ok)
}

func TestCircleOfFifthsIsComplete(t *testing.T) {
	assert := assert.New(t)
	entries := CircleOfFifths()
	assert.Equal(12, len(entries))
	seen := make(map[int]bool)
	for _, e := range entries {
		seen[PitchClass(e.Major)] = true
		// relative minor sits 3 semitones below its major
		assert.Equal(9, Interval(e.Major, e.RelativeMinor), e.Major)
	}
	assert.Equal(12, len(seen))
}

func TestModes(t *testing.T) {
	assert := assert.New(t)
	modes := BuildModes("C")
	assert.Equal(7, len(modes))
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, modes[0].Scale)
	// C dorian keeps one note per letter
	assert.Equal([]string{"C", "D", "Eb", "F", "G", "A", "Bb"}, modes[1].Scale)
	assert.Equal([]string{"C", "D", "E", "F#", "G", "A", "B"}, modes[3].Scale)
	assert.Equal("Lydian", modes[3].Info.Name)
	assert.Equal("Major", modes[3].Info.Family)
	assert.Equal("Minor", modes[5].Info.Family)
}

func TestRomanToChord(t *testing.T) {
	cases := []struct {
		numeral  string
		key      string
		expected string
	}{
		{"I", "C", "C"},
		{"ii", "C", "Dm"},
		{"V", "G", "D"},
		{"vii°", "C", "B°"},
		{"viio", "C", "B°"},
		{"III+", "A", "C#+"},
		{"iv", "E", "Am"},
		{"viii", "C", ""},
		{"V", "H", ""},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v in %v", c.numeral, c.key), func(t *testing.T) {
			assert.Equal(t, c.expected, RomanToChord(c.numeral, c.key))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("c#", NormalizeQuery(" C ♯ "))
	assert.Equal("g#", NormalizeQuery("G sharp"))
	assert.Equal("gb", NormalizeQuery("G flat"))
	assert.Equal("cmaj7", NormalizeQuery("C Major 7"))
	assert.Equal("dmin", NormalizeQuery("D minor"))
	assert.Equal("bdim", NormalizeQuery("B diminished"))
	assert.Equal("faug", NormalizeQuery("F augmented"))
}

func TestClassifyQuality(t *testing.T) {
	cases := []struct {
		quality  string
		expected TriadQuality
	}{
		{"", Major},
		{"maj", Major},
		{"maj7", Major},
		{"m", Minor},
		{"min", Minor},
		{"m7", Minor},
		{"minor", Minor},
		{"dim", Diminished},
		{"°", Diminished},
		{"diminished", Diminished},
		{"aug", Augmented},
		{"+", Augmented},
		{"7", Major},
	}
	for _, c := range cases {
		t.Run("classify "+c.quality, func(t *testing.T) {
			assert.Equal(t, c.expected, ClassifyQuality(c.quality))
		})
	}
}

func TestTriadPitchClasses(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([3]int{0, 4, 7}, TriadPitchClasses(0, Major))
	assert.Equal([3]int{9, 0, 4}, TriadPitchClasses(9, Minor))
	assert.Equal([3]int{11, 2, 5}, TriadPitchClasses(11, Diminished))
	assert.Equal([3]int{0, 4, 8}, TriadPitchClasses(0, Augmented))
}

func TestSpellTriad(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C", "E", "G"}, SpellTriad("C", Major))
	assert.Equal([]string{"B", "D", "F"}, SpellTriad("B", Diminished))
	assert.Equal([]string{"C", "E", "G#"}, SpellTriad("C", Augmented))
	assert.Equal([]string{"Eb", "Gb", "Bb"}, SpellTriad("Eb", Minor))
	assert.Equal([]string{"F#", "A#", "C#"}, SpellTriad("F#", Major))
	assert.Nil(SpellTriad("H", Major))
}

func TestNeedsSoundsLike(t *testing.T) {
	assert := assert.New(t)
	strict := []string{"F##", "A#", "C#"}
	alt := []string{"G", "A#", "C#"}
	assert.True(NeedsSoundsLike(strict, alt))
	// no alternative supplied
	assert.False(NeedsSoundsLike(strict, nil))
	// alternative identical to strict
	assert.False(NeedsSoundsLike(strict, strict))
	// no doubled accidental
	assert.False(NeedsSoundsLike([]string{"C", "E", "G"}, []string{"B#", "E", "G"}))
}

func TestHasDoubledAccidental(t *testing.T) {
	assert := assert.New(t)
	assert.True(HasDoubledAccidental([]string{"C", "F##"}))
	assert.True(HasDoubledAccidental([]string{"Bbb"}))
	assert.False(HasDoubledAccidental([]string{"Bb", "C#"}))
}
