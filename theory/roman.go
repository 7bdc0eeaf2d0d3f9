package theory

import "strings"

var numeralDegrees = map[string]int{
	"i": 0, "ii": 1, "iii": 2, "iv": 3, "v": 4, "vi": 5, "vii": 6,
}

// RomanToChord maps a roman numeral in a major key to a chord name. Numeral
// case carries the quality (upper = major, lower = minor); a trailing ° (or
// ascii "o") marks diminished and + marks augmented, overriding the case.
// Returns "" when the numeral or key does not parse.
func RomanToChord(numeral, key string) string {
	n := strings.TrimSpace(numeral)
	suffix := ""
	switch {
	case strings.HasSuffix(n, "°"):
		suffix = "°"
		n = strings.TrimSuffix(n, "°")
	case strings.HasSuffix(n, "o"):
		suffix = "°"
		n = strings.TrimSuffix(n, "o")
	case strings.HasSuffix(n, "+"):
		suffix = "+"
		n = strings.TrimSuffix(n, "+")
	}
	deg, ok := numeralDegrees[strings.ToLower(n)]
	if !ok {
		return ""
	}
	scale := BuildScale(key, Formulas["major"])
	if scale == nil {
		return ""
	}
	name := scale[deg]
	if suffix != "" {
		return name + suffix
	}
	if n == strings.ToLower(n) {
		return name + "m"
	}
	return name
}
