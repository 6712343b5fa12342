package note

// Chromatic is the canonical 12-note scale, ascending from C. All index
// arithmetic over this table is taken modulo 12.
var Chromatic = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Enharmonic spellings folded into the canonical table. Lookup only; the
// canonical form is never a flat.
var aliases = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

// Normalize maps an enharmonic alias to its canonical spelling. Canonical
// and unrecognized spellings pass through unchanged.
func Normalize(spelling string) string {
	if canonical, ok := aliases[spelling]; ok {
		return canonical
	}
	return spelling
}

// Index returns the chromatic index of a note spelling, or -1 if the
// spelling is not a recognized note.
func Index(spelling string) int {
	normalized := Normalize(spelling)
	for i, name := range Chromatic {
		if name == normalized {
			return i
		}
	}
	return -1
}

// At returns the canonical spelling at a chromatic index, wrapping modulo
// 12 and tolerating negative values.
func At(i int) string {
	return Chromatic[((i%12)+12)%12]
}

// SemitoneDistance returns how many semitones up from one note to the
// other, always in [0,12). Unrecognized spellings count as zero distance
// rather than an error: malformed musical text degrades, it doesn't fail.
func SemitoneDistance(from, to string) int {
	a := Index(from)
	b := Index(to)
	if a < 0 || b < 0 {
		return 0
	}
	return ((b - a) + 12) % 12
}
