package chord

import (
	"strings"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/note"
)

// Split divides chord text into a leading root (one letter A-G plus an
// optional single accidental) and the remaining suffix, kept verbatim.
// Text with no A-G prefix comes back with an empty root and the whole
// trimmed input as the suffix; that is the fallback for non-chord tokens.
func Split(text string) (root, suffix string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}
	if text[0] < 'A' || text[0] > 'G' {
		return "", text
	}
	end := 1
	if len(text) > 1 && (text[1] == 'b' || text[1] == '#') {
		end = 2
	}
	return text[:end], text[end:]
}

// Transpose shifts the chord's root by the given number of semitones,
// wrapping around the chromatic scale, and reattaches the suffix untouched.
// A slash bass in the suffix (the G in C/G) is not transposed; only the
// primary root moves. Chord text whose root isn't a recognized note comes
// back unchanged.
func Transpose(text string, semitones int) string {
	root, suffix := Split(text)
	idx := note.Index(root)
	if root == "" || idx < 0 {
		return text
	}
	return note.At(idx+semitones) + suffix
}

// CapoOffset is the fret a capo sits at so that shape-key fingerings sound
// in the song's key. Always in [0,12).
func CapoOffset(shapeKey, songKey string) int {
	return note.SemitoneDistance(shapeKey, songKey)
}

// ToShapeKey converts a chord from the song's actual key into the shape a
// player fingers in the reference key with a capo at
// CapoOffset(shapeKey, songKey).
func ToShapeKey(text, songKey, shapeKey string) string {
	return Transpose(text, -CapoOffset(shapeKey, songKey))
}
