package song

import (
	"regexp"
	"strings"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/chord"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
)

// A root letter followed by whitespace somewhere in the line is enough to
// suspect a chord line.
var chordProbeRe = regexp.MustCompile(`[A-G][b#]?\s`)

// Full chord token: root, optional accidental, optional quality keyword,
// optional extension digits, optional slash bass.
var chordTokenRe = regexp.MustCompile(`[A-G][b#]?(?:maj|min|m|sus|add|dim|aug)?\d*(?:/[A-G][b#]?)?`)

// Known section names, optionally numbered, with or without brackets.
var labelVocabRe = regexp.MustCompile(`(?i)^\[?\s*(?:VERSE|CHORUS|BRIDGE|INTRO|OUTRO|PRE-CHORUS|INTERLUDE|INSTRUMENTAL|TAG|ENDING)\s*\d*\s*\]?$`)

var bracketedRe = regexp.MustCompile(`^\[.*\]$`)

var bareDigitsRe = regexp.MustCompile(`^\d+$`)

// Two or more consecutive capitals separate a shouted label (CHORUS, TAG 2)
// from a line of single-letter chord names, which is also lowercase-free.
var capsRunRe = regexp.MustCompile(`[A-Z]{2,}`)

// IsSectionLabel reports whether a line names a section. Checked before the
// chord-line test: labels win.
func IsSectionLabel(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if labelVocabRe.MatchString(line) {
		return true
	}
	if bracketedRe.MatchString(line) {
		return true
	}
	// all-caps heading: no lowercase, short, not a row of chord letters
	if len(line) < 30 && !strings.ContainsFunc(line, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return capsRunRe.MatchString(line) || bareDigitsRe.MatchString(line)
	}
	return false
}

// CleanLabel strips brackets, expands a bare digit to a verse number, and
// upper-cases the result for storage.
func CleanLabel(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")
	line = strings.TrimSpace(line)
	if bareDigitsRe.MatchString(line) {
		line = "Verse " + line
	}
	return strings.ToUpper(line)
}

// IsChordLine reports whether a line should be treated as the chord half of
// a chord/lyric pair. The lookahead keeps two consecutive chord-looking
// lines from both being classified as chord lines: only the first of a pair
// is.
func IsChordLine(line, next string) bool {
	if !chordProbeRe.MatchString(line) {
		return false
	}
	return !chordProbeRe.MatchString(next)
}

// ExtractChords scans a chord line left to right and returns every chord
// token with its start column and length, ascending by column.
func ExtractChords(line string) []model.ChordToken {
	var res []model.ChordToken
	for _, loc := range chordTokenRe.FindAllStringIndex(line, -1) {
		text := line[loc[0]:loc[1]]
		root, suffix := chord.Split(text)
		res = append(res, model.ChordToken{
			Root:   root,
			Suffix: suffix,
			Column: loc[0],
			Length: loc[1] - loc[0],
		})
	}
	return res
}
