package song

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
)

const DefaultKey = "C"

var keyMarkerRe = regexp.MustCompile(`(?i)^key:\s*([A-G][b#]?)`)

var blockSeparatorRe = regexp.MustCompile(`^-{3,}$`)

// builder is the parser's section accumulator. Two states: no section open,
// or one open collecting lines. Flush is the only way a section leaves the
// builder, so every opened section is pushed exactly once.
type builder struct {
	open  bool
	label string
	lines []model.LineEntry
}

func (b *builder) Open(label string) {
	b.open = true
	b.label = label
	b.lines = nil
}

// Append adds an entry, opening an implicit unlabeled section first if none
// is open.
func (b *builder) Append(entry model.LineEntry) {
	if !b.open {
		b.Open("")
	}
	b.lines = append(b.lines, entry)
}

func (b *builder) Flush() (model.Section, bool) {
	if !b.open {
		return model.Section{}, false
	}
	s := model.Section{Label: b.label, Lines: b.lines}
	b.open = false
	b.label = ""
	b.lines = nil
	return s, true
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// detectKey finds the song's key: an explicit Key: marker wins, else the
// root of the first chord token on the first chord-looking line, else C.
func detectKey(lines []string) string {
	for _, line := range lines {
		if m := keyMarkerRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return m[1]
		}
	}
	for _, line := range lines {
		// label precedence applies here too: VERSE 2 contains "E " but
		// must not decide the key
		if IsSectionLabel(line) || !chordProbeRe.MatchString(line) {
			continue
		}
		if chords := ExtractChords(line); len(chords) > 0 {
			return chords[0].Root
		}
	}
	return DefaultKey
}

// Parse consumes one song's raw text and produces its sections and key.
// Blank lines are skipped, labels open sections, chord lines pair with the
// line beneath them, and anything else inside a section is a lyric line.
// Lyric lines before the first section are dropped; chorded content opens
// an implicit unlabeled section instead.
func Parse(raw string) model.ParsedSong {
	lines := splitLines(raw)
	key := detectKey(lines)

	var sections []model.Section
	var b builder

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if IsSectionLabel(line) {
			if s, ok := b.Flush(); ok {
				sections = append(sections, s)
			}
			b.Open(CleanLabel(line))
			continue
		}
		var next string
		hasNext := i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}
		if hasNext && IsChordLine(line, next) {
			b.Append(model.LineEntry{
				ChordLine: line,
				LyricLine: next,
				Chords:    ExtractChords(line),
			})
			i++
			continue
		}
		if b.open {
			b.Append(model.LineEntry{LyricLine: line})
		}
	}

	if s, ok := b.Flush(); ok {
		sections = append(sections, s)
	}
	return model.ParsedSong{Sections: sections, Key: key}
}

// SplitBlocks partitions raw text into independent song blocks on separator
// lines of three or more hyphens. Blocks that are only whitespace are
// dropped.
func SplitBlocks(raw string) []string {
	var blocks []string
	var curr []string

	push := func() {
		block := strings.Join(curr, "\n")
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
		curr = curr[:0]
	}

	for _, line := range splitLines(raw) {
		if blockSeparatorRe.MatchString(strings.TrimSpace(line)) {
			push()
			continue
		}
		curr = append(curr, line)
	}
	push()
	return blocks
}

// Validate is the opt-in strict check: it flags chord-line text the token
// scanner did not consume. The parser itself never rejects input.
func Validate(s model.ParsedSong) []string {
	var problems []string
	for _, section := range s.Sections {
		for _, entry := range section.Lines {
			if entry.ChordLine == "" {
				continue
			}
			leftover := entry.ChordLine
			// blank out every recognized token, then anything non-space left
			// over is unparseable chord text
			for _, c := range entry.Chords {
				leftover = leftover[:c.Column] + strings.Repeat(" ", c.Length) + leftover[c.Column+c.Length:]
			}
			for _, junk := range strings.Fields(leftover) {
				problems = append(problems, fmt.Sprintf("unrecognized chord text %q in section %q", junk, section.Label))
			}
		}
	}
	return problems
}
