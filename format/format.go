package format

import (
	"sort"
	"strings"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
)

// Transform rewrites a chord's text. Nil means identity.
type Transform func(string) string

// Line rebuilds a chord line as positioned segments after running each
// chord through the transform. Chords are laid out at their original
// columns: a shortened spelling just widens the following gap, a lengthened
// one may visually overlap the next chord (no re-layout). A trailing space
// segment pads the line out to the lyric's length.
func Line(chords []model.ChordToken, lyric string, transform Transform) []model.Segment {
	type placed struct {
		text   string
		column int
	}

	transformed := make([]placed, len(chords))
	for i, c := range chords {
		text := c.Text()
		if transform != nil {
			text = transform(text)
		}
		transformed[i] = placed{text: text, column: c.Column}
	}

	// transposition changes spelling, never position
	sort.SliceStable(transformed, func(i, j int) bool {
		return transformed[i].column < transformed[j].column
	})

	var segments []model.Segment
	cursor := 0
	for _, c := range transformed {
		if c.column > cursor {
			gap := c.column - cursor
			segments = append(segments, model.Segment{
				Kind:   model.SegmentSpace,
				Text:   strings.Repeat(" ", gap),
				Length: gap,
			})
			cursor = c.column
		}
		segments = append(segments, model.Segment{
			Kind:   model.SegmentChord,
			Text:   c.text,
			Length: len(c.text),
		})
		cursor += len(c.text)
	}

	if pad := len(lyric) - cursor; pad > 0 {
		segments = append(segments, model.Segment{
			Kind:   model.SegmentSpace,
			Text:   strings.Repeat(" ", pad),
			Length: pad,
		})
	}
	return segments
}

// Text flattens segments back into a plain chord line.
func Text(segments []model.Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
