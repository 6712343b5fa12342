package model

// ChordToken is a single chord as it appeared in a chord line: the literal
// root spelling (un-normalized), everything after the root, and where the
// token sat in the line.
type ChordToken struct {
	Root   string `json:"root"`
	Suffix string `json:"suffix"`
	Column int    `json:"column"`
	Length int    `json:"length"`
}

// Text is the chord as written, root and suffix rejoined.
func (c ChordToken) Text() string {
	return c.Root + c.Suffix
}

// LineEntry is either a paired chord+lyric line or a lyric-only line
// (ChordLine empty, Chords empty).
type LineEntry struct {
	ChordLine string       `json:"chord_line,omitempty"`
	LyricLine string       `json:"lyric_line"`
	Chords    []ChordToken `json:"chords,omitempty"`
}

type Section struct {
	Label string      `json:"label"`
	Lines []LineEntry `json:"lines"`
}

type ParsedSong struct {
	Sections []Section `json:"sections"`
	Key      string    `json:"key"`
}
