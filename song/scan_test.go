package song

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSectionLabel(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"CHORUS", true},
		{"Verse 2", true},
		{"[Bridge]", true},
		{"[anything at all]", true},
		{"pre-chorus", true},
		{"INSTRUMENTAL 3", true},
		{"MY SHOUTED HEADING", true},
		{"2", true},
		{"", false},
		{"Light of the world", false},
		{"D            A", false},
		{"G   C   D   Em", false},
		{"THIS ALL CAPS HEADING IS FAR TOO LONG TO BE A LABEL", false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("label %q", c.line), func(t *testing.T) {
			assert.Equal(t, c.want, IsSectionLabel(c.line))
		})
	}
}

func TestCleanLabel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("BRIDGE", CleanLabel("[Bridge]"))
	assert.Equal("CHORUS 2", CleanLabel("  chorus 2  "))
	assert.Equal("VERSE 2", CleanLabel("2"))
	assert.Equal("VERSE 3", CleanLabel("[3]"))
}

func TestIsChordLineNeedsRootThenWhitespace(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsChordLine("D            A", "Light of the world"))
	assert.True(IsChordLine("A  F#m", "some lyric"))
	// the probe needs a bare root followed by whitespace; a trailing chord
	// with an accidental glued to a quality doesn't satisfy it
	assert.False(IsChordLine("F#m", "some lyric"))
	assert.False(IsChordLine("Light of the world", ""))
	assert.False(IsChordLine("no chords here", "still none"))
}

func TestIsChordLineLookahead(t *testing.T) {
	// two chord-looking lines in a row: only the first is the chord line
	assert := assert.New(t)
	assert.False(IsChordLine("D  A", "G  C"))
	assert.True(IsChordLine("G  C", "down in the river"))
}

func TestExtractChordsColumnsAndLengths(t *testing.T) {
	chords := ExtractChords("D            A")

	assert := assert.New(t)
	assert.Len(chords, 2)
	assert.Equal("D", chords[0].Text())
	assert.Equal(0, chords[0].Column)
	assert.Equal(1, chords[0].Length)
	assert.Equal("A", chords[1].Text())
	assert.Equal(13, chords[1].Column)
}

func TestExtractChordsQualitiesAndBass(t *testing.T) {
	chords := ExtractChords("F#m7  Asus4  C/G  Bbdim")

	assert := assert.New(t)
	assert.Len(chords, 4)
	assert.Equal("F#m7", chords[0].Text())
	assert.Equal("F#", chords[0].Root)
	assert.Equal("m7", chords[0].Suffix)
	assert.Equal("Asus4", chords[1].Text())
	assert.Equal("C/G", chords[2].Text())
	assert.Equal("/G", chords[2].Suffix)
	assert.Equal("Bbdim", chords[3].Text())

	// columns ascend
	for i := 1; i < len(chords); i++ {
		assert.Greater(chords[i].Column, chords[i-1].Column)
	}
}

func TestExtractChordsEmptyLine(t *testing.T) {
	assert.Empty(t, ExtractChords(""))
}
