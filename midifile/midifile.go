package midifile

import (
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/note"
)

// Two beats per chord at 960 ticks per quarter.
const chordTicks = 1920

const (
	rootOctaveBase = 48 // C3
	bassOctaveBase = 36 // C2
	velocity       = 100
)

// qualityIntervals maps the leading quality of a chord suffix to semitone
// offsets from the root. Anything unrecognized plays as a major triad.
func qualityIntervals(suffix string) []uint8 {
	switch {
	case strings.HasPrefix(suffix, "dim"):
		return []uint8{0, 3, 6}
	case strings.HasPrefix(suffix, "aug"):
		return []uint8{0, 4, 8}
	case strings.HasPrefix(suffix, "sus2"):
		return []uint8{0, 2, 7}
	case strings.HasPrefix(suffix, "sus"):
		return []uint8{0, 5, 7}
	case strings.HasPrefix(suffix, "maj7"):
		return []uint8{0, 4, 7, 11}
	case strings.HasPrefix(suffix, "maj"):
		return []uint8{0, 4, 7}
	case strings.HasPrefix(suffix, "min7"), strings.HasPrefix(suffix, "m7"):
		return []uint8{0, 3, 7, 10}
	case strings.HasPrefix(suffix, "min"), strings.HasPrefix(suffix, "m"):
		return []uint8{0, 3, 7}
	case strings.HasPrefix(suffix, "7"):
		return []uint8{0, 4, 7, 10}
	case strings.HasPrefix(suffix, "6"):
		return []uint8{0, 4, 7, 9}
	default:
		return []uint8{0, 4, 7}
	}
}

// Notes voices one chord token as MIDI note numbers: the quality's triad or
// seventh around octave 3, plus a slash bass an octave below when present.
// Tokens without a recognized root produce no notes.
func Notes(token model.ChordToken) []uint8 {
	rootIdx := note.Index(token.Root)
	if token.Root == "" || rootIdx < 0 {
		return nil
	}

	var res []uint8
	if slash := strings.LastIndex(token.Suffix, "/"); slash >= 0 {
		if bassIdx := note.Index(token.Suffix[slash+1:]); bassIdx >= 0 {
			res = append(res, uint8(bassOctaveBase+bassIdx))
		}
	}
	for _, interval := range qualityIntervals(token.Suffix) {
		res = append(res, uint8(rootIdx)+interval+rootOctaveBase)
	}
	return res
}

// Build renders the song's chord progression, in reading order, as a
// one-track SMF of block chords.
func Build(parsed model.ParsedSong) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tr smf.Track
	for _, section := range parsed.Sections {
		for _, entry := range section.Lines {
			for _, c := range entry.Chords {
				notes := Notes(c)
				if len(notes) == 0 {
					continue
				}
				for _, n := range notes {
					tr.Add(0, midi.NoteOn(0, n, velocity))
				}
				for i, n := range notes {
					var delta uint32
					if i == 0 {
						delta = chordTicks
					}
					tr.Add(delta, midi.NoteOff(0, n))
				}
			}
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// Write renders the song and saves it as a Standard MIDI File.
func Write(parsed model.ParsedSong, path string) error {
	return Build(parsed).WriteFile(path)
}
