package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/midifile"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/song"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/util"
)

func init() {
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <sheet> <out.mid>",
	Short: "Exports a sheet's chord progression as a MIDI file",
	Long:  `Exports the first song block's chord progression as a Standard MIDI File of block chords.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		exportMidi(args[0], args[1])
	},
}

func exportMidi(inPath, outPath string) {
	raw := util.ReadFileOrPanic(inPath)
	blocks := song.SplitBlocks(raw)
	if len(blocks) == 0 {
		panic("No songs found in " + inPath)
	}

	parsed := song.Parse(blocks[0])
	if err := midifile.Write(parsed, outPath); err != nil {
		panic("Could not write midi file: " + err.Error())
	}

	var numChords int
	for _, s := range parsed.Sections {
		for _, l := range s.Lines {
			numChords += len(l.Chords)
		}
	}
	fmt.Printf("Wrote %v chords to %v\n", numChords, outPath)
}
