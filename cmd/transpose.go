package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/chord"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <chord> <semitones>",
	Short: "Transposes a single chord",
	Long: `Transposes a single chord by a number of semitones, e.g.
  chordsheet transpose F#m7 -2`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		semitones, err := strconv.Atoi(args[1])
		if err != nil {
			panic(err)
		}
		fmt.Println(chord.Transpose(args[0], semitones))
	},
}
