package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/config"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/constants"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/song"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/util"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parses a chord sheet and prints it as JSON",
	Long:  `Parses a chord sheet (multiple songs separated by --- lines) and prints the parsed structure as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		parse(args[0])
	},
}

func parse(path string) {
	cfg, err := config.Load(constants.GetConfigPath())
	if err != nil {
		panic("Could not load config: " + err.Error())
	}

	raw := util.ReadFileOrPanic(path)
	for _, block := range song.SplitBlocks(raw) {
		parsed := song.Parse(block)
		if cfg.Strict {
			for _, problem := range song.Validate(parsed) {
				fmt.Fprintf(os.Stderr, "strict: %v\n", problem)
			}
		}
		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			panic("Could not marshal parsed song: " + err.Error())
		}
		fmt.Println(string(out))
	}
}
