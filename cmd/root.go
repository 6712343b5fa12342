package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordsheet",
	Short: "Chord sheet parser and transposer",
	Long:  `Parses plain-text worship chord sheets and transposes them between keys and capo shapes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
