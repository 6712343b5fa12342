package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file> [shape-key]",
	Short: "Re-renders a sheet whenever the file changes",
	Long:  `Watches a chord sheet file and re-renders it on every save. Useful next to an editor while transcribing.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need 1 or 2 args...")
		}
		shapeKey := ""
		if len(args) == 2 {
			shapeKey = args[1]
		}
		watch(args[0], shapeKey)
	},
}

func watch(path, shapeKey string) {
	render(path, shapeKey)

	// editors fire several writes per save; debounce collapses them into
	// one re-render
	debounced := debounce.New(300 * time.Millisecond)

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("Could not stat %v: %v\n", path, err)
			continue
		}
		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()
			debounced(func() {
				fmt.Print("\033[2J\033[H")
				render(path, shapeKey)
			})
		}
	}
}
