package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/chord"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/config"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/constants"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/format"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/model"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/song"
	"github.com/Engr-BenitoIshimwe/Worship-Chord-Engine/util"
)

var (
	labelColor = color.New(color.FgYellow, color.Bold)
	chordColor = color.New(color.FgCyan, color.Bold)
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file> [shape-key]",
	Short: "Renders a chord sheet, optionally transposed to a shape key",
	Long: `Renders a chord sheet to the terminal. With a shape key the chords are
converted to the shapes fingered in that key with a capo, e.g.
  chordsheet render song.txt G`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need 1 or 2 args...")
		}
		shapeKey := ""
		if len(args) == 2 {
			shapeKey = args[1]
		}
		render(args[0], shapeKey)
	},
}

func render(path, shapeKey string) {
	cfg, err := config.Load(constants.GetConfigPath())
	if err != nil {
		panic("Could not load config: " + err.Error())
	}
	if shapeKey == "" {
		shapeKey = cfg.ShapeKey
	}

	raw := util.ReadFileOrPanic(path)
	blocks := song.SplitBlocks(raw)
	for i, block := range blocks {
		if i > 0 {
			fmt.Println("---")
		}
		parsed := song.Parse(block)
		if cfg.Strict {
			for _, problem := range song.Validate(parsed) {
				fmt.Fprintf(os.Stderr, "strict: %v\n", problem)
			}
		}
		renderSong(parsed, shapeKey, cfg.CapoKeys)
	}
}

func renderSong(parsed model.ParsedSong, shapeKey string, capoKeys []string) {
	transform := format.Transform(nil)
	if shapeKey != "" {
		fret := chord.CapoOffset(shapeKey, parsed.Key)
		fmt.Printf("Key: %v  (shapes in %v, capo %v)\n", parsed.Key, shapeKey, fret)
		transform = func(text string) string {
			return chord.ToShapeKey(text, parsed.Key, shapeKey)
		}
	} else {
		fmt.Printf("Key: %v\n", parsed.Key)
	}

	for _, section := range parsed.Sections {
		fmt.Println()
		if section.Label != "" {
			labelColor.Printf("[%v]\n", section.Label)
		}
		for _, entry := range section.Lines {
			if len(entry.Chords) > 0 {
				printSegments(format.Line(entry.Chords, entry.LyricLine, transform))
			}
			fmt.Println(entry.LyricLine)
		}
	}

	if len(capoKeys) > 0 {
		fmt.Println()
		for _, k := range capoKeys {
			fmt.Printf("shapes in %v: capo %v\n", k, chord.CapoOffset(k, parsed.Key))
		}
	}
}

// printSegments writes one rebuilt chord line; the segment lengths already
// carry the column layout, so nothing here recomputes offsets.
func printSegments(segments []model.Segment) {
	for _, s := range segments {
		if s.Kind == model.SegmentChord {
			chordColor.Print(s.Text)
		} else {
			fmt.Print(s.Text)
		}
	}
	fmt.Println()
}
