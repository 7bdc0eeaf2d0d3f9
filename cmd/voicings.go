package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/voicing"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(voicingsCmd)
}

// renderFrets prints a shape as low-to-high fret numbers, "x" for muted.
func renderFrets(s model.GuitarChordShape) string {
	parts := make([]string, 6)
	for str := 0; str < 6; str++ {
		if f, ok := s.Frets[str]; ok {
			parts[str] = fmt.Sprintf("%d", f)
		} else {
			parts[str] = "x"
		}
	}
	return strings.Join(parts, "-")
}

var voicingsCmd = &cobra.Command{
	Use:   "voicings <root> [quality]",
	Short: "Finds playable chord shapes",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		quality := ""
		if len(args) == 2 {
			quality = args[1]
		}
		shapes := voicing.GenerateVoicings(args[0], quality)
		if len(shapes) == 0 {
			fmt.Println("no shapes found")
			return
		}
		q := theory.ClassifyQuality(quality)
		fmt.Printf("%v %v: %v\n", args[0], q, strings.Join(theory.SpellTriad(args[0], q), " "))
		for _, s := range shapes {
			fmt.Printf("%-40v %v (fret %v)\n", s.Label, renderFrets(s), s.BaseFret)
		}
	},
}
