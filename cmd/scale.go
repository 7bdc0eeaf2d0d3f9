package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> [formula]",
	Short: "Spells a scale",
	Long:  `Spells a scale from a root. Formulas: major, naturalMinor, harmonicMinor, melodicMinor.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		name := "major"
		if len(args) == 2 {
			name = args[1]
		}
		scale := theory.BuildScaleByName(args[0], name)
		if scale == nil {
			fmt.Println("no scale found")
			return
		}
		fmt.Println(strings.Join(scale, " "))
		if name == "major" {
			if n, ok := theory.KeySignature(args[0]); ok {
				fmt.Printf("key signature: %v\n", theory.FormatKeySignature(n))
			}
			if rel, ok := theory.RelativeMinor(args[0]); ok {
				fmt.Printf("relative minor: %vm\n", rel)
			}
		}
	},
}
