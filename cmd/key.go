package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

// buildPackForView maps a view name onto a key pack constructor. Unknown
// views yield an empty pack, same as unparseable roots.
func buildPackForView(root, view string) model.KeyPack {
	switch view {
	case "", "major":
		return theory.BuildMajorPack(root)
	case "natural":
		return theory.BuildMinorPack(root, theory.NaturalMinor)
	case "harmonic":
		return theory.BuildMinorPack(root, theory.HarmonicMinor)
	case "melodic":
		return theory.BuildMinorPack(root, theory.MelodicMinor)
	}
	return model.KeyPack{}
}

var keyCmd = &cobra.Command{
	Use:   "key <root> [major|natural|harmonic|melodic]",
	Short: "Shows the diatonic chords of a key",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		view := "major"
		if len(args) == 2 {
			view = args[1]
		}
		pack := buildPackForView(args[0], view)
		if pack.Scale == nil {
			fmt.Println("no key found")
			return
		}
		fmt.Printf("%v %v: %v\n", pack.Root, view, strings.Join(pack.Scale, " "))
		for i := range pack.Scale {
			fmt.Printf("  %-5v %-5v %-10v %v\n",
				pack.Numerals[i],
				pack.Chords[i],
				pack.Qualities[i],
				strings.Join(pack.Triads[i], "-"))
		}
	},
}
