package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modesCmd)
}

var modesCmd = &cobra.Command{
	Use:   "modes <root>",
	Short: "Spells the 7 diatonic modes on a root",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		modes := theory.BuildModes(args[0])
		if modes == nil {
			fmt.Println("no modes found")
			return
		}
		for _, m := range modes {
			fmt.Printf("%-10v %v\n", m.Info.Name, strings.Join(m.Scale, " "))
			fmt.Printf("           %v (%v): %v\n", m.Info.Mood, m.Info.Family, m.Info.Usage)
		}
	},
}
