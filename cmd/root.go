package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Music theory and guitar voicing toolkit",
	Long:  `fretdex spells scales, keys and modes, searches a chord dictionary and finds playable guitar voicings.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
