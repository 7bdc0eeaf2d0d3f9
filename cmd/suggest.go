package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/chordindex"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/dict"
	"github.com/spf13/cobra"
)

var suggestLimit int
var suggestDict string

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", constants.DefaultSuggestLimit, "max suggestions")
	suggestCmd.Flags().StringVar(&suggestDict, "dict", "", "path to the chord dictionary")
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Suggests completions for partial chord queries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := dict.Load(suggestDict)
		if err != nil {
			return err
		}
		idx := chordindex.New(defs)
		for _, s := range idx.Suggest(args[0], suggestLimit) {
			fmt.Printf("%-20v %v\n", s.Text, s.Hint)
		}
		return nil
	},
}
