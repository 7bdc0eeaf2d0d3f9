package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/chordindex"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/dict"
	"github.com/spf13/cobra"
)

var searchLimit int
var searchDict string

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", constants.DefaultSearchLimit, "max results")
	searchCmd.Flags().StringVar(&searchDict, "dict", "", "path to the chord dictionary")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches the chord dictionary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := dict.Load(searchDict)
		if err != nil {
			return err
		}
		idx := chordindex.New(defs)
		query := strings.Join(args, " ")
		results := idx.Search(query, searchLimit)
		if len(results) == 0 {
			fmt.Println("no chords found")
			return nil
		}
		for _, def := range results {
			fmt.Printf("%-10v %v\n", def.DisplayName, strings.Join(def.Notes, " "))
			if def.NeedsSoundsLikeLine {
				fmt.Printf("           sounds like %v\n", strings.Join(def.SoundsLike, " "))
			}
		}
		return nil
	},
}
