package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmeunier/cardstock/internal/config"
	"github.com/lmeunier/cardstock/internal/deck"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select cards from a deck by rank, suit, color, or face status",
	Long: `Select filters a freshly built deck. Rank and suit criteria accept names
or numbers; prefix a value with '!' to exclude it instead. 'Joker' or 0
matches the jokers.

Examples:
  cardstock select --rank 2
  cardstock select --rank Queen --rank King --suit Hearts
  cardstock select --rank '!Ace' --color Red
  cardstock select --face`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		d, err := buildDeck(cmd, cfg)
		if err != nil {
			return err
		}

		ranks, _ := cmd.Flags().GetStringSlice("rank")
		suits, _ := cmd.Flags().GetStringSlice("suit")
		colorName, _ := cmd.Flags().GetString("color")

		filter := deck.Filter{Ranks: ranks, Suits: suits, Color: colorName}
		if cmd.Flags().Changed("face") {
			face, _ := cmd.Flags().GetBool("face")
			filter.Face = deck.FaceCards(face)
		}

		selected, err := d.Select(filter)
		if err != nil {
			return fmt.Errorf("error selecting cards: %v", err)
		}
		log.Debugw("selected cards", "matched", selected.Len(), "from", d.Len())

		printDeck(selected, shortForm(cmd, cfg))
		fmt.Printf("%d of %d cards matched\n", selected.Len(), d.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(selectCmd)

	selectCmd.Flags().StringSliceP("rank", "r", nil, "Rank to match (repeatable; '!' prefix excludes)")
	selectCmd.Flags().StringSliceP("suit", "s", nil, "Suit to match (repeatable; '!' prefix excludes)")
	selectCmd.Flags().StringP("color", "c", "", "Color to match (Black or Red)")
	selectCmd.Flags().Bool("face", false, "Match face cards only (use --face=false for the rest)")
	addDeckFlags(selectCmd)
}
