package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmeunier/cardstock/internal/config"
)

var drawCmd = &cobra.Command{
	Use:   "draw [count]",
	Short: "Draw random cards from a fresh deck",
	Long: `Draw samples cards uniformly at random, without replacement, from a
freshly built deck.

Examples:
  cardstock draw
  cardstock draw 5
  cardstock draw 5 --no-jokers --decks 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("count must be a positive integer, got %q", args[0])
			}
			count = n
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		d, err := buildDeck(cmd, cfg)
		if err != nil {
			return err
		}

		drawn := d.DrawRandom(count)
		log.Debugw("drew cards", "requested", count, "drawn", drawn.Len(), "remaining", d.Len())

		short := shortForm(cmd, cfg)
		for _, c := range drawn.Cards() {
			fmt.Println(cardString(c, short))
		}
		fmt.Printf("%d cards remaining\n", d.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)
	addDeckFlags(drawCmd)
}
