package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmeunier/cardstock/internal/deckcheck"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [card specs...]",
	Short: "Check a deck composition against the standard deck",
	Long: `Validate parses a list of card descriptions and reports anything that
does not name a card, along with duplicates and cards missing from a
standard 54-card deck.

Examples:
  cardstock validate "Ace of Spades" "Queen of Hearts" "Red Joker"
  cardstock validate "1 of Spades" "13 of Clubs"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := deckcheck.NewChecker(args)
		results := checker.Check()

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ All %d card specs are valid.\n", len(args))
		} else {
			fmt.Printf("❌ %d of %d card specs are invalid:\n", len(results.Errors), len(args))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
