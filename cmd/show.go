package cmd

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmeunier/cardstock/internal/card"
	"github.com/lmeunier/cardstock/internal/config"
	"github.com/lmeunier/cardstock/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a deck of cards",
	Long: `Show builds a deck from your configuration and prints it, optionally
shuffled or sorted. Red cards are colored when the terminal supports it.

Examples:
  cardstock show
  cardstock show --sort rank
  cardstock show --shuffle --short
  cardstock show --decks 2 --no-jokers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		d, err := buildDeck(cmd, cfg)
		if err != nil {
			return err
		}

		shuffled, _ := cmd.Flags().GetBool("shuffle")
		if shuffled {
			d.Shuffle()
		}

		sortKey, _ := cmd.Flags().GetString("sort")
		switch sortKey {
		case "":
		case "rank":
			d.SortByRank(cfg.Rules())
		case "suit":
			d.SortBySuit(cfg.Rules())
		default:
			return fmt.Errorf("unknown sort key %q (use rank or suit)", sortKey)
		}

		short := shortForm(cmd, cfg)
		log.Debugw("showing deck", "cards", d.Len(), "short", short, "sort", sortKey)
		printDeck(d, short)
		fmt.Printf("%d cards\n", d.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("shuffle", false, "Shuffle the deck before displaying it")
	showCmd.Flags().String("sort", "", "Sort the deck by 'rank' or 'suit' before displaying it")
	addDeckFlags(showCmd)
}

// addDeckFlags registers the flags shared by every command that starts from
// a fresh deck.
func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().Int("decks", 0, "Number of 52-card packs to combine (default from config)")
	cmd.Flags().Bool("no-jokers", false, "Leave the jokers out")
	cmd.Flags().Bool("short", false, "Use the short card form (e.g. A♠)")
}

// buildDeck assembles the starting deck from the config and the shared
// flags: a standard deck per pack, jokers stripped on request.
func buildDeck(cmd *cobra.Command, cfg *config.Config) (*deck.Deck, error) {
	packs := cfg.Decks
	if n, _ := cmd.Flags().GetInt("decks"); n > 0 {
		packs = n
	}
	jokers := cfg.Jokers
	if noJokers, _ := cmd.Flags().GetBool("no-jokers"); noJokers {
		jokers = false
	}

	single := deck.Standard()
	if !jokers {
		if err := single.Remove(deck.ByCard(card.NewJoker(card.Black)), deck.ByCard(card.NewJoker(card.Red))); err != nil {
			return nil, err
		}
	}
	d, err := single.Repeat(packs)
	if err != nil {
		return nil, err
	}
	log.Debugw("built deck", "packs", packs, "jokers", jokers, "cards", d.Len())
	return d, nil
}

// shortForm resolves the display form from the flag, falling back to the
// config toggle.
func shortForm(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("short") {
		short, _ := cmd.Flags().GetBool("short")
		return short
	}
	return cfg.ShortForm
}

// cardString renders one card for the terminal, red cards in red.
func cardString(c card.Card, short bool) string {
	text := c.Format(short)
	if c.Color() == card.Red {
		return colorize.HiRedString(text)
	}
	return colorize.HiWhiteString(text)
}

// printDeck lays the cards out in columns sized to the terminal.
func printDeck(d *deck.Deck, short bool) {
	cards := d.Cards()
	if len(cards) == 0 {
		fmt.Println("(empty deck)")
		return
	}

	cellWidth := 0
	for _, c := range cards {
		if w := len([]rune(c.Format(short))); w > cellWidth {
			cellWidth = w
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	perRow := width / (cellWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	for i, c := range cards {
		pad := cellWidth - len([]rune(c.Format(short)))
		fmt.Print(cardString(c, short), strings.Repeat(" ", pad+2))
		if (i+1)%perRow == 0 {
			fmt.Println()
		}
	}
	if len(cards)%perRow != 0 {
		fmt.Println()
	}
}
