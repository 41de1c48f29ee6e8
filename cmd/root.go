package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// log is a no-op unless --verbose upgrades it in PersistentPreRun.
var log = zap.NewNop().Sugar()

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardstock",
	Short: "Tool for building, inspecting, and filtering playing card decks",
	Long: `Cardstock is a command-line tool for working with French-suited playing
card decks: building standard or multi-pack decks, drawing cards, sorting,
and selecting cards by rank, suit, color, or face status.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			if zl, err := zap.NewDevelopment(); err == nil {
				log = zl.Sugar()
			}
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
