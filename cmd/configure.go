package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmeunier/cardstock/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardstock configuration",
	Long:  `Commands for inspecting and updating the cardstock configuration file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		fmt.Printf("ace_low    = %t\n", cfg.AceLow)
		fmt.Printf("short_form = %t\n", cfg.ShortForm)
		fmt.Printf("decks      = %d\n", cfg.Decks)
		fmt.Printf("jokers     = %t\n", cfg.Jokers)
		return nil
	},
}

// configSetAceLowCmd represents the config set-ace-low command
var configSetAceLowCmd = &cobra.Command{
	Use:   "set-ace-low [true|false]",
	Short: "Set whether Aces are worth 1 instead of being the highest card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[0])
		}
		if err := config.SetAceLow(value); err != nil {
			return fmt.Errorf("error updating config: %v", err)
		}
		fmt.Printf("ace_low set to %t\n", value)
		return nil
	},
}

// configSetShortFormCmd represents the config set-short-form command
var configSetShortFormCmd = &cobra.Command{
	Use:   "set-short-form [true|false]",
	Short: "Set whether cards display in their short form by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[0])
		}
		if err := config.SetShortForm(value); err != nil {
			return fmt.Errorf("error updating config: %v", err)
		}
		fmt.Printf("short_form set to %t\n", value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetAceLowCmd)
	configCmd.AddCommand(configSetShortFormCmd)
}
