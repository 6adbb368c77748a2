// Package cmd implements the expense-tracker CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if _, statErr := os.Stat(config.Path()); statErr == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL: %s\n", cfg.API.BaseURL)
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default currency: %s\n", cfg.General.DefaultCurrency)
	fmt.Printf("    Resume session:   %v\n", cfg.General.ResumeSession)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    File: %s\n", config.LogPath(cfg))
	fmt.Println()

	fmt.Printf("  Session database: %s\n", config.SessionDBPath())
	return nil
}
