package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/config"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/logging"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/session"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/tui"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagAPIURL string
	flagTheme  string
)

var rootCmd = &cobra.Command{
	Use:   "expense-tracker",
	Short: "Expense Tracker client",
	Long:  "Track your expenses: sign in, browse your spending, and add new records.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Expense API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
}

// loadConfig is the shared config loading path used by all commands.
// A corrupted config file falls back to defaults so commands always run.
func loadConfig() config.Config {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unusable (%v), using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	return cfg
}

// openSession opens the persisted session store, degrading to an in-memory
// one when storage is unavailable.
func openSession() session.Store {
	st, err := session.Open(config.SessionDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Session storage unavailable (%v), session will not persist\n", err)
		return session.NewMemoryStore()
	}
	return st
}

func closeSession(s session.Store) {
	if c, ok := s.(io.Closer); ok {
		_ = c.Close()
	}
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	logger := logging.Open(config.LogPath(cfg))
	defer func() { _ = logger.Sync() }()

	store := openSession()
	defer closeSession(store)

	app := tui.NewApp(api.NewClient(cfg.API.BaseURL), store, logger, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
