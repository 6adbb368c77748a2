package cmd

import (
	"fmt"
	"strings"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/session"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client := api.NewClient(cfg.API.BaseURL)

	var email, password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	user, err := client.SignIn(cmd.Context(), api.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	store := openSession()
	defer closeSession(store)

	if err := session.SaveLogin(store, user.AccessToken, user.UserID); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	fmt.Printf("Signed in as %s\n", user.UserID)
	return nil
}
