package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(_ *cobra.Command, _ []string) error {
	store := openSession()
	defer closeSession(store)

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	fmt.Println("Signed out.")
	return nil
}
