package cmd

import (
	"fmt"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/cli"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/expense"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show spending totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	store := openSession()
	defer closeSession(store)

	userID, err := requireUserID(store)
	if err != nil {
		return err
	}

	list, err := api.NewClient(cfg.API.BaseURL).GetExpenses(cmd.Context(), userID)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No expenses yet.")
		return nil
	}

	s := expense.Summarize(list)
	code := cfg.General.DefaultCurrency

	fmt.Printf("  Total Expenses:   %s\n", expense.FormatMoney(s.Total, code))
	fmt.Printf("  Transactions:     %s\n", cli.FormatNumber(int64(s.Count)))
	fmt.Printf("  Average Expense:  %s\n", expense.FormatMoney(s.Average, code))

	return nil
}
