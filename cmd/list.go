package cmd

import (
	"errors"
	"fmt"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/cli"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/expense"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/session"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your expenses",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// requireUserID returns the persisted user id or an actionable error.
func requireUserID(store session.Store) (string, error) {
	uid, ok := session.UserID(store)
	if !ok {
		return "", errors.New("not signed in; run `expense-tracker login` first")
	}
	return uid, nil
}

func runList(cmd *cobra.Command, _ []string) error {
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

	const (
		merchantW = 28
		amountW   = 18
		dateW     = 14
	)

	fmt.Println(cli.PadRight("MERCHANT", merchantW) +
		cli.PadRight("AMOUNT", amountW) +
		cli.PadRight("DATE", dateW) +
		"CURRENCY")

	for _, e := range list {
		code := expense.CurrencyOrDefault(e.Currency)
		fmt.Println(cli.PadRight(expense.MerchantOrNA(e.Merchant), merchantW) +
			cli.PadRight(expense.FormatMoney(e.Amount, code), amountW) +
			cli.PadRight(expense.FormatDate(e.CreatedAt), dateW) +
			code)
	}

	return nil
}
