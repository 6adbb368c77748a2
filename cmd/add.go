package cmd

import (
	"fmt"
	"time"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/expense"

	"github.com/spf13/cobra"
)

var (
	flagMerchant string
	flagAmount   string
	flagDate     string
	flagCurrency string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new expense",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagMerchant, "merchant", "m", "", "Merchant name (required)")
	addCmd.Flags().StringVarP(&flagAmount, "amount", "a", "", "Amount, e.g. 12.50 (required)")
	addCmd.Flags().StringVarP(&flagDate, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&flagCurrency, "currency", "c", "", "Currency code (default from config)")
	_ = addCmd.MarkFlagRequired("merchant")
	_ = addCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	store := openSession()
	defer closeSession(store)

	userID, err := requireUserID(store)
	if err != nil {
		return err
	}

	date := flagDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	currency := flagCurrency
	if currency == "" {
		currency = cfg.General.DefaultCurrency
	}

	draft := expense.Draft{
		Merchant:  flagMerchant,
		Amount:    flagAmount,
		Currency:  currency,
		CreatedAt: date,
	}
	e, err := draft.Build(userID)
	if err != nil {
		return err
	}

	if err := api.NewClient(cfg.API.BaseURL).AddExpense(cmd.Context(), e); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	fmt.Printf("Added %s at %s\n", expense.FormatMoney(e.Amount, e.Currency), e.Merchant)
	return nil
}
