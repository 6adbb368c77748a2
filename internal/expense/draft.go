package expense

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fixedTimeOfDay is appended to the form's date to produce a full timestamp.
// The API stores full timestamps; the form only collects a date.
const fixedTimeOfDay = "T10:00:00Z"

// draftDateLayout is the date format the add-expense form collects.
const draftDateLayout = "2006-01-02"

var (
	ErrMerchantRequired = errors.New("merchant is required")
	ErrAmountRequired   = errors.New("amount is required")
	ErrDateRequired     = errors.New("date is required")
)

// Draft is the transient, unsubmitted state of the add-expense form.
// All fields are strings because they mirror form inputs; Build performs
// the coercion to wire types.
type Draft struct {
	Merchant  string
	Amount    string
	Currency  string
	CreatedAt string
}

// DefaultDraft returns a fresh draft with today's date and the given
// currency (falling back to INR).
func DefaultDraft(currency string) Draft {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Draft{
		Currency:  currency,
		CreatedAt: time.Now().Format(draftDateLayout),
	}
}

// Build validates the draft and converts it into an Expense ready for
// submission: the amount is parsed to a float and the date is combined
// with the fixed time-of-day.
func (d Draft) Build(userID string) (Expense, error) {
	merchant := strings.TrimSpace(d.Merchant)
	if merchant == "" {
		return Expense{}, ErrMerchantRequired
	}

	amountStr := strings.TrimSpace(d.Amount)
	if amountStr == "" {
		return Expense{}, ErrAmountRequired
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return Expense{}, fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}
	if amount < 0 {
		return Expense{}, fmt.Errorf("amount must not be negative: %v", amount)
	}

	date := strings.TrimSpace(d.CreatedAt)
	if date == "" {
		return Expense{}, ErrDateRequired
	}
	if _, err := time.Parse(draftDateLayout, date); err != nil {
		return Expense{}, fmt.Errorf("parsing date %q: %w", date, err)
	}

	currency := strings.TrimSpace(d.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	return Expense{
		Merchant:  merchant,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: date + fixedTimeOfDay,
		UserID:    userID,
	}, nil
}

// ValidateAmount reports whether s parses as a non-negative number.
// Used by form-level validation before Build runs.
func ValidateAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrAmountRequired
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("amount must be a number")
	}
	if v < 0 {
		return errors.New("amount must not be negative")
	}
	return nil
}
