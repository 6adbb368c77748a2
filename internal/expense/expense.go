// Package expense holds the expense domain types and the aggregate and
// formatting logic the dashboard is built on.
package expense

// DefaultCurrency is used whenever a record or draft carries no currency code.
const DefaultCurrency = "INR"

// Expense is a single expense record as returned by the remote API.
type Expense struct {
	Merchant  string  `json:"merchant"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"created_at"`
	UserID    string  `json:"user_id,omitempty"`
}

// Summary holds the aggregate figures shown at the top of the dashboard.
type Summary struct {
	Total   float64
	Count   int
	Average float64
}

// Summarize computes totals over the current list. The average is guarded
// explicitly: an empty list yields 0, never NaN.
func Summarize(list []Expense) Summary {
	s := Summary{Count: len(list)}
	for _, e := range list {
		s.Total += e.Amount
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}
