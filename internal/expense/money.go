package expense

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts render with the en-IN locale; the printer is shared since
// message.NewPrinter is relatively expensive.
var moneyPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatMoney renders an amount with its currency symbol. An absent or
// unknown code falls back to INR. Never panics, including on zero amounts.
func FormatMoney(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO(DefaultCurrency)
	}
	return moneyPrinter.Sprint(currency.Symbol(unit.Amount(amount)))
}

// displayDateLayout renders dates in the "Jan 15, 2024" style.
const displayDateLayout = "Jan 2, 2006"

// FormatDate renders an API timestamp for display. A missing or unparseable
// value falls back to the current date; that is a display compromise, the
// stored record is untouched.
func FormatDate(ts string) string {
	for _, layout := range []string{time.RFC3339, draftDateLayout} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return time.Now().Format(displayDateLayout)
}

// CurrencyOrDefault returns the code itself or INR when absent.
func CurrencyOrDefault(code string) string {
	if code == "" {
		return DefaultCurrency
	}
	return code
}

// MerchantOrNA returns the merchant name or "N/A" when absent.
func MerchantOrNA(merchant string) string {
	if merchant == "" {
		return "N/A"
	}
	return merchant
}
