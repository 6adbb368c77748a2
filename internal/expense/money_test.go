package expense

import (
	"strings"
	"testing"
	"time"
)

func TestFormatMoney_ZeroAmounts(t *testing.T) {
	// Must render something sensible and never panic, with or without a code.
	for _, code := range []string{"INR", ""} {
		got := FormatMoney(0, code)
		if got == "" {
			t.Errorf("FormatMoney(0, %q) = empty string", code)
		}
		if !strings.Contains(got, "0") {
			t.Errorf("FormatMoney(0, %q) = %q, want a zero amount", code, got)
		}
	}
}

func TestFormatMoney_UnknownCodeFallsBackToINR(t *testing.T) {
	got := FormatMoney(10, "???")
	want := FormatMoney(10, "INR")
	if got != want {
		t.Errorf("FormatMoney(10, ???) = %q, want %q", got, want)
	}
}

func TestFormatMoney_DistinctCurrencies(t *testing.T) {
	inr := FormatMoney(100, "INR")
	usd := FormatMoney(100, "USD")
	if inr == usd {
		t.Errorf("INR and USD render identically: %q", inr)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-15T10:00:00Z"); got != "Jan 15, 2024" {
		t.Errorf("FormatDate = %q, want Jan 15, 2024", got)
	}
	// Bare dates (pre-timestamp drafts) are accepted too.
	if got := FormatDate("2024-03-02"); got != "Mar 2, 2024" {
		t.Errorf("FormatDate = %q, want Mar 2, 2024", got)
	}
}

func TestFormatDate_MissingFallsBackToToday(t *testing.T) {
	want := time.Now().Format("Jan 2, 2006")
	if got := FormatDate(""); got != want {
		t.Errorf("FormatDate(\"\") = %q, want %q", got, want)
	}
	if got := FormatDate("garbage"); got != want {
		t.Errorf("FormatDate(garbage) = %q, want %q", got, want)
	}
}

func TestRowFallbacks(t *testing.T) {
	if got := MerchantOrNA(""); got != "N/A" {
		t.Errorf("MerchantOrNA = %q, want N/A", got)
	}
	if got := MerchantOrNA("Cafe"); got != "Cafe" {
		t.Errorf("MerchantOrNA = %q, want Cafe", got)
	}
	if got := CurrencyOrDefault(""); got != "INR" {
		t.Errorf("CurrencyOrDefault = %q, want INR", got)
	}
	if got := CurrencyOrDefault("EUR"); got != "EUR" {
		t.Errorf("CurrencyOrDefault = %q, want EUR", got)
	}
}
