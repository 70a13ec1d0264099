// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// currencyInfo describes how a currency is displayed.
type currencyInfo struct {
	Symbol   string
	Decimals int
}

// currencies maps ISO 4217 codes to display info. Unknown codes fall
// back to a "CODE amount" prefix with two decimals.
var currencies = map[string]currencyInfo{
	"USD": {"$", 2},
	"EUR": {"€", 2},
	"GBP": {"£", 2},
	"JPY": {"¥", 0},
	"KRW": {"₩", 0},
	"INR": {"₹", 2},
	"BRL": {"R$", 2},
	"CAD": {"CA$", 2},
	"AUD": {"A$", 2},
	"CHF": {"CHF ", 2},
	"SEK": {"kr ", 2},
	"NOK": {"kr ", 2},
	"PLN": {"zł ", 2},
	"TRY": {"₺", 2},
}

// SupportedCurrencies lists the codes with first-class display support,
// in the order they are offered during setup.
var SupportedCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "KRW", "INR", "BRL",
	"CAD", "AUD", "CHF", "SEK", "NOK", "PLN", "TRY",
}

// KnownCurrency reports whether the code has first-class display support.
func KnownCurrency(code string) bool {
	_, ok := currencies[strings.ToUpper(code)]
	return ok
}

// FormatMoney formats a monetary amount in the given currency.
// e.g., (1234.5, "USD") -> "$1,234.50", (1250, "JPY") -> "¥1,250"
func FormatMoney(amount float64, code string) string {
	info, ok := currencies[strings.ToUpper(code)]
	if !ok {
		info = currencyInfo{Symbol: strings.ToUpper(code) + " ", Decimals: 2}
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', info.Decimals, 64)
	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	return sign + info.Symbol + groupThousands(intPart) + fracPart
}

// FormatRate formats an hourly rate, e.g. "$12.50/h".
func FormatRate(rate float64, code string) string {
	return FormatMoney(rate, code) + "/h"
}

// FormatHours formats an hour quantity, trimming a trailing ".0".
// e.g., 10 -> "10h", 2.5 -> "2.5h"
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	return s + "h"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// FormatPercent formats a 0-100 percentage value.
// e.g., 19.5 -> "19.5%"
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		b.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Truncate shortens a string to max runes, appending "…" when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return fmt.Sprintf("%s…", string(runes[:max-1]))
}
