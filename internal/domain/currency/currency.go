// Package currency holds the single currency allow-list shared by companies
// and expenses.
package currency

import "strings"

var validCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD",
	"MXN", "SGD", "HKD", "NOK", "TRY", "RUB", "INR", "BRL", "ZAR",
}

const Default = "USD"

// Normalize uppercases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid reports whether code is on the allow-list, case-insensitively.
func IsValid(code string) bool {
	normalized := Normalize(code)
	for _, c := range validCodes {
		if c == normalized {
			return true
		}
	}
	return false
}

// Codes returns a copy of the allow-list.
func Codes() []string {
	out := make([]string, len(validCodes))
	copy(out, validCodes)
	return out
}

// List returns the allow-list joined for error messages.
func List() string {
	return strings.Join(validCodes, ", ")
}
