// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import "github.com/Rhymond/go-money"

// ExpenseCurrency is the fixed currency code every submitted expense uses.
const ExpenseCurrency = "INR"

// IsSupported returns true if the code is a known ISO 4217 currency code.
func IsSupported(code string) bool {
	return money.GetCurrency(code) != nil
}
