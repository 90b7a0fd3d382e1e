package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBalance converts a raw on-chain integer amount to a decimal amount
// with the token decimals applied, e.g. ("1500000000000000000", 18) -> 1.5.
func FormatBalance(raw string, decimals int32) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	if decimals < 0 {
		return decimal.Zero, fmt.Errorf("invalid token decimals %d", decimals)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid raw balance %q: %w", raw, err)
	}
	if !amount.Equal(amount.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("raw balance %q is not an integer", raw)
	}

	return amount.Shift(-decimals), nil
}

// Value prices a formatted balance, returning a float for the graph layer.
// A NaN or infinite price values the balance at 0.
func Value(balance decimal.Decimal, price float64) float64 {
	if !isFinite(price) {
		return 0
	}
	v, _ := balance.Mul(decimal.NewFromFloat(price)).Float64()
	return v
}
