package types

import (
	"fmt"
	"strings"
)

type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
	CurrencyETH Currency = "eth"
	CurrencyBTC Currency = "btc"
)

func (c Currency) String() string {
	return string(c)
}

// SupportedCurrencies is the set of currencies market data is synced in.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyETH, CurrencyBTC}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToLower(strings.TrimSpace(s)))
	for _, supported := range SupportedCurrencies {
		if c == supported {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency: %q", s)
}
