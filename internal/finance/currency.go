package finance

import (
	"strings"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
)

// SelectCurrency returns the entry denominated in currency, matching the
// code case-insensitively. NaN and infinite amounts in the entry are zeroed.
func SelectCurrency(entries []model.CurrencyData, currency string) (model.CurrencyData, bool) {
	for _, entry := range entries {
		if strings.EqualFold(entry.Currency, currency) {
			return finiteEntry(entry), true
		}
	}
	return model.CurrencyData{}, false
}

func finiteEntry(entry model.CurrencyData) model.CurrencyData {
	entry.Price = zeroIfNotFinite(entry.Price)
	entry.MarketCap = zeroIfNotFinite(entry.MarketCap)
	entry.Volume = zeroIfNotFinite(entry.Volume)
	entry.PriceChange24h = zeroIfNotFinite(entry.PriceChange24h)
	entry.PriceChangePercentage24h = zeroIfNotFinite(entry.PriceChangePercentage24h)
	entry.AllTimeHigh = zeroIfNotFinite(entry.AllTimeHigh)
	entry.AllTimeLow = zeroIfNotFinite(entry.AllTimeLow)
	return entry
}

// PriceChange is the 24h change of a currency entry.
type PriceChange struct {
	Price  float64
	Change float64
}

// TwentyFourHourChange reports zero when the entry is missing or has a zero
// price: a zero price is treated as "no data", not as a real price.
func TwentyFourHourChange(entry model.CurrencyData, ok bool) PriceChange {
	if !ok || entry.Price == 0 {
		return PriceChange{}
	}
	return PriceChange{
		Price:  zeroIfNotFinite(entry.PriceChange24h),
		Change: zeroIfNotFinite(entry.PriceChangePercentage24h),
	}
}

// CurrentPrice is the price of the entry or 0 when there is none.
func CurrentPrice(entries []model.CurrencyData, currency string) float64 {
	entry, ok := SelectCurrency(entries, currency)
	if !ok {
		return 0
	}
	return zeroIfNotFinite(entry.Price)
}

func zeroIfNotFinite(f float64) float64 {
	if !isFinite(f) {
		return 0
	}
	return f
}
