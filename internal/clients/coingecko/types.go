package coingecko

import (
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

// CoinMarket is the normalised market entry of one coin in one currency.
// Values the upstream reports as null are zero.
type CoinMarket struct {
	ID                       string
	Symbol                   string
	Name                     string
	Currency                 types.Currency
	CurrentPrice             float64
	MarketCap                float64
	MarketCapRank            int64
	TotalVolume              float64
	PriceChange24h           float64
	PriceChangePercentage24h float64
	AllTimeHigh              float64
	AllTimeLow               float64
	CirculatingSupply        float64
	TotalSupply              float64
}

func (m CoinMarket) CurrencyData() model.CurrencyData {
	return model.CurrencyData{
		Currency:                 m.Currency.String(),
		Price:                    m.CurrentPrice,
		MarketCap:                m.MarketCap,
		Volume:                   m.TotalVolume,
		PriceChange24h:           m.PriceChange24h,
		PriceChangePercentage24h: m.PriceChangePercentage24h,
		AllTimeHigh:              m.AllTimeHigh,
		AllTimeLow:               m.AllTimeLow,
	}
}

// marketResponse is one element of /coins/markets.
type marketResponse struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int64   `json:"market_cap_rank"`
	TotalVolume              *float64 `json:"total_volume"`
	PriceChange24h           *float64 `json:"price_change_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	ATH                      *float64 `json:"ath"`
	ATL                      *float64 `json:"atl"`
	CirculatingSupply        *float64 `json:"circulating_supply"`
	TotalSupply              *float64 `json:"total_supply"`
}

func (r marketResponse) normalise(currency types.Currency) CoinMarket {
	return CoinMarket{
		ID:                       r.ID,
		Symbol:                   r.Symbol,
		Name:                     r.Name,
		Currency:                 currency,
		CurrentPrice:             deref(r.CurrentPrice),
		MarketCap:                deref(r.MarketCap),
		MarketCapRank:            deref(r.MarketCapRank),
		TotalVolume:              deref(r.TotalVolume),
		PriceChange24h:           deref(r.PriceChange24h),
		PriceChangePercentage24h: deref(r.PriceChangePercentage24h),
		AllTimeHigh:              deref(r.ATH),
		AllTimeLow:               deref(r.ATL),
		CirculatingSupply:        deref(r.CirculatingSupply),
		TotalSupply:              deref(r.TotalSupply),
	}
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
