package filters

import (
	"sort"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/finance"
)

// MarketDataSortFields lists the sortable snapshot fields. Values are
// unused, the map doubles as the allow-list passed to Validate.
var MarketDataSortFields = map[string]string{
	"timestamp":         "timestamp",
	"totalSupply":       "total_supply",
	"circulatingSupply": "circulating_supply",
	"holders":           "holders",
	"marketCapRank":     "market_cap_rank",
	"currentPrice":      "price",
	"marketCap":         "market_cap",
	"totalVolume":       "volume",
}

type snapshotKey func(s model.MarketDataSnapshot, currency string) float64

var snapshotKeys = map[string]snapshotKey{
	"timestamp": func(s model.MarketDataSnapshot, _ string) float64 {
		return float64(s.Timestamp.UnixNano())
	},
	"totalSupply": func(s model.MarketDataSnapshot, _ string) float64 {
		return s.TotalSupply
	},
	"circulatingSupply": func(s model.MarketDataSnapshot, _ string) float64 {
		return s.CirculatingSupply
	},
	"holders": func(s model.MarketDataSnapshot, _ string) float64 {
		return float64(s.Holders)
	},
	"marketCapRank": func(s model.MarketDataSnapshot, _ string) float64 {
		return float64(s.MarketCapRank)
	},
	"currentPrice": func(s model.MarketDataSnapshot, currency string) float64 {
		entry, _ := finance.SelectCurrency(s.CurrencyData, currency)
		return entry.Price
	},
	"marketCap": func(s model.MarketDataSnapshot, currency string) float64 {
		entry, _ := finance.SelectCurrency(s.CurrencyData, currency)
		return entry.MarketCap
	},
	"totalVolume": func(s model.MarketDataSnapshot, currency string) float64 {
		entry, _ := finance.SelectCurrency(s.CurrencyData, currency)
		return entry.Volume
	},
}

// ApplyToMarketData orders and limits snapshots in memory. Currency
// dependent fields are read in the requested currency. The input slice is
// not modified.
func ApplyToMarketData(snapshots []model.MarketDataSnapshot, o Options, currency string) []model.MarketDataSnapshot {
	out := make([]model.MarketDataSnapshot, len(snapshots))
	copy(out, snapshots)

	if len(o.OrderBy) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j], o.OrderBy, currency)
		})
	}

	if o.Limit > 0 && int64(len(out)) > o.Limit {
		out = out[:o.Limit]
	}

	return out
}

func less(a, b model.MarketDataSnapshot, orderBy []SortField, currency string) bool {
	for _, f := range orderBy {
		key, ok := snapshotKeys[f.Field]
		if !ok {
			continue
		}
		va, vb := key(a, currency), key(b, currency)
		if va == vb {
			continue
		}
		if f.Direction == Desc {
			return va > vb
		}
		return va < vb
	}
	return false
}
