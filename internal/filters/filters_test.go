package filters

import (
	"testing"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func snapshot(ts int64, holders int64, usdPrice float64) model.MarketDataSnapshot {
	return model.MarketDataSnapshot{
		Timestamp: time.Unix(ts, 0).UTC(),
		Holders:   holders,
		CurrencyData: []model.CurrencyData{
			{Currency: "usd", Price: usdPrice},
		},
	}
}

func timestamps(snapshots []model.MarketDataSnapshot) []int64 {
	out := make([]int64, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, s.Timestamp.Unix())
	}
	return out
}

func TestOptions_Validate(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		require.NoError(t, DefaultTokenFilters().Validate())
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		f := TokenFilters{Entity: Options{OrderBy: []SortField{{Field: "$where", Direction: Asc}}}}
		err := f.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not sortable")
	})

	t.Run("market data field is not an entity field", func(t *testing.T) {
		f := TokenFilters{Entity: Options{OrderBy: []SortField{{Field: "holders", Direction: Asc}}}}
		require.Error(t, f.Validate())

		f = TokenFilters{MarketData: Options{OrderBy: []SortField{{Field: "holders", Direction: Asc}}}}
		require.NoError(t, f.Validate())
	})

	t.Run("negative limit", func(t *testing.T) {
		f := TokenFilters{MarketData: Options{Limit: -1}}
		require.Error(t, f.Validate())
	})

	t.Run("duplicate field", func(t *testing.T) {
		o := Options{OrderBy: []SortField{{Field: "name", Direction: Asc}, {Field: "name", Direction: Desc}}}
		require.Error(t, o.Validate(EntitySortFields))
	})

	t.Run("invalid direction", func(t *testing.T) {
		o := Options{OrderBy: []SortField{{Field: "name", Direction: "up"}}}
		require.Error(t, o.Validate(EntitySortFields))
	})
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	_, err = ParseDirection("sideways")
	require.Error(t, err)
}

func TestMongoSort(t *testing.T) {
	t.Run("no ordering falls back to insertion order", func(t *testing.T) {
		assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, MongoSort(Options{}))
	})

	t.Run("keeps caller sequence", func(t *testing.T) {
		sort := MongoSort(Options{OrderBy: []SortField{
			{Field: "symbol", Direction: Desc},
			{Field: "inceptionDate", Direction: Asc},
		}})
		assert.Equal(t, bson.D{
			{Key: "symbol", Value: -1},
			{Key: "inception_date", Value: 1},
			{Key: "_id", Value: 1},
		}, sort)
	})
}

func TestApplyToMarketData(t *testing.T) {
	snapshots := []model.MarketDataSnapshot{
		snapshot(1, 10, 1.0),
		snapshot(2, 30, 3.0),
		snapshot(3, 10, 2.0),
		snapshot(4, 30, 0.5),
	}

	t.Run("no options keeps insertion order and count", func(t *testing.T) {
		out := ApplyToMarketData(snapshots, Options{}, "usd")
		assert.Equal(t, []int64{1, 2, 3, 4}, timestamps(out))
	})

	t.Run("primary key desc, ties broken by secondary asc", func(t *testing.T) {
		out := ApplyToMarketData(snapshots, Options{OrderBy: []SortField{
			{Field: "holders", Direction: Desc},
			{Field: "currentPrice", Direction: Asc},
		}}, "usd")
		assert.Equal(t, []int64{4, 2, 1, 3}, timestamps(out))
	})

	t.Run("limit applies after ordering", func(t *testing.T) {
		out := ApplyToMarketData(snapshots, Options{
			Limit:   2,
			OrderBy: []SortField{{Field: "timestamp", Direction: Desc}},
		}, "usd")
		assert.Equal(t, []int64{4, 3}, timestamps(out))
	})

	t.Run("limit larger than result", func(t *testing.T) {
		out := ApplyToMarketData(snapshots, Options{Limit: 10}, "usd")
		assert.Len(t, out, 4)
	})

	t.Run("input is not modified", func(t *testing.T) {
		ApplyToMarketData(snapshots, Options{OrderBy: []SortField{{Field: "timestamp", Direction: Desc}}}, "usd")
		assert.Equal(t, []int64{1, 2, 3, 4}, timestamps(snapshots))
	})

	t.Run("missing currency sorts as zero", func(t *testing.T) {
		out := ApplyToMarketData(snapshots, Options{OrderBy: []SortField{{Field: "currentPrice", Direction: Desc}}}, "eur")
		assert.Equal(t, []int64{1, 2, 3, 4}, timestamps(out))
	})
}
