package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/client"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketsBody = `[
	{
		"id": "piedao-defi",
		"symbol": "defi++",
		"name": "PieDAO DEFI++",
		"current_price": 2.5,
		"market_cap": 1000000,
		"market_cap_rank": null,
		"total_volume": 1200.5,
		"price_change_24h": -0.1,
		"price_change_percentage_24h": -3.8,
		"ath": 6.1,
		"atl": 0.9,
		"circulating_supply": 400000,
		"total_supply": null
	}
]`

func testConfig(url string) *config.CoinGeckoConfig {
	return &config.CoinGeckoConfig{
		URL:           url,
		Timeout:       5 * time.Second,
		MaxRetryTimes: 3,
		RetryInterval: 10 * time.Millisecond,
	}
}

func TestGetMarkets(t *testing.T) {
	var apiKey, vsCurrency, ids string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, marketsEndpoint, r.URL.Path)
		apiKey = r.Header.Get(apiKeyHeader)
		vsCurrency = r.URL.Query().Get("vs_currency")
		ids = r.URL.Query().Get("ids")
		w.Write([]byte(marketsBody))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = "secret"
	c := NewClient(cfg)

	markets, err := c.GetMarkets(context.Background(), []string{"piedao-defi", "unknown"}, types.CurrencyEUR)
	require.NoError(t, err)
	require.Len(t, markets, 1)

	assert.Equal(t, "secret", apiKey)
	assert.Equal(t, "eur", vsCurrency)
	assert.Equal(t, "piedao-defi,unknown", ids)

	m := markets[0]
	assert.Equal(t, "piedao-defi", m.ID)
	assert.Equal(t, types.CurrencyEUR, m.Currency)
	assert.Equal(t, 2.5, m.CurrentPrice)
	assert.Equal(t, int64(0), m.MarketCapRank)
	assert.Equal(t, 0.0, m.TotalSupply)
	assert.Equal(t, 400000.0, m.CirculatingSupply)

	data := m.CurrencyData()
	assert.Equal(t, "eur", data.Currency)
	assert.Equal(t, 1200.5, data.Volume)
	assert.Equal(t, -3.8, data.PriceChangePercentage24h)
}

func TestGetMarkets_NoIDs(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1"))

	markets, err := c.GetMarkets(context.Background(), nil, types.CurrencyUSD)
	require.NoError(t, err)
	assert.Empty(t, markets)
}

func TestGetMarkets_Batches(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.LessOrEqual(t, len(strings.Split(r.URL.Query().Get("ids"), ",")), maxIDsPerRequest)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ids := make([]string, maxIDsPerRequest+1)
	for i := range ids {
		ids[i] = "coin"
	}

	_, err := NewClient(testConfig(server.URL)).GetMarkets(context.Background(), ids, types.CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
}

func TestGetMarkets_RetriesRateLimit(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(marketsBody))
	}))
	defer server.Close()

	markets, err := NewClient(testConfig(server.URL)).GetMarkets(context.Background(), []string{"piedao-defi"}, types.CurrencyUSD)
	require.NoError(t, err)
	assert.Len(t, markets, 1)
	assert.Equal(t, int32(3), requests.Load())
}

func TestGetMarkets_ExceedsMaxRetries(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRetryTimes = 2

	_, err := NewClient(cfg).GetMarkets(context.Background(), []string{"piedao-defi"}, types.CurrencyUSD)
	require.Error(t, err)
	assert.True(t, client.IsRateLimited(err))
	assert.Contains(t, err.Error(), "failed to get usd markets")
	assert.Equal(t, int32(2), requests.Load())
}

func TestGetMarkets_ServerErrorIsNotRetried(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(testConfig(server.URL)).GetMarkets(context.Background(), []string{"piedao-defi"}, types.CurrencyUSD)
	require.Error(t, err)
	assert.Equal(t, int32(1), requests.Load())
}

func TestNewClient_WithNilConfig(t *testing.T) {
	c := NewClient(nil)

	assert.NotNil(t, c.cfg)
	assert.Equal(t, uint(3), c.cfg.MaxRetryTimes)
	assert.Equal(t, 15*time.Second, c.GetDefaultRequestTimeout())
	assert.Equal(t, "https://api.coingecko.com/api/v3", c.GetBaseURL())
}
