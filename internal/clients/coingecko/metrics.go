package coingecko

import (
	"context"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

type clientWithMetrics struct {
	client CoinGeckoInterface
}

func NewClientWithMetrics(client CoinGeckoInterface) CoinGeckoInterface {
	return &clientWithMetrics{client: client}
}

func (c *clientWithMetrics) GetMarkets(ctx context.Context, ids []string, currency types.Currency) ([]CoinMarket, error) {
	startTime := time.Now()
	markets, err := c.client.GetMarkets(ctx, ids, currency)
	metrics.RecordAdapterLatency(time.Since(startTime), "coingecko", "GetMarkets", err != nil)
	return markets, err
}
