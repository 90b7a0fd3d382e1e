package subgraph

import (
	"context"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

type clientWithMetrics struct {
	client SubgraphInterface
}

func NewClientWithMetrics(client SubgraphInterface) SubgraphInterface {
	return &clientWithMetrics{client: client}
}

func (c *clientWithMetrics) GetAccountBalances(
	ctx context.Context, chain types.SupportedChain, account string,
) ([]AccountBalance, error) {
	return runWithMetrics("GetAccountBalances", func() ([]AccountBalance, error) {
		return c.client.GetAccountBalances(ctx, chain, account)
	})
}

func (c *clientWithMetrics) GetPieStats(ctx context.Context, chain types.SupportedChain, address string) (*PieStats, error) {
	return runWithMetrics("GetPieStats", func() (*PieStats, error) {
		return c.client.GetPieStats(ctx, chain, address)
	})
}

func runWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	metrics.RecordAdapterLatency(time.Since(startTime), "subgraph", method, err != nil)
	return v, err
}
