package subgraph

import (
	"context"
	"fmt"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/dgraph-io/ristretto"
)

// maxCachedAccounts bounds the balance cache, every entry costs 1.
const maxCachedAccounts = 10_000

// cachedClient keeps account balances for a short time so a page issuing
// several user queries hits the subgraph once. Pie stats are not cached,
// they are only read by the market-data job.
type cachedClient struct {
	client SubgraphInterface
	cache  *ristretto.Cache
	ttl    time.Duration
}

func NewCachedClient(client SubgraphInterface, ttl time.Duration) (SubgraphInterface, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxCachedAccounts * 10,
		MaxCost:            maxCachedAccounts,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create balance cache: %w", err)
	}

	return &cachedClient{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}, nil
}

func (c *cachedClient) GetAccountBalances(
	ctx context.Context, chain types.SupportedChain, account string,
) ([]AccountBalance, error) {
	key := chain.String() + ":" + account
	if v, ok := c.cache.Get(key); ok {
		if balances, ok := v.([]AccountBalance); ok {
			return balances, nil
		}
	}

	balances, err := c.client.GetAccountBalances(ctx, chain, account)
	if err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(key, balances, 1, c.ttl)
	// sets are buffered, wait so the next lookup sees this one
	c.cache.Wait()

	return balances, nil
}

func (c *cachedClient) GetPieStats(ctx context.Context, chain types.SupportedChain, address string) (*PieStats, error) {
	return c.client.GetPieStats(ctx, chain, address)
}
