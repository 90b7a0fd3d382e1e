package coingecko

import (
	"context"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

//go:generate mockery --name=CoinGeckoInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_coingecko_client.go
type CoinGeckoInterface interface {
	// GetMarkets returns market data of the given coins denominated in
	// currency. Unknown ids are silently skipped by the upstream.
	GetMarkets(ctx context.Context, ids []string, currency types.Currency) ([]CoinMarket, error)
}
