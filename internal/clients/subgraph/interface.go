package subgraph

import (
	"context"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

//go:generate mockery --name=SubgraphInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_subgraph_client.go
type SubgraphInterface interface {
	// GetAccountBalances returns the raw (not decimal adjusted) balances an
	// account holds of indexed pies and vaults. Unknown accounts have none.
	GetAccountBalances(ctx context.Context, chain types.SupportedChain, account string) ([]AccountBalance, error)
	// GetPieStats returns holder count and raw total supply of a pie.
	GetPieStats(ctx context.Context, chain types.SupportedChain, address string) (*PieStats, error)
}
