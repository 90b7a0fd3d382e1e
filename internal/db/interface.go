package db

import (
	"context"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error

	// SaveNewToken inserts a token, pool or vault. Returns DuplicateKeyError
	// if (chain, address) already exists.
	SaveNewToken(ctx context.Context, token *model.TokenDocument) error
	// FindTokens returns tokens of the given kind ordered and limited by
	// opts. No match returns an empty slice.
	FindTokens(ctx context.Context, kind types.TokenKind, opts filters.Options) ([]*model.TokenDocument, error)
	// FindTokenByID returns NotFoundError when the entity does not exist.
	FindTokenByID(ctx context.Context, kind types.TokenKind, id types.EntityID) (*model.TokenDocument, error)
	// FindTokensByIDs returns the subset of ids that exist, any kind.
	FindTokensByIDs(ctx context.Context, ids []types.EntityID) ([]*model.TokenDocument, error)
	FindTokensBySymbols(ctx context.Context, symbols []string) ([]*model.TokenDocument, error)
	FindTokensWithCoinGeckoID(ctx context.Context) ([]*model.TokenDocument, error)
	// AppendMarketData pushes a snapshot. Returns NotFoundError for unknown
	// entities and DuplicateKeyError if a snapshot with the same timestamp exists.
	AppendMarketData(ctx context.Context, id types.EntityID, snapshot *model.MarketDataSnapshot) error

	SaveNewYieldVaultStrategy(ctx context.Context, strategy *model.YieldVaultStrategyDocument) error
	FindYieldVaultStrategies(ctx context.Context) ([]*model.YieldVaultStrategyDocument, error)
	FindStrategiesByVaults(ctx context.Context, vaults []types.EntityID) ([]*model.YieldVaultStrategyDocument, error)
	// AppendYieldData pushes a yield snapshot, same errors as AppendMarketData.
	AppendYieldData(ctx context.Context, id types.EntityID, snapshot *model.YieldSnapshot) error
}
