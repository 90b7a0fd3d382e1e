package db

import (
	"context"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveNewToken(ctx context.Context, token *model.TokenDocument) error {
	return d.run("SaveNewToken", func() error {
		return d.db.SaveNewToken(ctx, token)
	})
}

func (d *DbWithMetrics) FindTokens(ctx context.Context, kind types.TokenKind, opts filters.Options) (result []*model.TokenDocument, err error) {
	//nolint:errcheck
	d.run("FindTokens", func() error {
		result, err = d.db.FindTokens(ctx, kind, opts)
		return err
	})
	return
}

func (d *DbWithMetrics) FindTokenByID(ctx context.Context, kind types.TokenKind, id types.EntityID) (result *model.TokenDocument, err error) {
	//nolint:errcheck
	d.run("FindTokenByID", func() error {
		result, err = d.db.FindTokenByID(ctx, kind, id)
		return err
	})
	return
}

func (d *DbWithMetrics) FindTokensByIDs(ctx context.Context, ids []types.EntityID) (result []*model.TokenDocument, err error) {
	//nolint:errcheck
	d.run("FindTokensByIDs", func() error {
		result, err = d.db.FindTokensByIDs(ctx, ids)
		return err
	})
	return
}

func (d *DbWithMetrics) FindTokensBySymbols(ctx context.Context, symbols []string) (result []*model.TokenDocument, err error) {
	//nolint:errcheck
	d.run("FindTokensBySymbols", func() error {
		result, err = d.db.FindTokensBySymbols(ctx, symbols)
		return err
	})
	return
}

func (d *DbWithMetrics) FindTokensWithCoinGeckoID(ctx context.Context) (result []*model.TokenDocument, err error) {
	//nolint:errcheck
	d.run("FindTokensWithCoinGeckoID", func() error {
		result, err = d.db.FindTokensWithCoinGeckoID(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) AppendMarketData(ctx context.Context, id types.EntityID, snapshot *model.MarketDataSnapshot) error {
	return d.run("AppendMarketData", func() error {
		return d.db.AppendMarketData(ctx, id, snapshot)
	})
}

func (d *DbWithMetrics) SaveNewYieldVaultStrategy(ctx context.Context, strategy *model.YieldVaultStrategyDocument) error {
	return d.run("SaveNewYieldVaultStrategy", func() error {
		return d.db.SaveNewYieldVaultStrategy(ctx, strategy)
	})
}

func (d *DbWithMetrics) FindYieldVaultStrategies(ctx context.Context) (result []*model.YieldVaultStrategyDocument, err error) {
	//nolint:errcheck
	d.run("FindYieldVaultStrategies", func() error {
		result, err = d.db.FindYieldVaultStrategies(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) FindStrategiesByVaults(ctx context.Context, vaults []types.EntityID) (result []*model.YieldVaultStrategyDocument, err error) {
	//nolint:errcheck
	d.run("FindStrategiesByVaults", func() error {
		result, err = d.db.FindStrategiesByVaults(ctx, vaults)
		return err
	})
	return
}

func (d *DbWithMetrics) AppendYieldData(ctx context.Context, id types.EntityID, snapshot *model.YieldSnapshot) error {
	return d.run("AppendYieldData", func() error {
		return d.db.AppendYieldData(ctx, id, snapshot)
	})
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
