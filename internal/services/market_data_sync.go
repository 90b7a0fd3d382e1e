package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/coingecko"
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/finance"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/Alexintosh/piedao-monorepo/internal/utils/poller"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const marketDataSyncJob = "market_data_sync"

// referenceCurrency provides the currency independent fields (supply, rank)
// of a snapshot.
const referenceCurrency = types.CurrencyUSD

func (s *Service) StartMarketDataPoller(ctx context.Context) {
	marketDataPoller := poller.NewPoller(
		marketDataSyncJob,
		s.cfg.Poller.MarketDataPollingInterval,
		metrics.RecordPollerDuration(marketDataSyncJob, func(ctx context.Context) error {
			_, err := s.syncMarketData(ctx)
			return err
		}),
	)
	go marketDataPoller.Start(ctx)
}

// coinMarkets is the market data of one coin keyed by currency.
type coinMarkets map[types.Currency]coingecko.CoinMarket

// syncMarketData appends a market data snapshot to every entity that has a
// coingecko id.
func (s *Service) syncMarketData(ctx context.Context) (RunSummary, error) {
	log := log.Ctx(ctx)

	tokens, err := s.db.FindTokensWithCoinGeckoID(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("failed to load tokens: %w", err)
	}
	if len(tokens) == 0 {
		log.Debug().Msg("No tokens with coingecko id - skipping market data sync")
		return RunSummary{}, nil
	}

	markets, err := s.fetchMarkets(ctx, tokens)
	if err != nil {
		return RunSummary{}, err
	}

	ts := s.snapshotTime()
	p := pool.NewWithResults[error]()
	for _, token := range tokens {
		p.Go(func() error {
			return s.snapshotMarketData(ctx, token, markets[token.CoinGeckoID], ts)
		})
	}

	summary, err := summarize(p.Wait())
	log.Info().
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Time("timestamp", ts).
		Msg("Market data sync run finished")

	return summary, err
}

// fetchMarkets issues one request per supported currency. A failing
// currency is reported and skipped, the run fails only if all of them fail.
func (s *Service) fetchMarkets(ctx context.Context, tokens []*model.TokenDocument) (map[string]coinMarkets, error) {
	seen := make(map[string]struct{}, len(tokens))
	ids := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token.CoinGeckoID]; ok {
			continue
		}
		seen[token.CoinGeckoID] = struct{}{}
		ids = append(ids, token.CoinGeckoID)
	}

	result := make(map[string]coinMarkets, len(ids))
	var errs []error
	for _, currency := range types.SupportedCurrencies {
		markets, err := s.coingecko.GetMarkets(ctx, ids, currency)
		if err != nil {
			errs = append(errs, err)
			s.reporter.CaptureException(ctx, err, map[string]string{
				reporter.ComponentTag: marketDataSyncJob,
				"currency":            currency.String(),
			})
			continue
		}
		for _, m := range markets {
			if result[m.ID] == nil {
				result[m.ID] = coinMarkets{}
			}
			result[m.ID][currency] = m
		}
	}

	if len(errs) == len(types.SupportedCurrencies) {
		return nil, fmt.Errorf("failed to fetch market data in any currency: %w", errors.Join(errs...))
	}

	return result, nil
}

func (s *Service) snapshotMarketData(
	ctx context.Context, token *model.TokenDocument, markets coinMarkets, ts time.Time,
) error {
	tags := map[string]string{
		reporter.ComponentTag: marketDataSyncJob,
		"token":               token.EntityID().String(),
	}
	fail := func(err error) error {
		err = fmt.Errorf("%s %s: %w", token.Kind, token.EntityID(), err)
		metrics.RecordSnapshot(marketDataSyncJob, true)
		s.reporter.CaptureException(ctx, err, tags)
		return err
	}

	if len(markets) == 0 {
		return fail(fmt.Errorf("no market data for coingecko id %q", token.CoinGeckoID))
	}

	snapshot := buildSnapshot(token, markets, ts)

	if token.Kind.IsPie() {
		if err := s.applyPieStats(ctx, token, snapshot); err != nil {
			// prices are still worth storing, supply and holders carry over
			s.reporter.CaptureException(ctx, err, tags)
		}
	}

	if err := s.db.AppendMarketData(ctx, token.EntityID(), snapshot); err != nil {
		return fail(fmt.Errorf("failed to append market data: %w", err))
	}
	metrics.RecordSnapshot(marketDataSyncJob, false)

	return nil
}

func buildSnapshot(token *model.TokenDocument, markets coinMarkets, ts time.Time) *model.MarketDataSnapshot {
	snapshot := &model.MarketDataSnapshot{
		Timestamp:    ts,
		CurrencyData: make([]model.CurrencyData, 0, len(markets)),
	}

	// fees and holders are not provided by coingecko
	if latest, ok := token.LatestMarketData(); ok {
		snapshot.SwapFee = latest.SwapFee
		snapshot.ManagementFee = latest.ManagementFee
		snapshot.Holders = latest.Holders
	}

	for _, currency := range types.SupportedCurrencies {
		m, ok := markets[currency]
		if !ok {
			continue
		}
		snapshot.CurrencyData = append(snapshot.CurrencyData, m.CurrencyData())
	}

	reference, ok := markets[referenceCurrency]
	if !ok {
		for _, currency := range types.SupportedCurrencies {
			if reference, ok = markets[currency]; ok {
				break
			}
		}
	}
	snapshot.CirculatingSupply = reference.CirculatingSupply
	snapshot.TotalSupply = reference.TotalSupply
	snapshot.MarketCapRank = reference.MarketCapRank

	return snapshot
}

func (s *Service) applyPieStats(ctx context.Context, token *model.TokenDocument, snapshot *model.MarketDataSnapshot) error {
	stats, err := s.subgraph.GetPieStats(ctx, types.SupportedChain(token.Chain), token.Address)
	if err != nil {
		return fmt.Errorf("failed to get pie stats: %w", err)
	}

	supply, err := finance.FormatBalance(stats.TotalSupply, token.Decimals)
	if err != nil {
		return fmt.Errorf("invalid pie total supply: %w", err)
	}

	snapshot.Holders = stats.Holders
	snapshot.TotalSupply = supply.InexactFloat64()
	return nil
}
