package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/coingecko"
	"github.com/Alexintosh/piedao-monorepo/internal/clients/subgraph"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/Alexintosh/piedao-monorepo/testutil"
	"github.com/Alexintosh/piedao-monorepo/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type marketDataFixture struct {
	db  *mocks.DbInterface
	cg  *mocks.CoinGeckoInterface
	sg  *mocks.SubgraphInterface
	rep *mocks.Reporter
	srv *Service
}

func newMarketDataFixture(t *testing.T) *marketDataFixture {
	f := &marketDataFixture{
		db:  mocks.NewDbInterface(t),
		cg:  mocks.NewCoinGeckoInterface(t),
		sg:  mocks.NewSubgraphInterface(t),
		rep: mocks.NewReporter(t),
	}
	f.srv = NewService(&config.Config{}, f.db, f.cg, f.sg, f.rep, nil)
	f.srv.now = func() time.Time { return fixedNow }
	return f
}

func market(id string, currency types.Currency, price float64) coingecko.CoinMarket {
	return coingecko.CoinMarket{
		ID:                id,
		Currency:          currency,
		CurrentPrice:      price,
		MarketCap:         price * 1000,
		MarketCapRank:     250,
		TotalVolume:       10,
		CirculatingSupply: 1000,
		TotalSupply:       2000,
	}
}

// expectMarkets answers every currency with the given usd price, scaled for
// the other currencies.
func (f *marketDataFixture) expectMarkets(ids []string, prices map[string]float64) {
	for i, currency := range types.SupportedCurrencies {
		var markets []coingecko.CoinMarket
		for id, price := range prices {
			markets = append(markets, market(id, currency, price*float64(i+1)))
		}
		f.cg.On("GetMarkets", mock.Anything, ids, currency).Return(markets, nil).Once()
	}
}

func TestSyncMarketData(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a snapshot with every currency", func(t *testing.T) {
		f := newMarketDataFixture(t)

		token := testutil.RandomToken(t, types.KindToken)
		token.MarketData[0].SwapFee = 0.01
		f.db.On("FindTokensWithCoinGeckoID", mock.Anything).Return([]*model.TokenDocument{token}, nil).Once()
		f.expectMarkets([]string{token.CoinGeckoID}, map[string]float64{token.CoinGeckoID: 2})

		f.db.On("AppendMarketData", mock.Anything, token.EntityID(), mock.MatchedBy(func(s *model.MarketDataSnapshot) bool {
			return assert.Len(t, s.CurrencyData, len(types.SupportedCurrencies)) &&
				assert.Equal(t, "usd", s.CurrencyData[0].Currency) &&
				assert.Equal(t, 2.0, s.CurrencyData[0].Price) &&
				assert.Equal(t, "eur", s.CurrencyData[1].Currency) &&
				assert.Equal(t, 4.0, s.CurrencyData[1].Price) &&
				assert.Equal(t, 2000.0, s.TotalSupply) &&
				assert.Equal(t, int64(250), s.MarketCapRank) &&
				assert.Equal(t, 0.01, s.SwapFee) &&
				s.Timestamp.Equal(fixedNow.Truncate(time.Millisecond))
		})).Return(nil).Once()

		summary, err := f.srv.syncMarketData(ctx)
		require.NoError(t, err)
		assert.Equal(t, RunSummary{Succeeded: 1}, summary)
	})

	t.Run("pies take supply and holders from the subgraph", func(t *testing.T) {
		f := newMarketDataFixture(t)

		pie := testutil.RandomToken(t, types.KindPieVault)
		f.db.On("FindTokensWithCoinGeckoID", mock.Anything).Return([]*model.TokenDocument{pie}, nil).Once()
		f.expectMarkets([]string{pie.CoinGeckoID}, map[string]float64{pie.CoinGeckoID: 1})
		f.sg.On("GetPieStats", mock.Anything, types.ChainEthereum, pie.Address).
			Return(&subgraph.PieStats{Holders: 77, TotalSupply: "1500000000000000000000"}, nil).Once()

		f.db.On("AppendMarketData", mock.Anything, pie.EntityID(), mock.MatchedBy(func(s *model.MarketDataSnapshot) bool {
			return s.Holders == 77 && s.TotalSupply == 1500
		})).Return(nil).Once()

		_, err := f.srv.syncMarketData(ctx)
		require.NoError(t, err)
	})

	t.Run("subgraph failure keeps the prices", func(t *testing.T) {
		f := newMarketDataFixture(t)

		pie := testutil.RandomToken(t, types.KindPieSmartPool)
		f.db.On("FindTokensWithCoinGeckoID", mock.Anything).Return([]*model.TokenDocument{pie}, nil).Once()
		f.expectMarkets([]string{pie.CoinGeckoID}, map[string]float64{pie.CoinGeckoID: 1})
		f.sg.On("GetPieStats", mock.Anything, types.ChainEthereum, pie.Address).Return(nil, errors.New("indexer down")).Once()
		f.rep.On("CaptureException", mock.Anything, mock.Anything, mock.Anything).Once()
		f.db.On("AppendMarketData", mock.Anything, pie.EntityID(), mock.Anything).Return(nil).Once()

		summary, err := f.srv.syncMarketData(ctx)
		require.NoError(t, err)
		assert.Equal(t, RunSummary{Succeeded: 1}, summary)
	})

	t.Run("unknown coin fails only its own item", func(t *testing.T) {
		f := newMarketDataFixture(t)

		known := testutil.RandomToken(t, types.KindToken)
		unknown := testutil.RandomToken(t, types.KindToken)
		f.db.On("FindTokensWithCoinGeckoID", mock.Anything).Return([]*model.TokenDocument{known, unknown}, nil).Once()
		f.expectMarkets([]string{known.CoinGeckoID, unknown.CoinGeckoID}, map[string]float64{known.CoinGeckoID: 1})
		f.db.On("AppendMarketData", mock.Anything, known.EntityID(), mock.Anything).Return(nil).Once()
		f.rep.On("CaptureException", mock.Anything, mock.Anything, mock.MatchedBy(func(tags map[string]string) bool {
			return tags["token"] == unknown.EntityID().String()
		})).Once()

		summary, err := f.srv.syncMarketData(ctx)
		require.Error(t, err)
		assert.Equal(t, RunSummary{Succeeded: 1, Failed: 1}, summary)
	})

	t.Run("fails when every currency fails", func(t *testing.T) {
		f := newMarketDataFixture(t)

		token := testutil.RandomToken(t, types.KindToken)
		f.db.On("FindTokensWithCoinGeckoID", mock.Anything).Return([]*model.TokenDocument{token}, nil).Once()
		f.cg.On("GetMarkets", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("rate limit exceeded"))
		f.rep.On("CaptureException", mock.Anything, mock.Anything, mock.Anything).Times(len(types.SupportedCurrencies))

		_, err := f.srv.syncMarketData(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch market data in any currency")
	})

	t.Run("no tokens", func(t *testing.T) {
		f := newMarketDataFixture(t)
		f.db.On("FindTokensWithCoinGeckoID", mock.Anything).Return([]*model.TokenDocument{}, nil).Once()

		summary, err := f.srv.syncMarketData(ctx)
		require.NoError(t, err)
		assert.Equal(t, RunSummary{}, summary)
	})
}
