//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db"
	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/Alexintosh/piedao-monorepo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	t.Run("duplicate identity is rejected", func(t *testing.T) {
		resetDatabase(t)

		token := testutil.RandomToken(t, types.KindPieVault)
		require.NoError(t, testDB.SaveNewToken(ctx, token))

		duplicate := testutil.RandomToken(t, types.KindToken)
		duplicate.Address = token.Address
		err := testDB.SaveNewToken(ctx, duplicate)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))
	})

	t.Run("find by id", func(t *testing.T) {
		resetDatabase(t)

		token := testutil.RandomToken(t, types.KindPieVault)
		require.NoError(t, testDB.SaveNewToken(ctx, token))

		found, err := testDB.FindTokenByID(ctx, types.KindPieVault, token.EntityID())
		require.NoError(t, err)
		assert.Equal(t, token.Symbol, found.Symbol)
		require.Len(t, found.MarketData, 1)

		_, err = testDB.FindTokenByID(ctx, types.KindPieSmartPool, token.EntityID())
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))

		_, err = testDB.FindTokenByID(ctx, types.KindPieVault, types.EntityID{
			Chain:   types.ChainEthereum,
			Address: testutil.RandomAddress(t),
		})
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("find with no match returns empty list", func(t *testing.T) {
		resetDatabase(t)

		tokens, err := testDB.FindTokens(ctx, types.KindYieldVault, filters.Options{})
		require.NoError(t, err)
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	})

	t.Run("insertion order by default, ordered and limited on request", func(t *testing.T) {
		resetDatabase(t)

		symbols := []string{"BBB", "AAA", "CCC", "AAA"}
		var inserted []*model.TokenDocument
		for i, symbol := range symbols {
			token := testutil.RandomToken(t, types.KindToken)
			token.Symbol = symbol
			token.Decimals = int32(i)
			require.NoError(t, testDB.SaveNewToken(ctx, token))
			inserted = append(inserted, token)
		}

		tokens, err := testDB.FindTokens(ctx, types.KindToken, filters.Options{})
		require.NoError(t, err)
		require.Len(t, tokens, 4)
		for i := range inserted {
			assert.Equal(t, inserted[i].Address, tokens[i].Address)
		}

		tokens, err = testDB.FindTokens(ctx, types.KindToken, filters.Options{
			Limit: 3,
			OrderBy: []filters.SortField{
				{Field: "symbol", Direction: filters.Asc},
				{Field: "decimals", Direction: filters.Desc},
			},
		})
		require.NoError(t, err)
		require.Len(t, tokens, 3)
		assert.Equal(t, "AAA", tokens[0].Symbol)
		assert.Equal(t, int32(3), tokens[0].Decimals)
		assert.Equal(t, "AAA", tokens[1].Symbol)
		assert.Equal(t, int32(1), tokens[1].Decimals)
		assert.Equal(t, "BBB", tokens[2].Symbol)
	})

	t.Run("find by ids and symbols", func(t *testing.T) {
		resetDatabase(t)

		a := testutil.RandomToken(t, types.KindToken)
		b := testutil.RandomToken(t, types.KindPieVault)
		require.NoError(t, testDB.SaveNewToken(ctx, a))
		require.NoError(t, testDB.SaveNewToken(ctx, b))

		tokens, err := testDB.FindTokensByIDs(ctx, []types.EntityID{
			a.EntityID(),
			b.EntityID(),
			{Chain: types.ChainPolygon, Address: a.Address},
		})
		require.NoError(t, err)
		assert.Len(t, tokens, 2)

		tokens, err = testDB.FindTokensBySymbols(ctx, []string{a.Symbol, "nope"})
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, a.Address, tokens[0].Address)
	})

	t.Run("append market data", func(t *testing.T) {
		resetDatabase(t)

		token := testutil.RandomToken(t, types.KindToken)
		require.NoError(t, testDB.SaveNewToken(ctx, token))

		ts := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)
		snapshot := testutil.RandomMarketData(t, ts)
		require.NoError(t, testDB.AppendMarketData(ctx, token.EntityID(), &snapshot))

		err := testDB.AppendMarketData(ctx, token.EntityID(), &snapshot)
		require.Error(t, err)
		assert.True(t, db.IsDuplicateKeyError(err))

		found, err := testDB.FindTokenByID(ctx, types.KindToken, token.EntityID())
		require.NoError(t, err)
		require.Len(t, found.MarketData, 2)
		assert.True(t, ts.Equal(found.MarketData[1].Timestamp))

		err = testDB.AppendMarketData(ctx, types.EntityID{Chain: types.ChainEthereum, Address: testutil.RandomAddress(t)}, &snapshot)
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
}
