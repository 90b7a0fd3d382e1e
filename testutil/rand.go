package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomAddress returns a lower-cased random EVM address.
func RandomAddress(t *testing.T) string {
	t.Helper()

	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("failed to generate address: %v", err)
	}
	return "0x" + hex.EncodeToString(b)
}

// RandomToken returns a token of the given kind on ethereum with one
// usd-denominated market data snapshot.
func RandomToken(t *testing.T, kind types.TokenKind) *model.TokenDocument {
	t.Helper()

	return &model.TokenDocument{
		Chain:         types.ChainEthereum.String(),
		Address:       RandomAddress(t),
		Kind:          kind,
		Name:          gofakeit.Company(),
		Symbol:        strings.ToUpper(gofakeit.LetterN(4)),
		Decimals:      18,
		CoinGeckoID:   strings.ToLower(gofakeit.LetterN(10)),
		InceptionDate: gofakeit.DateRange(time.Unix(1577836800, 0), time.Unix(1672531200, 0)).UTC(),
		RiskGrade:     "AAA",
		MarketData: []model.MarketDataSnapshot{
			RandomMarketData(t, time.Now().UTC().Truncate(time.Millisecond)),
		},
		UnderlyingTokens: []model.UnderlyingToken{},
		Governance:       []model.GovernanceProposal{},
	}
}

func RandomMarketData(t *testing.T, ts time.Time) model.MarketDataSnapshot {
	t.Helper()

	price := gofakeit.Float64Range(0.5, 500)
	return model.MarketDataSnapshot{
		Timestamp: ts,
		CurrencyData: []model.CurrencyData{
			{
				Currency:                 types.CurrencyUSD.String(),
				Price:                    price,
				MarketCap:                price * 1_000_000,
				Volume:                   gofakeit.Float64Range(1_000, 100_000),
				PriceChange24h:           price * 0.01,
				PriceChangePercentage24h: 1,
				AllTimeHigh:              price * 2,
				AllTimeLow:               price / 2,
			},
		},
		CirculatingSupply: 1_000_000,
		TotalSupply:       1_000_000,
		Holders:           int64(gofakeit.IntRange(1, 10_000)),
	}
}

// RandomStrategy returns a strategy of vault with a valid state.
func RandomStrategy(t *testing.T, vault types.EntityID) *model.YieldVaultStrategyDocument {
	t.Helper()

	return &model.YieldVaultStrategyDocument{
		Chain:                vault.Chain.String(),
		Address:              RandomAddress(t),
		VaultAddress:         vault.Address,
		Title:                gofakeit.BuzzWord(),
		Description:          gofakeit.Sentence(8),
		AllocationPercentage: gofakeit.Float64Range(1, 100),
		Links:                []model.Link{{Title: "docs", URL: gofakeit.URL()}},
		State: model.StrategyState{
			TotalDeposited:       gofakeit.Float64Range(10_000, 1_000_000),
			EstimatedReturns:     gofakeit.Float64Range(1, 1_000),
			ReturnsPeriodSeconds: int64((7 * 24 * time.Hour).Seconds()),
		},
		YieldData: []model.YieldSnapshot{},
	}
}
