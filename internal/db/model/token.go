package model

import (
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TokenCollection = "tokens"

// TokenDocument stores every fund entity (token, pie smart pool, pie vault,
// yield vault). (chain, address) is unique.
type TokenDocument struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Chain             string               `bson:"chain"`
	Address           string               `bson:"address"` // lower-cased
	Kind              types.TokenKind      `bson:"kind"`
	Name              string               `bson:"name"`
	Symbol            string               `bson:"symbol"`
	Decimals          int32                `bson:"decimals"`
	CoinGeckoID       string               `bson:"coingecko_id,omitempty"`
	InceptionDate     time.Time            `bson:"inception_date"`
	RiskGrade         string               `bson:"risk_grade,omitempty"`
	UnderlyingAddress string               `bson:"underlying_address,omitempty"` // yield vaults only
	MarketData        []MarketDataSnapshot `bson:"market_data"`
	UnderlyingTokens  []UnderlyingToken    `bson:"underlying_tokens"`
	Governance        []GovernanceProposal `bson:"governance"`
}

func (t *TokenDocument) EntityID() types.EntityID {
	return types.EntityID{Chain: types.SupportedChain(t.Chain), Address: t.Address}
}

// LatestMarketData returns the most recently appended snapshot.
func (t *TokenDocument) LatestMarketData() (MarketDataSnapshot, bool) {
	if len(t.MarketData) == 0 {
		return MarketDataSnapshot{}, false
	}
	return t.MarketData[len(t.MarketData)-1], true
}

// MarketDataSnapshot is immutable once appended.
type MarketDataSnapshot struct {
	Timestamp         time.Time      `bson:"timestamp"`
	CurrencyData      []CurrencyData `bson:"currency_data"`
	CirculatingSupply float64        `bson:"circulating_supply"`
	TotalSupply       float64        `bson:"total_supply"`
	Holders           int64          `bson:"holders"`
	MarketCapRank     int64          `bson:"market_cap_rank"`
	SwapFee           float64        `bson:"swap_fee"`
	ManagementFee     float64        `bson:"management_fee"`
}

type CurrencyData struct {
	Currency                 string  `bson:"currency"`
	Price                    float64 `bson:"price"`
	MarketCap                float64 `bson:"market_cap"`
	Volume                   float64 `bson:"volume"`
	PriceChange24h           float64 `bson:"price_change_24h"`
	PriceChangePercentage24h float64 `bson:"price_change_percentage_24h"`
	AllTimeHigh              float64 `bson:"ath"`
	AllTimeLow               float64 `bson:"atl"`
}

type UnderlyingToken struct {
	Address  string `bson:"address"`
	Name     string `bson:"name"`
	Symbol   string `bson:"symbol"`
	Decimals int32  `bson:"decimals"`
	// Balance is the raw integer amount held by the pie.
	Balance string `bson:"balance"`
}

type GovernanceProposal struct {
	Title     string    `bson:"title"`
	URL       string    `bson:"url"`
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
}
