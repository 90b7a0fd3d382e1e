package model

import (
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const YieldVaultStrategyCollection = "yield_vault_strategies"

type YieldVaultStrategyDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Chain                string             `bson:"chain"`
	Address              string             `bson:"address"`
	VaultAddress         string             `bson:"vault_address"`
	Title                string             `bson:"title"`
	Description          string             `bson:"description"`
	AllocationPercentage float64            `bson:"allocation_percentage"`
	Links                []Link             `bson:"links"`
	State                StrategyState      `bson:"state"`
	// YieldData is append-only, ordered by insertion.
	YieldData []YieldSnapshot `bson:"yield_data"`
}

func (s *YieldVaultStrategyDocument) EntityID() types.EntityID {
	return types.EntityID{Chain: types.SupportedChain(s.Chain), Address: s.Address}
}

func (s *YieldVaultStrategyDocument) LatestYield() (YieldSnapshot, bool) {
	if len(s.YieldData) == 0 {
		return YieldSnapshot{}, false
	}
	return s.YieldData[len(s.YieldData)-1], true
}

type Link struct {
	Title string `bson:"title"`
	URL   string `bson:"url"`
}

// StrategyState is what the strategy reported at its last harvest.
type StrategyState struct {
	TotalDeposited       float64 `bson:"total_deposited"`
	EstimatedReturns     float64 `bson:"estimated_returns"`
	ReturnsPeriodSeconds int64   `bson:"returns_period_seconds"`
}

func (s StrategyState) ReturnsPeriod() time.Duration {
	return time.Duration(s.ReturnsPeriodSeconds) * time.Second
}

type YieldSnapshot struct {
	APR       float64   `bson:"apr"`
	APY       APY       `bson:"apy"`
	Timestamp time.Time `bson:"timestamp"`
}

type APY struct {
	CompoundingFrequency types.CompoundingFrequency `bson:"compounding_frequency"`
	Value                float64                    `bson:"value"`
}
