package queue

import (
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
)

const YieldSnapshotEventType = "YIELD_SNAPSHOT"

// YieldSnapshotEvent is emitted after a yield snapshot was appended to a
// strategy.
type YieldSnapshotEvent struct {
	EventType            string    `json:"event_type"`
	Chain                string    `json:"chain"`
	StrategyAddress      string    `json:"strategy_address"`
	VaultAddress         string    `json:"vault_address"`
	APR                  float64   `json:"apr"`
	APY                  float64   `json:"apy"`
	CompoundingFrequency string    `json:"compounding_frequency"`
	Timestamp            time.Time `json:"timestamp"`
}

func NewYieldSnapshotEvent(strategy *model.YieldVaultStrategyDocument, snapshot *model.YieldSnapshot) *YieldSnapshotEvent {
	return &YieldSnapshotEvent{
		EventType:            YieldSnapshotEventType,
		Chain:                strategy.Chain,
		StrategyAddress:      strategy.Address,
		VaultAddress:         strategy.VaultAddress,
		APR:                  snapshot.APR,
		APY:                  snapshot.APY.Value,
		CompoundingFrequency: snapshot.APY.CompoundingFrequency.String(),
		Timestamp:            snapshot.Timestamp,
	}
}
