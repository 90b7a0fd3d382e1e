package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/finance"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/queue"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"github.com/Alexintosh/piedao-monorepo/internal/utils/poller"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const yieldSnapshotJob = "yield_snapshot"

// yieldCompounding is the frequency APY is simulated with.
const yieldCompounding = types.CompoundingDaily

func (s *Service) StartYieldPoller(ctx context.Context) {
	yieldPoller := poller.NewPoller(
		yieldSnapshotJob,
		s.cfg.Poller.YieldPollingInterval,
		metrics.RecordPollerDuration(yieldSnapshotJob, func(ctx context.Context) error {
			_, err := s.updateStrategyYields(ctx)
			return err
		}),
	)
	go yieldPoller.Start(ctx)
}

// updateStrategyYields appends one APR/APY snapshot to every stored
// strategy. All strategies are processed concurrently and a failing one
// does not affect the others.
func (s *Service) updateStrategyYields(ctx context.Context) (RunSummary, error) {
	log := log.Ctx(ctx)

	strategies, err := s.db.FindYieldVaultStrategies(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("failed to load yield vault strategies: %w", err)
	}

	if len(strategies) == 0 {
		log.Debug().Msg("No yield vault strategies found - skipping yield snapshot")
		return RunSummary{}, nil
	}

	ts := s.snapshotTime()
	p := pool.NewWithResults[error]()
	for _, strategy := range strategies {
		p.Go(func() error {
			return s.snapshotStrategyYield(ctx, strategy, ts)
		})
	}

	summary, err := summarize(p.Wait())
	log.Info().
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Time("timestamp", ts).
		Msg("Yield snapshot run finished")

	return summary, err
}

func (s *Service) snapshotStrategyYield(
	ctx context.Context, strategy *model.YieldVaultStrategyDocument, ts time.Time,
) error {
	tags := map[string]string{
		reporter.ComponentTag: yieldSnapshotJob,
		"strategy":            strategy.EntityID().String(),
	}
	fail := func(err error) error {
		err = fmt.Errorf("strategy %s: %w", strategy.EntityID(), err)
		metrics.RecordSnapshot(yieldSnapshotJob, true)
		s.reporter.CaptureException(ctx, err, tags)
		return err
	}

	state := strategy.State
	apr, err := finance.StrategyAPR(state.TotalDeposited, state.EstimatedReturns, state.ReturnsPeriod())
	if err != nil {
		return fail(fmt.Errorf("failed to calculate apr: %w", err))
	}

	apy, err := finance.SimulateAPY(apr, yieldCompounding)
	if err != nil {
		return fail(fmt.Errorf("failed to simulate apy: %w", err))
	}

	snapshot := &model.YieldSnapshot{
		APR: apr,
		APY: model.APY{
			CompoundingFrequency: yieldCompounding,
			Value:                apy,
		},
		Timestamp: ts,
	}
	if err := s.db.AppendYieldData(ctx, strategy.EntityID(), snapshot); err != nil {
		return fail(fmt.Errorf("failed to append yield data: %w", err))
	}
	metrics.RecordSnapshot(yieldSnapshotJob, false)

	// the snapshot is stored, a lost event is only reported
	err = s.publisher.PublishYieldSnapshot(ctx, queue.NewYieldSnapshotEvent(strategy, snapshot))
	if err != nil {
		s.reporter.CaptureException(ctx, fmt.Errorf("failed to publish yield snapshot: %w", err), tags)
	}

	return nil
}

func summarize(results []error) (RunSummary, error) {
	var summary RunSummary
	var errs []error
	for _, err := range results {
		if err != nil {
			summary.Failed++
			errs = append(errs, err)
			continue
		}
		summary.Succeeded++
	}

	if len(errs) > 0 {
		return summary, fmt.Errorf("%d of %d items failed: %w", summary.Failed, len(results), errors.Join(errs...))
	}
	return summary, nil
}
