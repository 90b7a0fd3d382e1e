package services

import (
	"context"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/coingecko"
	"github.com/Alexintosh/piedao-monorepo/internal/clients/subgraph"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/db"
	"github.com/Alexintosh/piedao-monorepo/internal/queue"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
)

// Service runs the scheduled jobs that append snapshots to stored entities.
type Service struct {
	cfg       *config.Config
	db        db.DbInterface
	coingecko coingecko.CoinGeckoInterface
	subgraph  subgraph.SubgraphInterface
	reporter  reporter.Reporter
	publisher queue.Publisher
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	cg coingecko.CoinGeckoInterface,
	sg subgraph.SubgraphInterface,
	rep reporter.Reporter,
	pub queue.Publisher,
) *Service {
	if pub == nil {
		pub = queue.NewNoopPublisher()
	}
	if rep == nil {
		rep = reporter.NewNoopReporter()
	}

	return &Service{
		cfg:       cfg,
		db:        db,
		coingecko: cg,
		subgraph:  sg,
		reporter:  rep,
		publisher: pub,
		now:       time.Now,
	}
}

func (s *Service) StartJobs(ctx context.Context) {
	s.StartYieldPoller(ctx)
	if s.cfg.Poller.MarketDataSyncEnabled {
		s.StartMarketDataPoller(ctx)
	}
}

// RunSummary is the outcome of one job run.
type RunSummary struct {
	Succeeded int
	Failed    int
}

// snapshotTime is shared by every item of a run. Mongo stores milliseconds.
func (s *Service) snapshotTime() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
