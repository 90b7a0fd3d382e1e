package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/api"
	"github.com/Alexintosh/piedao-monorepo/internal/clients/coingecko"
	"github.com/Alexintosh/piedao-monorepo/internal/clients/subgraph"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/db"
	dbmodel "github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/metrics"
	"github.com/Alexintosh/piedao-monorepo/internal/observability/tracing"
	"github.com/Alexintosh/piedao-monorepo/internal/queue"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
	"github.com/Alexintosh/piedao-monorepo/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the GraphQL server and the snapshot jobs",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	cgClient := coingecko.NewClientWithMetrics(coingecko.NewClient(&cfg.CoinGecko))
	sgClient := subgraph.NewClientWithMetrics(subgraph.NewClient(&cfg.Subgraph))

	// only user queries read through the cache, the jobs need fresh data
	userSgClient := sgClient
	if cfg.Subgraph.CacheTTL > 0 {
		userSgClient, err = subgraph.NewCachedClient(sgClient, cfg.Subgraph.CacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("error while creating subgraph cache")
		}
	}

	rep, err := reporter.New(&cfg.Sentry)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating error reporter")
	}
	defer rep.Flush()

	var publisher queue.Publisher = queue.NewNoopPublisher()
	if cfg.Queue != nil {
		qm, err := queue.NewQueueManager(cfg.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("error while creating queue manager")
		}
		publisher = qm
	}
	defer publisher.Shutdown()

	// initialize metrics with the metrics port from config
	metrics.Init(cfg.Metrics.GetMetricsPort())

	service := services.NewService(cfg, dbClient, cgClient, sgClient, rep, publisher)
	service.StartJobs(ctx)

	server := api.New(&cfg.Server, dbClient, userSgClient, rep)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
