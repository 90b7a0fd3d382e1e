package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Alexintosh/piedao-monorepo/internal/clients/subgraph"
	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/Alexintosh/piedao-monorepo/internal/db"
	"github.com/Alexintosh/piedao-monorepo/internal/graphql"
	"github.com/Alexintosh/piedao-monorepo/internal/reporter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/zerolog/log"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.ServerConfig,
	database db.DbInterface,
	sg subgraph.SubgraphInterface,
	rep reporter.Reporter,
) *Server {
	router := newRouter(cfg, database, graphql.NewResolver(database, sg, rep))

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.GetAddress(),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func newRouter(cfg *config.ServerConfig, database db.DbInterface, resolver *graphql.Resolver) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(traceMiddleware)

	h := &handlers{db: database}
	r.Get("/healthcheck", h.healthCheck)

	gql := &relay.Handler{Schema: graphql.NewSchema(resolver)}
	r.With(
		middleware.Timeout(cfg.RequestTimeout),
		graphqlMetricsMiddleware,
	).Post("/graphql", gql.ServeHTTP)

	return r
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	log.Info().Msgf("Starting GraphQL server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
