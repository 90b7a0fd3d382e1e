package cli

import (
	"fmt"

	"github.com/Alexintosh/piedao-monorepo/internal/config"
	dbmodel "github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func SetupDbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup-db",
		Short: "Creates the collections and indexes",
		Args:  cobra.ExactArgs(0),
		RunE:  setupDb,
	}
}

func setupDb(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", GetConfigPath(), err)
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return fmt.Errorf("error while setting up db model: %w", err)
	}

	log.Info().Str("db", cfg.Db.DbName).Msg("database is set up")
	return nil
}
