package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const setupTimeout = 30 * time.Second

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	TokenCollection: {
		{Indexes: map[string]int{"chain": 1, "address": 1}, Unique: true},
		{Indexes: map[string]int{"kind": 1}},
		{Indexes: map[string]int{"symbol": 1}},
		{Indexes: map[string]int{"coingecko_id": 1}},
	},
	YieldVaultStrategyCollection: {
		{Indexes: map[string]int{"chain": 1, "address": 1}, Unique: true},
		{Indexes: map[string]int{"chain": 1, "vault_address": 1}},
	},
}

// compound index key order matters, so keys are listed explicitly
var keyOrder = []string{"chain", "address", "vault_address", "kind", "symbol", "coingecko_id"}

func Setup(ctx context.Context, cfg *config.DbConfig) error {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect setup mongo client")
		}
	}()

	database := client.Database(cfg.DbName)

	for collection, idxs := range collections {
		if err := createCollection(ctx, database, collection); err != nil {
			return err
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("collections and indexes created")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	err := database.CreateCollection(ctx, collectionName)
	if err != nil {
		var cmdErr mongo.CommandError
		// NamespaceExists
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("collection created")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	keys := bson.D{}
	for _, k := range keyOrder {
		if v, ok := idx.Indexes[k]; ok {
			keys = append(keys, bson.E{Key: k, Value: v})
		}
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	return nil
}
