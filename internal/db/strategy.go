package db

import (
	"context"
	"strings"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveNewYieldVaultStrategy(ctx context.Context, strategy *model.YieldVaultStrategyDocument) error {
	strategy.Address = strings.ToLower(strategy.Address)
	strategy.VaultAddress = strings.ToLower(strategy.VaultAddress)
	if strategy.YieldData == nil {
		strategy.YieldData = []model.YieldSnapshot{}
	}

	_, err := db.collection(model.YieldVaultStrategyCollection).InsertOne(ctx, strategy)
	if err != nil {
		if isDuplicateKey(err) {
			return &DuplicateKeyError{
				Key:     strategy.EntityID().String(),
				Message: "yield vault strategy already exists",
			}
		}
		return err
	}

	return nil
}

func (db *Database) FindYieldVaultStrategies(ctx context.Context) ([]*model.YieldVaultStrategyDocument, error) {
	return db.findStrategies(ctx, bson.M{})
}

func (db *Database) FindStrategiesByVaults(
	ctx context.Context, vaults []types.EntityID,
) ([]*model.YieldVaultStrategyDocument, error) {
	if len(vaults) == 0 {
		return []*model.YieldVaultStrategyDocument{}, nil
	}

	or := make(bson.A, 0, len(vaults))
	for _, v := range vaults {
		or = append(or, bson.M{
			"chain":         v.Chain.String(),
			"vault_address": strings.ToLower(v.Address),
		})
	}

	return db.findStrategies(ctx, bson.M{"$or": or})
}

func (db *Database) AppendYieldData(ctx context.Context, id types.EntityID, snapshot *model.YieldSnapshot) error {
	return db.appendSnapshot(ctx, model.YieldVaultStrategyCollection, "yield_data", id, snapshot.Timestamp, snapshot)
}

func (db *Database) findStrategies(ctx context.Context, filter bson.M) ([]*model.YieldVaultStrategyDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.collection(model.YieldVaultStrategyCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	strategies := []*model.YieldVaultStrategyDocument{}
	if err := cursor.All(ctx, &strategies); err != nil {
		return nil, err
	}

	return strategies, nil
}
