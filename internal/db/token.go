package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Alexintosh/piedao-monorepo/internal/db/model"
	"github.com/Alexintosh/piedao-monorepo/internal/filters"
	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveNewToken(ctx context.Context, token *model.TokenDocument) error {
	token.Address = strings.ToLower(token.Address)
	if token.MarketData == nil {
		token.MarketData = []model.MarketDataSnapshot{}
	}

	_, err := db.collection(model.TokenCollection).InsertOne(ctx, token)
	if err != nil {
		if isDuplicateKey(err) {
			return &DuplicateKeyError{
				Key:     token.EntityID().String(),
				Message: "token already exists",
			}
		}
		return err
	}

	return nil
}

func (db *Database) FindTokens(
	ctx context.Context, kind types.TokenKind, opts filters.Options,
) ([]*model.TokenDocument, error) {
	findOpts := options.Find().SetSort(filters.MongoSort(opts))
	if !opts.Unrestricted() {
		findOpts.SetLimit(opts.Limit)
	}

	return db.findTokens(ctx, bson.M{"kind": kind.String()}, findOpts)
}

func (db *Database) FindTokenByID(
	ctx context.Context, kind types.TokenKind, id types.EntityID,
) (*model.TokenDocument, error) {
	filter := bson.M{
		"kind":    kind.String(),
		"chain":   id.Chain.String(),
		"address": strings.ToLower(id.Address),
	}

	var token model.TokenDocument
	err := db.collection(model.TokenCollection).FindOne(ctx, filter).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id.String(),
				Message: fmt.Sprintf("%s %s not found", kind, id),
			}
		}
		return nil, err
	}

	return &token, nil
}

func (db *Database) FindTokensByIDs(ctx context.Context, ids []types.EntityID) ([]*model.TokenDocument, error) {
	if len(ids) == 0 {
		return []*model.TokenDocument{}, nil
	}

	return db.findTokens(ctx, identityFilter(ids), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (db *Database) FindTokensBySymbols(ctx context.Context, symbols []string) ([]*model.TokenDocument, error) {
	if len(symbols) == 0 {
		return []*model.TokenDocument{}, nil
	}

	filter := bson.M{"symbol": bson.M{"$in": symbols}}
	// symbols are matched case insensitively
	opts := options.Find().
		SetCollation(&options.Collation{Locale: "en", Strength: 2}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	return db.findTokens(ctx, filter, opts)
}

func (db *Database) FindTokensWithCoinGeckoID(ctx context.Context) ([]*model.TokenDocument, error) {
	filter := bson.M{"coingecko_id": bson.M{"$exists": true, "$ne": ""}}
	return db.findTokens(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (db *Database) AppendMarketData(
	ctx context.Context, id types.EntityID, snapshot *model.MarketDataSnapshot,
) error {
	return db.appendSnapshot(ctx, model.TokenCollection, "market_data", id, snapshot.Timestamp, snapshot)
}

func (db *Database) findTokens(ctx context.Context, filter any, opts *options.FindOptions) ([]*model.TokenDocument, error) {
	cursor, err := db.collection(model.TokenCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tokens := []*model.TokenDocument{}
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}

	return tokens, nil
}

func identityFilter(ids []types.EntityID) bson.M {
	or := make(bson.A, 0, len(ids))
	for _, id := range ids {
		or = append(or, bson.M{
			"chain":   id.Chain.String(),
			"address": strings.ToLower(id.Address),
		})
	}
	return bson.M{"$or": or}
}

func isDuplicateKey(err error) bool {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, e := range writeErr.WriteErrors {
			if mongo.IsDuplicateKeyError(e) {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}
