package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Alexintosh/piedao-monorepo/internal/types"
	"go.mongodb.org/mongo-driver/bson"
)

// appendSnapshot pushes doc to the arrayField of the entity identified by
// id, unless a snapshot with the same timestamp is already there. This is
// a single-document write; no transaction spans several entities.
func (db *Database) appendSnapshot(
	ctx context.Context,
	collection, arrayField string,
	id types.EntityID,
	timestamp time.Time,
	doc any,
) error {
	identity := bson.M{
		"chain":   id.Chain.String(),
		"address": strings.ToLower(id.Address),
	}

	filter := bson.M{
		"chain":                   identity["chain"],
		"address":                 identity["address"],
		arrayField + ".timestamp": bson.M{"$ne": timestamp},
	}
	update := bson.M{"$push": bson.M{arrayField: doc}}

	res, err := db.collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}

	// no match: either the entity does not exist or the snapshot does
	count, err := db.collection(collection).CountDocuments(ctx, identity)
	if err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{
			Key:     id.String(),
			Message: fmt.Sprintf("%s not found in %s", id, collection),
		}
	}

	return &DuplicateKeyError{
		Key:     fmt.Sprintf("%s@%d", id, timestamp.Unix()),
		Message: fmt.Sprintf("%s snapshot at %s already exists for %s", arrayField, timestamp.Format(time.RFC3339), id),
	}
}
