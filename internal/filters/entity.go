package filters

import (
	"go.mongodb.org/mongo-driver/bson"
)

// EntitySortFields maps sortable entity fields to document keys.
var EntitySortFields = map[string]string{
	"chain":         "chain",
	"address":       "address",
	"name":          "name",
	"symbol":        "symbol",
	"decimals":      "decimals",
	"kind":          "kind",
	"inceptionDate": "inception_date",
}

// insertion order; ObjectIDs grow monotonically
const insertionOrderKey = "_id"

// MongoSort turns validated options into an ordered sort document. The
// insertion order is always the last key so ties are stable.
func MongoSort(o Options) bson.D {
	sort := make(bson.D, 0, len(o.OrderBy)+1)
	for _, f := range o.OrderBy {
		key, ok := EntitySortFields[f.Field]
		if !ok {
			continue
		}
		sort = append(sort, bson.E{Key: key, Value: mongoDirection(f.Direction)})
	}
	return append(sort, bson.E{Key: insertionOrderKey, Value: 1})
}

func mongoDirection(d Direction) int {
	if d == Desc {
		return -1
	}
	return 1
}
