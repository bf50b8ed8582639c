package mongoclient

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/justunlock/goapi/base/log"
)

type indexDef struct {
	table  string
	keys   bson.D
	unique bool
}

var indexDefs = []indexDef{
	{table: "listings", keys: bson.D{{Key: "slug", Value: 1}}, unique: true},
	{table: "listings", keys: bson.D{{Key: "creatorAddress", Value: 1}, {Key: "createdAt", Value: -1}}},
	{table: "secrets", keys: bson.D{{Key: "slug", Value: 1}}, unique: true},
	// one purchase per (slug, txHash); a duplicate insert means a replayed
	// transaction hash and must not credit the sale counter again
	{table: "purchases", keys: bson.D{{Key: "slug", Value: 1}, {Key: "txHash", Value: 1}}, unique: true},
	{table: "purchases", keys: bson.D{{Key: "receiverAddress", Value: 1}, {Key: "createdAt", Value: -1}}},
	{table: "purchases", keys: bson.D{{Key: "createdAt", Value: -1}}},
}

// EnsureIndexes creates the collection indexes on startup. CreateOne is a
// no-op for indexes that already exist.
func (c *Client) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, def := range indexDefs {
		opts := options.Index()
		if def.unique {
			opts.SetUnique(true)
		}
		model := mongo.IndexModel{Keys: def.keys, Options: opts}
		if _, err := c.Database(c.DbName).Collection(def.table).Indexes().CreateOne(ctx, model); err != nil {
			log.Log().WithFields(log.Fields{
				"table": def.table,
				"err":   err,
			}).Error("fail to create index")
			return err
		}
	}
	return nil
}
