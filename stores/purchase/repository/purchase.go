package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/purchase"
	"github.com/justunlock/goapi/service/query"
)

type repo struct {
	q query.Mongo
}

func New(q query.Mongo) purchase.Repo {
	return &repo{q}
}

func (r *repo) Create(c ctx.Ctx, val purchase.Purchase) error {
	if err := r.q.Insert(c, domain.TablePurchases, val); err == query.ErrDuplicateKey {
		// replayed (slug, txHash); the caller decides whether that is fatal
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}

	return nil
}

func (r *repo) FindOne(c ctx.Ctx, id purchase.PurchaseId) (*purchase.Purchase, error) {
	res := &purchase.Purchase{}

	if err := r.q.FindOne(c, domain.TablePurchases, id, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (r *repo) FindByReceiver(c ctx.Ctx, receiver domain.Address, offset, limit int) ([]purchase.Purchase, error) {
	res := []purchase.Purchase{}
	qry := bson.M{"receiverAddress": receiver.ToLower()}

	if err := r.q.Search(c, domain.TablePurchases, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *repo) FindRecent(c ctx.Ctx, offset, limit int) ([]purchase.Purchase, error) {
	res := []purchase.Purchase{}

	if err := r.q.Search(c, domain.TablePurchases, offset, limit, "-createdAt", bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *repo) Count(c ctx.Ctx) (int, error) {
	n, err := r.q.Count(c, domain.TablePurchases, bson.M{})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (r *repo) GrossVolume(c ctx.Ctx) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":    nil,
			"volume": bson.M{"$sum": "$amount"},
		}},
	}

	iter, closer, err := r.q.Pipe(c, domain.TablePurchases, pipeline)
	if err != nil {
		c.WithField("err", err).Error("q.Pipe failed")
		return 0, err
	}
	defer closer()

	var row struct {
		Volume float64 `bson:"volume"`
	}
	if ok, err := iter.Next(c, &row); err != nil {
		c.WithField("err", err).Error("iter.Next failed")
		return 0, err
	} else if !ok {
		// no purchases yet
		return 0, nil
	}
	return row.Volume, nil
}
