package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	"github.com/justunlock/goapi/service/query"
)

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) listing.Repo {
	return &listingImpl{q}
}

func (im *listingImpl) FindOne(c ctx.Ctx, id listing.ListingId) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.q.FindOne(c, domain.TableListings, id, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) FindByCreator(c ctx.Ctx, creator domain.Address, offset, limit int) ([]listing.Listing, error) {
	res := []listing.Listing{}
	qry := bson.M{"creatorAddress": creator.ToLower()}

	if err := im.q.Search(c, domain.TableListings, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) FindAll(c ctx.Ctx, offset, limit int) ([]listing.Listing, error) {
	res := []listing.Listing{}

	if err := im.q.Search(c, domain.TableListings, offset, limit, "-createdAt", bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) Count(c ctx.Ctx) (int, error) {
	n, err := im.q.Count(c, domain.TableListings, bson.M{})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (im *listingImpl) Create(c ctx.Ctx, val listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, val); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}

	return nil
}

func (im *listingImpl) RecordSale(c ctx.Ctx, id listing.ListingId, at time.Time) error {
	selector := bson.M{"slug": id.Slug}
	// server-side $inc keeps concurrent sales from losing updates
	update := bson.M{
		"$inc": bson.M{"saleCount": 1},
		"$set": bson.M{"lastSaleAt": at},
	}

	if err := im.q.CustomPatch(c, domain.TableListings, selector, update, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}

	return nil
}

func (im *listingImpl) Delete(c ctx.Ctx, id listing.ListingId) error {
	if err := im.q.Remove(c, domain.TableListings, id); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
