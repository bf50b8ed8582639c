package usecase

import (
	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/log"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	"github.com/justunlock/goapi/domain/purchase"
	"github.com/justunlock/goapi/service/ens"
)

const maxFeedLimit = 50

type impl struct {
	purchaseRepo purchase.Repo
	listingRepo  listing.Repo
	ens          ens.ENS
}

func New(purchaseRepo purchase.Repo, listingRepo listing.Repo, ens ens.ENS) purchase.Usecase {
	return &impl{
		purchaseRepo: purchaseRepo,
		listingRepo:  listingRepo,
		ens:          ens,
	}
}

func (im *impl) Notifications(c ctx.Ctx, receiver domain.Address, limit int) ([]purchase.Notification, error) {
	if limit <= 0 || limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	res, err := im.purchaseRepo.FindByReceiver(c, receiver, 0, limit)
	if err != nil {
		c.WithField("err", err).Error("purchaseRepo.FindByReceiver failed")
		return nil, err
	}

	notifications := make([]purchase.Notification, 0, len(res))
	for _, p := range res {
		notifications = append(notifications, purchase.Notification{
			Purchase:  p,
			BuyerName: im.buyerName(c, p.BuyerAddress),
		})
	}
	return notifications, nil
}

// buyerName is display sugar, a resolver failure only drops the name
func (im *impl) buyerName(c ctx.Ctx, buyer domain.Address) string {
	name, err := im.ens.ReverseResolve(c, buyer)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": buyer,
		}).Warn("ens.ReverseResolve failed")
		return ""
	}
	return name
}

func (im *impl) Stats(c ctx.Ctx) (*purchase.Stats, error) {
	listings, err := im.listingRepo.Count(c)
	if err != nil {
		c.WithField("err", err).Error("listingRepo.Count failed")
		return nil, err
	}

	purchases, err := im.purchaseRepo.Count(c)
	if err != nil {
		c.WithField("err", err).Error("purchaseRepo.Count failed")
		return nil, err
	}

	volume, err := im.purchaseRepo.GrossVolume(c)
	if err != nil {
		c.WithField("err", err).Error("purchaseRepo.GrossVolume failed")
		return nil, err
	}

	return &purchase.Stats{
		TotalListings:  listings,
		TotalPurchases: purchases,
		GrossVolume:    volume,
	}, nil
}

func (im *impl) Recent(c ctx.Ctx, limit int) ([]purchase.Purchase, error) {
	if limit <= 0 || limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	res, err := im.purchaseRepo.FindRecent(c, 0, limit)
	if err != nil {
		c.WithField("err", err).Error("purchaseRepo.FindRecent failed")
		return nil, err
	}
	return res, nil
}
