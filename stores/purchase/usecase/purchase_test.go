package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
	mListing "github.com/justunlock/goapi/domain/listing/mocks"
	"github.com/justunlock/goapi/domain/purchase"
	mPurchase "github.com/justunlock/goapi/domain/purchase/mocks"
	mEns "github.com/justunlock/goapi/service/ens/mocks"
)

var mockCtx = ctx.Background()

const (
	testReceiver = domain.Address("0x3000000000000000000000000000000000000003")
	testBuyer    = domain.Address("0x4000000000000000000000000000000000000004")
)

type purchaseSuite struct {
	suite.Suite
	purchaseRepo *mPurchase.Repo
	listingRepo  *mListing.Repo
	ens          *mEns.ENS
	subject      purchase.Usecase
}

func TestPurchase(t *testing.T) {
	suite.Run(t, new(purchaseSuite))
}

func (t *purchaseSuite) SetupTest() {
	t.purchaseRepo = &mPurchase.Repo{}
	t.listingRepo = &mListing.Repo{}
	t.ens = &mEns.ENS{}
	t.subject = New(t.purchaseRepo, t.listingRepo, t.ens)
}

func (t *purchaseSuite) sale(slug string) purchase.Purchase {
	return purchase.Purchase{
		Slug:            slug,
		TxHash:          domain.TxHash("0x9f2f6d7b84f2bce4e2cfe60bd1f70765a5ba8c15c4e0d4c9e7a2d73146f08a31"),
		BuyerAddress:    testBuyer,
		ReceiverAddress: testReceiver,
		Amount:          3,
		CreatedAt:       time.Now().Add(-time.Minute),
	}
}

func (t *purchaseSuite) TestNotificationsCarryBuyerName() {
	t.purchaseRepo.On("FindByReceiver", mockCtx, testReceiver, 0, 10).
		Return([]purchase.Purchase{t.sale("my-locked-link")}, nil)
	t.ens.On("ReverseResolve", mockCtx, testBuyer).Return("buyer.eth", nil)

	res, err := t.subject.Notifications(mockCtx, testReceiver, 10)
	t.NoError(err)
	t.Require().Len(res, 1)
	t.Equal("my-locked-link", res[0].Slug)
	t.Equal("buyer.eth", res[0].BuyerName)
}

func (t *purchaseSuite) TestNotificationsSurviveResolverFailure() {
	t.purchaseRepo.On("FindByReceiver", mockCtx, testReceiver, 0, 10).
		Return([]purchase.Purchase{t.sale("my-locked-link")}, nil)
	t.ens.On("ReverseResolve", mockCtx, testBuyer).
		Return("", errors.New("rpc timeout"))

	res, err := t.subject.Notifications(mockCtx, testReceiver, 10)
	t.NoError(err)
	t.Require().Len(res, 1)
	t.Empty(res[0].BuyerName)
}

func (t *purchaseSuite) TestNotificationsCapLimit() {
	t.purchaseRepo.On("FindByReceiver", mockCtx, testReceiver, 0, maxFeedLimit).
		Return([]purchase.Purchase{}, nil)

	res, err := t.subject.Notifications(mockCtx, testReceiver, 9999)
	t.NoError(err)
	t.Empty(res)
}
