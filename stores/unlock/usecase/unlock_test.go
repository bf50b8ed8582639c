package usecase

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bAbi "github.com/justunlock/goapi/base/abi"
	"github.com/justunlock/goapi/base/ctx"
	bEthereum "github.com/justunlock/goapi/base/ethereum"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	mListing "github.com/justunlock/goapi/domain/listing/mocks"
	"github.com/justunlock/goapi/domain/purchase"
	mPurchase "github.com/justunlock/goapi/domain/purchase/mocks"
	"github.com/justunlock/goapi/domain/secret"
	mSecret "github.com/justunlock/goapi/domain/secret/mocks"
	"github.com/justunlock/goapi/domain/unlock"
	"github.com/justunlock/goapi/service/chain"
	mChain "github.com/justunlock/goapi/service/chain/mocks"
	mCoinbase "github.com/justunlock/goapi/service/coinbase/mocks"
	mStorage "github.com/justunlock/goapi/service/storage/mocks"
)

var mockCtx = ctx.Background()

const (
	testSlug       = "my-locked-link"
	testTxHash     = domain.TxHash("0x9f2f6d7b84f2bce4e2cfe60bd1f70765a5ba8c15c4e0d4c9e7a2d73146f08a31")
	testContract   = "0x1000000000000000000000000000000000000001"
	testStablecoin = "0x2000000000000000000000000000000000000002"
	testReceiver   = "0x3000000000000000000000000000000000000003"
)

type unlockSuite struct {
	suite.Suite
	listingRepo  *mListing.Repo
	secretRepo   *mSecret.Repo
	purchaseRepo *mPurchase.Repo
	chainClient  *mChain.Client
	oracle       *mCoinbase.Oracle
	storage      *mStorage.Service
	subject      unlock.Usecase

	buyerKey  *ecdsa.PrivateKey
	buyerAddr domain.Address
}

func TestUnlock(t *testing.T) {
	suite.Run(t, new(unlockSuite))
}

func (t *unlockSuite) SetupTest() {
	t.listingRepo = &mListing.Repo{}
	t.secretRepo = &mSecret.Repo{}
	t.purchaseRepo = &mPurchase.Repo{}
	t.chainClient = &mChain.Client{}
	t.oracle = &mCoinbase.Oracle{}
	t.storage = &mStorage.Service{}
	t.subject = New(unlock.DeploymentCfg{
		ChainId:            domain.ChainId(8453),
		ContractAddress:    domain.Address(testContract),
		StablecoinAddress:  domain.Address(testStablecoin),
		StablecoinDecimals: 6,
		NativeDecimals:     18,
	}, t.listingRepo, t.secretRepo, t.purchaseRepo, t.chainClient, t.oracle, t.storage)

	key, pub, err := bEthereum.GenerateKey()
	t.Require().NoError(err)
	t.buyerKey = key
	t.buyerAddr = domain.Address(crypto.PubkeyToAddress(*pub).Hex()).ToLower()
}

func (t *unlockSuite) sign(slug string, key *ecdsa.PrivateKey) string {
	msg := []byte(fmt.Sprintf(unlock.SigningMsgTemplate, slug))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	t.Require().NoError(err)
	return hexutil.Encode(sig)
}

func (t *unlockSuite) params() unlock.UnlockParams {
	return unlock.UnlockParams{
		ContentId:       testSlug,
		TransactionHash: testTxHash,
		WalletAddress:   t.buyerAddr,
		Signature:       t.sign(testSlug, t.buyerKey),
	}
}

func (t *unlockSuite) listing(price string) *listing.Listing {
	return &listing.Listing{
		Slug:            testSlug,
		Title:           "hidden essay",
		Price:           price,
		ReceiverAddress: domain.Address(testReceiver),
		CreatorAddress:  domain.Address(testReceiver),
		CreatedAt:       time.Now().Add(-time.Hour),
	}
}

func (t *unlockSuite) paidLog(payer, receiver, token common.Address, slug string, amount *big.Int) *types.Log {
	data, err := bAbi.PaywallABI.Events["Paid"].Inputs.NonIndexed().Pack(amount, token)
	t.Require().NoError(err)
	return &types.Log{
		Address: common.HexToAddress(testContract),
		Topics: []common.Hash{
			bAbi.PaywallABI.Events["Paid"].ID,
			common.BytesToHash(payer.Bytes()),
			common.BytesToHash(receiver.Bytes()),
			bAbi.HashLinkId(slug),
		},
		Data: data,
	}
}

func (t *unlockSuite) buyer() common.Address {
	return common.HexToAddress(t.buyerAddr.ToLowerStr())
}

func (t *unlockSuite) stubHappyPath(logs ...*types.Log) {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)
	t.chainClient.On("TransactionReceipt", mockCtx, domain.ChainId(8453), testTxHash).
		Return(&chain.Receipt{Success: true, Logs: logs}, nil)
	t.secretRepo.On("FindOne", mockCtx, secret.SecretId{Slug: testSlug}).
		Return(&secret.Secret{Slug: testSlug, ContentType: domain.ContentTypeUrl, Payload: "https://example.com/essay"}, nil)
	t.purchaseRepo.On("Create", mockCtx, mock.Anything).Return(nil)
	t.listingRepo.On("RecordSale", mockCtx, listing.ListingId{Slug: testSlug}, mock.Anything).Return(nil)
}

func (t *unlockSuite) TestStablecoinExactAmount() {
	t.stubHappyPath(t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000)))

	res, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
	t.Equal("https://example.com/essay", res.TargetUrl)
	t.Equal(domain.ContentTypeUrl, res.ContentType)
	t.purchaseRepo.AssertCalled(t.T(), "Create", mockCtx, mock.MatchedBy(func(p purchase.Purchase) bool {
		return p.Slug == testSlug && p.TxHash == testTxHash && p.BuyerAddress == t.buyerAddr && p.Amount == 3
	}))
	t.listingRepo.AssertCalled(t.T(), "RecordSale", mockCtx, listing.ListingId{Slug: testSlug}, mock.Anything)
}

func (t *unlockSuite) TestStablecoinUnderpaid() {
	t.stubHappyPath(t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(2_999_999)))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrPaymentNotVerified)
}

func (t *unlockSuite) TestStablecoinOverpaid() {
	t.stubHappyPath(t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(5_000_000)))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
}

// with price 3 and rate 3000 the exact native amount is 1e15 wei and the
// tolerated minimum is 0.98e15
func (t *unlockSuite) nativeLog(wei int64) *types.Log {
	return t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.Address{}, testSlug, big.NewInt(wei))
}

func (t *unlockSuite) TestNativeWithinTolerance() {
	t.oracle.On("GetRate", mockCtx).Return(decimal.NewFromInt(3000))
	t.stubHappyPath(t.nativeLog(980_000_000_000_000))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
}

func (t *unlockSuite) TestNativeBelowTolerance() {
	t.oracle.On("GetRate", mockCtx).Return(decimal.NewFromInt(3000))
	t.stubHappyPath(t.nativeLog(979_999_999_999_999))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrPaymentNotVerified)
}

func (t *unlockSuite) TestNativeExactAmount() {
	t.oracle.On("GetRate", mockCtx).Return(decimal.NewFromInt(3000))
	t.stubHappyPath(t.nativeLog(1_000_000_000_000_000))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
}

func (t *unlockSuite) TestUnknownCurrencyRejected() {
	other := common.HexToAddress("0x4000000000000000000000000000000000000004")
	t.stubHappyPath(t.paidLog(t.buyer(), common.HexToAddress(testReceiver), other, testSlug, big.NewInt(10_000_000)))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrPaymentNotVerified)
}

func (t *unlockSuite) TestReceiverMismatch() {
	stranger := common.HexToAddress("0x5000000000000000000000000000000000000005")
	t.stubHappyPath(t.paidLog(t.buyer(), stranger, common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000)))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrPaymentNotVerified)
}

func (t *unlockSuite) TestPaymentForAnotherLink() {
	t.stubHappyPath(t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), "some-other-link", big.NewInt(3_000_000)))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrPaymentNotVerified)
}

func (t *unlockSuite) TestPayerIsNotCaller() {
	otherPayer := common.HexToAddress("0x6000000000000000000000000000000000000006")
	t.stubHappyPath(t.paidLog(otherPayer, common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000)))

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrPaymentNotVerified)
}

func (t *unlockSuite) TestNoiseLogsAreSkipped() {
	foreign := &types.Log{
		Address: common.HexToAddress("0x7000000000000000000000000000000000000007"),
		Topics:  []common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))},
	}
	underpaid := t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(1))
	valid := t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000))
	t.stubHappyPath(foreign, underpaid, valid)

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
}

func (t *unlockSuite) TestRevertedTransaction() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)
	t.chainClient.On("TransactionReceipt", mockCtx, domain.ChainId(8453), testTxHash).
		Return(&chain.Receipt{Success: false}, nil)

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrTxReverted)
}

func (t *unlockSuite) TestReceiptNotFound() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)
	t.chainClient.On("TransactionReceipt", mockCtx, domain.ChainId(8453), testTxHash).
		Return(nil, domain.ErrNotFound)

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *unlockSuite) TestUnknownListing() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Unlock(mockCtx, t.params())
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *unlockSuite) TestSignatureBySomeoneElse() {
	strangerKey, _, err := bEthereum.GenerateKey()
	t.Require().NoError(err)
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)

	params := t.params()
	params.Signature = t.sign(testSlug, strangerKey)
	_, err = t.subject.Unlock(mockCtx, params)
	t.ErrorIs(err, domain.ErrInvalidSignature)
}

func (t *unlockSuite) TestSignatureForAnotherLink() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)

	params := t.params()
	params.Signature = func() string {
		msg := []byte(fmt.Sprintf(unlock.SigningMsgTemplate, "different-link"))
		sig, err := crypto.Sign(accounts.TextHash(msg), t.buyerKey)
		t.Require().NoError(err)
		return hexutil.Encode(sig)
	}()
	_, err := t.subject.Unlock(mockCtx, params)
	t.ErrorIs(err, domain.ErrInvalidSignature)
}

func (t *unlockSuite) TestMalformedSignature() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)

	params := t.params()
	params.Signature = "not-hex-at-all"
	_, err := t.subject.Unlock(mockCtx, params)
	t.ErrorIs(err, domain.ErrInvalidSignature)
}

func (t *unlockSuite) TestDuplicateUnlockKeepsCounter() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)
	t.chainClient.On("TransactionReceipt", mockCtx, domain.ChainId(8453), testTxHash).
		Return(&chain.Receipt{Success: true, Logs: []*types.Log{
			t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000)),
		}}, nil)
	t.secretRepo.On("FindOne", mockCtx, secret.SecretId{Slug: testSlug}).
		Return(&secret.Secret{Slug: testSlug, ContentType: domain.ContentTypeUrl, Payload: "https://example.com/essay"}, nil)
	t.purchaseRepo.On("Create", mockCtx, mock.Anything).Return(domain.ErrConflict)

	res, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
	t.Equal("https://example.com/essay", res.TargetUrl)
	t.listingRepo.AssertNotCalled(t.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (t *unlockSuite) TestBookkeepingFailureIsSwallowed() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)
	t.chainClient.On("TransactionReceipt", mockCtx, domain.ChainId(8453), testTxHash).
		Return(&chain.Receipt{Success: true, Logs: []*types.Log{
			t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000)),
		}}, nil)
	t.secretRepo.On("FindOne", mockCtx, secret.SecretId{Slug: testSlug}).
		Return(&secret.Secret{Slug: testSlug, ContentType: domain.ContentTypeUrl, Payload: "https://example.com/essay"}, nil)
	t.purchaseRepo.On("Create", mockCtx, mock.Anything).Return(errors.New("mongo is down"))

	res, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
	t.Equal("https://example.com/essay", res.TargetUrl)
}

func (t *unlockSuite) TestUploadedSecretGetsSignedUrl() {
	t.listingRepo.On("FindOne", mockCtx, listing.ListingId{Slug: testSlug}).Return(t.listing("3"), nil)
	t.chainClient.On("TransactionReceipt", mockCtx, domain.ChainId(8453), testTxHash).
		Return(&chain.Receipt{Success: true, Logs: []*types.Log{
			t.paidLog(t.buyer(), common.HexToAddress(testReceiver), common.HexToAddress(testStablecoin), testSlug, big.NewInt(3_000_000)),
		}}, nil)
	t.secretRepo.On("FindOne", mockCtx, secret.SecretId{Slug: testSlug}).
		Return(&secret.Secret{Slug: testSlug, ContentType: domain.ContentTypeFile, Payload: "my-locked-link/abc-report.pdf"}, nil)
	t.storage.On("SignedUrl", mockCtx, "my-locked-link/abc-report.pdf").
		Return("https://storage.example.com/signed", nil)
	t.purchaseRepo.On("Create", mockCtx, mock.Anything).Return(nil)
	t.listingRepo.On("RecordSale", mockCtx, listing.ListingId{Slug: testSlug}, mock.Anything).Return(nil)

	res, err := t.subject.Unlock(mockCtx, t.params())
	t.NoError(err)
	t.Equal("https://storage.example.com/signed", res.TargetUrl)
	t.Equal(domain.ContentTypeFile, res.ContentType)
}

func TestRequiredNativeAmount(t *testing.T) {
	cases := []struct {
		price    string
		rate     int64
		expected string
	}{
		{"3", 3000, "980000000000000"},
		{"10", 2500, "3920000000000000"},
		// non terminating division rounds up, never down
		{"1", 3, "326666666666666667"},
	}
	for _, tc := range cases {
		price, err := decimal.NewFromString(tc.price)
		if err != nil {
			t.Fatal(err)
		}
		got := requiredNativeAmount(price, decimal.NewFromInt(tc.rate), 18)
		if got.String() != tc.expected {
			t.Fatalf("price %s rate %d: expected %s got %s", tc.price, tc.rate, tc.expected, got.String())
		}
	}
}
