package usecase

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	bAbi "github.com/justunlock/goapi/base/abi"
	"github.com/justunlock/goapi/base/ctx"
	bEthereum "github.com/justunlock/goapi/base/ethereum"
	"github.com/justunlock/goapi/base/log"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	"github.com/justunlock/goapi/domain/purchase"
	"github.com/justunlock/goapi/domain/secret"
	"github.com/justunlock/goapi/domain/unlock"
	"github.com/justunlock/goapi/service/chain"
	"github.com/justunlock/goapi/service/coinbase"
	"github.com/justunlock/goapi/service/storage"
)

// native payments get a slack of toleranceNum/toleranceDen of the quoted
// amount to absorb rate drift between quoting and mining
var (
	toleranceNum = decimal.NewFromInt(98)
	toleranceDen = decimal.NewFromInt(100)
)

type impl struct {
	deployment   unlock.DeploymentCfg
	listingRepo  listing.Repo
	secretRepo   secret.Repo
	purchaseRepo purchase.Repo
	chainClient  chain.Client
	oracle       coinbase.Oracle
	storage      storage.Service
}

func New(
	deployment unlock.DeploymentCfg,
	listingRepo listing.Repo,
	secretRepo secret.Repo,
	purchaseRepo purchase.Repo,
	chainClient chain.Client,
	oracle coinbase.Oracle,
	storage storage.Service,
) unlock.Usecase {
	return &impl{
		deployment:   deployment,
		listingRepo:  listingRepo,
		secretRepo:   secretRepo,
		purchaseRepo: purchaseRepo,
		chainClient:  chainClient,
		oracle:       oracle,
		storage:      storage,
	}
}

func (im *impl) Unlock(c ctx.Ctx, params unlock.UnlockParams) (*unlock.UnlockResult, error) {
	lst, err := im.listingRepo.FindOne(c, listing.ListingId{Slug: params.ContentId})
	if err != nil {
		return nil, err
	}

	if err := im.authenticate(c, params); err != nil {
		return nil, err
	}

	amountPaid, err := im.verifyPayment(c, lst, params)
	if err != nil {
		return nil, err
	}

	res, err := im.resolveContent(c, params.ContentId)
	if err != nil {
		return nil, err
	}

	im.recordSale(c, lst, params, amountPaid)

	return res, nil
}

// authenticate checks the wallet owner signed the unlock message for this
// exact content id. A signature minted for another link does not transfer.
func (im *impl) authenticate(c ctx.Ctx, params unlock.UnlockParams) error {
	msg := fmt.Sprintf(unlock.SigningMsgTemplate, params.ContentId)
	valid, err := bEthereum.ValidateMsgSignature([]byte(msg), params.Signature, params.WalletAddress.ToLowerStr())
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"wallet":  params.WalletAddress,
			"content": params.ContentId,
		}).Warn("failed to recover signature")
		return domain.ErrInvalidSignature
	}
	if !valid {
		return domain.ErrInvalidSignature
	}
	return nil
}

// verifyPayment fetches the receipt and scans its logs for one payment event
// that satisfies every check. The first satisfying log wins; every rejection
// reason collapses into domain.ErrPaymentNotVerified so the response leaks
// nothing about which check failed.
func (im *impl) verifyPayment(c ctx.Ctx, lst *listing.Listing, params unlock.UnlockParams) (decimal.Decimal, error) {
	receipt, err := im.chainClient.TransactionReceipt(c, im.deployment.ChainId, params.TransactionHash)
	if err != nil {
		if err == domain.ErrNotFound {
			return decimal.Zero, domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": params.TransactionHash,
		}).Error("chainClient.TransactionReceipt failed")
		return decimal.Zero, domain.ErrUpstream
	}
	if !receipt.Success {
		return decimal.Zero, domain.ErrTxReverted
	}

	price, err := lst.PriceDecimal()
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"slug":  lst.Slug,
			"price": lst.Price,
		}).Error("stored price is not a number")
		return decimal.Zero, err
	}

	contract := common.HexToAddress(im.deployment.ContractAddress.ToLowerStr())
	linkIdHash := bAbi.HashLinkId(params.ContentId)
	receiver := common.HexToAddress(lst.ReceiverAddress.ToLowerStr())
	payer := common.HexToAddress(params.WalletAddress.ToLowerStr())

	for _, lg := range receipt.Logs {
		if lg.Address != contract {
			continue
		}
		paid, err := bAbi.ToPaidLog(lg)
		if err != nil {
			continue
		}
		if paid.LinkIdHash != linkIdHash {
			continue
		}
		if paid.Receiver != receiver {
			continue
		}
		amountPaid, ok := im.checkAmount(c, price, paid)
		if !ok {
			continue
		}
		if paid.Payer != payer {
			continue
		}
		return amountPaid, nil
	}
	return decimal.Zero, domain.ErrPaymentNotVerified
}

// checkAmount validates the transferred currency and amount against the
// listing price. The returned value is the paid amount normalized to
// stablecoin units for bookkeeping.
func (im *impl) checkAmount(c ctx.Ctx, price decimal.Decimal, paid *bAbi.PaidLog) (decimal.Decimal, bool) {
	amount := decimal.NewFromBigInt(paid.Amount, 0)
	switch {
	case domain.Address(paid.Token.Hex()).Equals(im.deployment.StablecoinAddress):
		required := price.Shift(im.deployment.StablecoinDecimals).Ceil()
		if amount.LessThan(required) {
			return decimal.Zero, false
		}
		return amount.Shift(-im.deployment.StablecoinDecimals), true
	case domain.Address(paid.Token.Hex()).Equals(domain.NativeCurrencyAddress):
		rate := im.oracle.GetRate(c)
		required := requiredNativeAmount(price, rate, im.deployment.NativeDecimals)
		if amount.LessThan(required) {
			return decimal.Zero, false
		}
		return amount.Shift(-im.deployment.NativeDecimals).Mul(rate), true
	default:
		return decimal.Zero, false
	}
}

// requiredNativeAmount converts the stablecoin price into the smallest
// native unit at the given rate, applies the tolerance, and rounds up so the
// requirement never drops below the discounted exact value.
func requiredNativeAmount(price, rate decimal.Decimal, nativeDecimals int32) decimal.Decimal {
	num := price.Shift(nativeDecimals).Mul(toleranceNum)
	den := rate.Mul(toleranceDen)
	q, r := num.QuoRem(den, 0)
	if !r.IsZero() {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q
}

func (im *impl) resolveContent(c ctx.Ctx, slug string) (*unlock.UnlockResult, error) {
	sec, err := im.secretRepo.FindOne(c, secret.SecretId{Slug: slug})
	if err != nil {
		return nil, err
	}
	target := sec.Payload
	if sec.ContentType.IsUploaded() {
		target, err = im.storage.SignedUrl(c, sec.Payload)
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"slug": slug,
			}).Error("storage.SignedUrl failed")
			return nil, err
		}
	}
	return &unlock.UnlockResult{TargetUrl: target, ContentType: sec.ContentType}, nil
}

// recordSale persists the purchase receipt and bumps the listing counter.
// The payment is already verified at this point, so bookkeeping failures are
// logged and swallowed rather than surfaced to the buyer. A duplicate
// (slug, txHash) pair means this unlock was recorded before; the counter is
// not bumped again.
func (im *impl) recordSale(c ctx.Ctx, lst *listing.Listing, params unlock.UnlockParams, amountPaid decimal.Decimal) {
	now := time.Now()
	err := im.purchaseRepo.Create(c, purchase.Purchase{
		Slug:            lst.Slug,
		TxHash:          params.TransactionHash,
		BuyerAddress:    params.WalletAddress.ToLower(),
		ReceiverAddress: lst.ReceiverAddress.ToLower(),
		Amount:          purchase.AmountFromDecimal(amountPaid),
		CreatedAt:       now,
	})
	if err == domain.ErrConflict {
		c.WithFields(log.Fields{
			"slug":   lst.Slug,
			"txHash": params.TransactionHash,
		}).Info("purchase already recorded")
		return
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"slug":   lst.Slug,
			"txHash": params.TransactionHash,
		}).Error("purchaseRepo.Create failed")
		return
	}
	if err := im.listingRepo.RecordSale(c, lst.ToId(), now); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"slug": lst.Slug,
		}).Error("listingRepo.RecordSale failed")
	}
}
