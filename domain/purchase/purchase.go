package purchase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
)

type PurchaseId struct {
	Slug   string        `json:"slug" bson:"slug"`
	TxHash domain.TxHash `json:"txHash" bson:"txHash"`
}

// Purchase is an immutable receipt of a verified unlock. Amount is
// normalized to stablecoin units regardless of the currency transferred.
type Purchase struct {
	Slug            string         `json:"slug" bson:"slug"`
	TxHash          domain.TxHash  `json:"txHash" bson:"txHash"`
	BuyerAddress    domain.Address `json:"buyerAddress" bson:"buyerAddress"`
	ReceiverAddress domain.Address `json:"receiverAddress" bson:"receiverAddress"`
	Amount          float64        `json:"amount" bson:"amount"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}

func (p *Purchase) ToId() PurchaseId {
	return PurchaseId{Slug: p.Slug, TxHash: p.TxHash}
}

func AmountFromDecimal(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Notification is a sale decorated for the creator's feed. BuyerName is the
// buyer's reverse-resolved ens name, empty when none is registered.
type Notification struct {
	Purchase
	BuyerName string `json:"buyerName,omitempty"`
}

type Stats struct {
	TotalListings  int     `json:"totalListings"`
	TotalPurchases int     `json:"totalPurchases"`
	GrossVolume    float64 `json:"grossVolume"`
}

type Repo interface {
	// Create inserts a purchase. Returns domain.ErrConflict when the same
	// (slug, txHash) pair was already recorded.
	Create(c ctx.Ctx, val Purchase) error
	FindOne(c ctx.Ctx, id PurchaseId) (*Purchase, error)
	FindByReceiver(c ctx.Ctx, receiver domain.Address, offset, limit int) ([]Purchase, error)
	FindRecent(c ctx.Ctx, offset, limit int) ([]Purchase, error)
	Count(c ctx.Ctx) (int, error)
	GrossVolume(c ctx.Ctx) (float64, error)
}

type Usecase interface {
	// Notifications lists recent sales of the caller's listings, newest first.
	Notifications(c ctx.Ctx, receiver domain.Address, limit int) ([]Notification, error)
	Stats(c ctx.Ctx) (*Stats, error)
	Recent(c ctx.Ctx, limit int) ([]Purchase, error)
}
