package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/domain"
)

// price bounds in stablecoin units
var (
	MinPrice = decimal.NewFromInt(1)
	MaxPrice = decimal.NewFromInt(10000)
)

// CreateMsgTemplate is the message a creator signs to publish a listing.
// %s is the listing slug.
const CreateMsgTemplate = "Create Lock: %s"

const MaxUploadBytes = 25 << 20

type ListingId struct {
	Slug string `json:"slug" bson:"slug"`
}

// Listing is a creator's locked offer. The hidden payload lives in a
// separate Secret document so listing reads never expose it.
// Price is kept as a decimal string in storage and parsed on use.
type Listing struct {
	Slug            string         `json:"slug" bson:"slug"`
	Title           string         `json:"title" bson:"title"`
	Price           string         `json:"price" bson:"price"`
	ReceiverAddress domain.Address `json:"receiverAddress" bson:"receiverAddress"`
	CreatorAddress  domain.Address `json:"creatorAddress" bson:"creatorAddress"`
	SaleCount       int64          `json:"saleCount" bson:"saleCount"`
	LastSaleAt      *time.Time     `json:"lastSaleAt,omitempty" bson:"lastSaleAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}

func (l *Listing) ToId() ListingId {
	return ListingId{Slug: l.Slug}
}

func (l *Listing) PriceDecimal() (decimal.Decimal, error) {
	p, err := decimal.NewFromString(l.Price)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidNumberFormat
	}
	return p, nil
}

type Repo interface {
	FindOne(c ctx.Ctx, id ListingId) (*Listing, error)
	FindByCreator(c ctx.Ctx, creator domain.Address, offset, limit int) ([]Listing, error)
	FindAll(c ctx.Ctx, offset, limit int) ([]Listing, error)
	Count(c ctx.Ctx) (int, error)
	Create(c ctx.Ctx, val Listing) error
	// RecordSale atomically increments the sale counter and stamps the last
	// sale time. Read-modify-write is not an acceptable implementation.
	RecordSale(c ctx.Ctx, id ListingId, at time.Time) error
	Delete(c ctx.Ctx, id ListingId) error
}

type CreateParams struct {
	Slug            string             `json:"slug"`
	Title           string             `json:"title"`
	Price           string             `json:"price"`
	ReceiverAddress string             `json:"receiverAddress"`
	ContentType     domain.ContentType `json:"contentType"`
	TargetUrl       string             `json:"targetUrl"`
	FileName        string             `json:"-"`
	FileBody        []byte             `json:"-"`
}

type Usecase interface {
	Create(c ctx.Ctx, creator domain.Address, params CreateParams) (*Listing, error)
	Get(c ctx.Ctx, id ListingId) (*Listing, error)
	GetByCreator(c ctx.Ctx, creator domain.Address, offset, limit int) ([]Listing, error)
	GetAll(c ctx.Ctx, offset, limit int) ([]Listing, error)
	Delete(c ctx.Ctx, requester domain.Address, id ListingId) error
}
