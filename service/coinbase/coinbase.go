package coinbase

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/justunlock/goapi/base/ctx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// FallbackRate is used when the spot api is unreachable or returns garbage.
// A low fallback computes a larger required native amount, so the bias is
// always in the seller's favor.
var FallbackRate = decimal.NewFromInt(3000)

// Oracle returns the current native-coin price in stablecoin units. It never
// returns a non-positive rate: transport failures and bad payloads degrade
// to FallbackRate.
type Oracle interface {
	GetRate(c bCtx.Ctx) decimal.Decimal
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Url overrides the coinbase api base url, for tests
	Url string
	// Pair is the spot pair to quote, ex: ETH-USD
	Pair string
}

type spotPrice struct {
	Amount   string `json:"amount"`
	Base     string `json:"base"`
	Currency string `json:"currency"`
}

type spotResponse struct {
	Data spotPrice `json:"data"`
}
