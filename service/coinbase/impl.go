package coinbase

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/log"
	"github.com/justunlock/goapi/service/cache"
	"github.com/justunlock/goapi/service/cache/provider/primitive"
)

const api = "https://api.coinbase.com/v2"

// rateTtl bounds oracle staleness. The unlock flow tolerates 2% rate drift,
// so one minute of staleness is acceptable.
const rateTtl = time.Minute

func NewClient(cfg *ClientCfg) Oracle {
	url := cfg.Url
	if url == "" {
		url = api
	}
	pair := cfg.Pair
	if pair == "" {
		pair = "ETH-USD"
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		url:     url,
		pair:    pair,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   rateTtl,
			Pfx:   "coinbase_cache",
			Cache: primitive.NewPrimitive("coinbase_cache", 1),
		}),
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	url     string
	pair    string
	cache   cache.Service
}

func (c *client) GetRate(ctx bCtx.Ctx) decimal.Decimal {
	var rate decimal.Decimal
	if err := c.cache.GetByFunc(ctx, c.pair, &rate, func() (interface{}, error) {
		res := c.getSpot(ctx)
		return &res, nil
	}); err != nil {
		// cache layer failure, not transport; still degrade safely
		ctx.WithField("err", err).Error("cache.GetByFunc failed")
		return FallbackRate
	}
	return rate
}

func (c *client) getSpot(ctx bCtx.Ctx) decimal.Decimal {
	url := fmt.Sprintf("%s/prices/%s/spot", c.url, c.pair)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("spot price fetch failed, using fallback rate")
		return FallbackRate
	}
	resp := &spotResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Warn("json.Unmarshal failed, using fallback rate")
		return FallbackRate
	}
	rate, err := decimal.NewFromString(resp.Data.Amount)
	if err != nil || !rate.IsPositive() {
		ctx.WithFields(log.Fields{
			"amount": resp.Data.Amount,
			"err":    err,
		}).Warn("invalid spot price, using fallback rate")
		return FallbackRate
	}
	return rate
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusCodeNotOk
	}
	return ioutil.ReadAll(resp.Body)
}
