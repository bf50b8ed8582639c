package coinbase

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/justunlock/goapi/base/ctx"
)

func newServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func Test_SpotRate(t *testing.T) {
	req := require.New(t)
	srv := newServer(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/prices/ETH-USD/spot", r.URL.Path)
		fmt.Fprint(w, `{"data":{"amount":"3123.45","base":"ETH","currency":"USD"}}`)
	})
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Url:        srv.URL,
	})
	rate := c.GetRate(bCtx.Background())
	req.True(rate.Equal(decimal.RequireFromString("3123.45")))
}

func Test_FallbackOnTransportFailure(t *testing.T) {
	req := require.New(t)
	srv := newServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Url:        srv.URL,
	})
	rate := c.GetRate(bCtx.Background())
	req.True(rate.Equal(FallbackRate))
}

func Test_FallbackOnNonPositiveRate(t *testing.T) {
	req := require.New(t)
	for _, amount := range []string{"0", "-1", "garbage"} {
		srv := newServer(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"data":{"amount":"%s","base":"ETH","currency":"USD"}}`, amount)
		})
		c := NewClient(&ClientCfg{
			HttpClient: http.Client{},
			Timeout:    time.Second,
			Url:        srv.URL,
		})
		rate := c.GetRate(bCtx.Background())
		req.True(rate.Equal(FallbackRate), "amount %s", amount)
		srv.Close()
	}
}

func Test_RateIsCached(t *testing.T) {
	req := require.New(t)
	calls := 0
	srv := newServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"data":{"amount":"3000","base":"ETH","currency":"USD"}}`)
	})
	defer srv.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Url:        srv.URL,
	})
	ctx := bCtx.Background()
	c.GetRate(ctx)
	c.GetRate(ctx)
	req.Equal(1, calls)
}
