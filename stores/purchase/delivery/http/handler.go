package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/delivery"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	"github.com/justunlock/goapi/domain/purchase"
	authMiddleware "github.com/justunlock/goapi/stores/auth/delivery/http/middleware"
)

const (
	defaultFeedLimit = 10
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type handler struct {
	purchase purchase.Usecase
	listing  listing.Usecase
}

func New(e *echo.Echo, purchase purchase.Usecase, listing listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{purchase, listing}

	e.GET("/api/notifications", h.notifications, authMiddleware.Auth())

	g := e.Group("/api/admin", authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.GET("/stats", h.stats)
	g.GET("/links", h.links)
}

func (h *handler) notifications(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		Limit int `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Limit <= 0 {
		p.Limit = defaultFeedLimit
	}

	res, err := h.purchase.Notifications(ctx, address, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) stats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	stats, err := h.purchase.Stats(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	recent, err := h.purchase.Recent(ctx, defaultFeedLimit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		*purchase.Stats
		Recent []purchase.Purchase `json:"recent"`
	}{stats, recent}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) links(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	res, err := h.listing.GetAll(ctx, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
