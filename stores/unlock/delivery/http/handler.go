package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/delivery"
	"github.com/justunlock/goapi/base/metrics"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/unlock"
)

var met metrics.Service

type handler struct {
	unlock unlock.Usecase
}

func New(e *echo.Echo, unlock unlock.Usecase) {
	met = metrics.New("unlock")

	h := &handler{unlock}

	e.POST("/api/unlock", h.unlockContent)
}

type unlockResponse struct {
	Success     bool               `json:"success"`
	TargetUrl   string             `json:"targetUrl"`
	ContentType domain.ContentType `json:"contentType"`
}

func (h *handler) unlockContent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &unlock.UnlockParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, err)
	}

	p.WalletAddress = p.WalletAddress.ToLower()
	p.TransactionHash = p.TransactionHash.ToLower()

	res, err := h.unlock.Unlock(ctx, *p)
	switch err {
	case nil:
		met.BumpSum("unlock.verified", 1)
		return c.JSON(http.StatusOK, unlockResponse{
			Success:     true,
			TargetUrl:   res.TargetUrl,
			ContentType: res.ContentType,
		})
	case domain.ErrInvalidSignature:
		return delivery.MakeErrorResp(c, http.StatusUnauthorized, err)
	case domain.ErrPaymentNotVerified, domain.ErrTxReverted:
		met.BumpSum("unlock.rejected", 1)
		return delivery.MakeErrorResp(c, http.StatusBadRequest, err)
	case domain.ErrNotFound:
		return delivery.MakeErrorResp(c, http.StatusNotFound, err)
	case domain.ErrUpstream:
		return delivery.MakeErrorResp(c, http.StatusServiceUnavailable, err)
	default:
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, domain.ErrInternalServerError)
	}
}
