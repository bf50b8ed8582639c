package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/delivery"
	bEthereum "github.com/justunlock/goapi/base/ethereum"
	"github.com/justunlock/goapi/base/metrics"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	authMiddleware "github.com/justunlock/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

const (
	headerSignature = "x-signature"
	headerAddress   = "x-address"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

type handler struct {
	listing listing.Usecase
}

func New(e *echo.Echo, uc listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("listing")

	h := &handler{uc}

	e.POST("/api/create", h.create)
	e.GET("/api/links/:slug", h.get)
	e.GET("/api/my-links", h.myLinks, authMiddleware.Auth())
	e.DELETE("/api/links/:slug", h.delete, authMiddleware.Auth())
}

type createResponse struct {
	Success bool   `json:"success"`
	Slug    string `json:"slug"`
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := bindCreateParams(c)
	if err != nil {
		return delivery.MakeErrorResp(c, http.StatusBadRequest, "invalid params")
	}

	creator := domain.Address(c.Request().Header.Get(headerAddress)).ToLower()
	signature := c.Request().Header.Get(headerSignature)
	if creator.IsEmpty() || signature == "" {
		return delivery.MakeErrorResp(c, http.StatusUnauthorized, domain.ErrInvalidSignature)
	}

	msg := fmt.Sprintf(listing.CreateMsgTemplate, p.Slug)
	valid, err := bEthereum.ValidateMsgSignature([]byte(msg), signature, creator.ToLowerStr())
	if err != nil || !valid {
		return delivery.MakeErrorResp(c, http.StatusUnauthorized, domain.ErrInvalidSignature)
	}

	res, err := h.listing.Create(ctx, creator, *p)
	switch err {
	case nil:
		met.BumpSum("create.count", 1, "contentType", string(p.ContentType))
		return c.JSON(http.StatusCreated, createResponse{Success: true, Slug: res.Slug})
	case domain.ErrConflict:
		return delivery.MakeErrorResp(c, http.StatusConflict, err)
	case domain.ErrBadParamInput, domain.ErrInvalidAddress,
		domain.ErrInvalidNumberFormat, domain.ErrUnsupportedContentType:
		return delivery.MakeErrorResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeErrorResp(c, http.StatusInternalServerError, domain.ErrInternalServerError)
	}
}

func bindCreateParams(c echo.Context) (*listing.CreateParams, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		p := &listing.CreateParams{}
		if err := c.Bind(p); err != nil {
			return nil, err
		}
		return p, nil
	}

	p := &listing.CreateParams{
		Slug:            c.FormValue("slug"),
		Title:           c.FormValue("title"),
		Price:           c.FormValue("price"),
		ReceiverAddress: c.FormValue("receiverAddress"),
		ContentType:     domain.ContentType(c.FormValue("contentType")),
		TargetUrl:       c.FormValue("targetUrl"),
	}

	fh, err := c.FormFile("file")
	if err != nil {
		// file is only mandatory for upload types, the usecase checks that
		return p, nil
	}
	if fh.Size > listing.MaxUploadBytes {
		return nil, domain.ErrBadParamInput
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	body, err := io.ReadAll(io.LimitReader(f, listing.MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > listing.MaxUploadBytes {
		return nil, domain.ErrBadParamInput
	}
	p.FileName = fh.Filename
	p.FileBody = body
	return p, nil
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Get(ctx, listing.ListingId{Slug: c.Param("slug")})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type pagingParams struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

func (p *pagingParams) normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

func (h *handler) myLinks(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &pagingParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	p.normalize()

	res, err := h.listing.GetByCreator(ctx, address, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	err := h.listing.Delete(ctx, address, listing.ListingId{Slug: c.Param("slug")})
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "deleted")
	case domain.ErrForbidden:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
