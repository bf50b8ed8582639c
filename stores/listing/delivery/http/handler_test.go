package http

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/delivery"
	bEthereum "github.com/justunlock/goapi/base/ethereum"
	bValidator "github.com/justunlock/goapi/base/validator"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/listing"
	mListing "github.com/justunlock/goapi/domain/listing/mocks"
	authMiddleware "github.com/justunlock/goapi/stores/auth/delivery/http/middleware"
	authUsecase "github.com/justunlock/goapi/stores/auth/usecase"
)

type creator struct {
	key     *ecdsa.PrivateKey
	address domain.Address
}

func newCreator(t *testing.T) creator {
	key, pub, err := bEthereum.GenerateKey()
	require.NoError(t, err)
	return creator{
		key:     key,
		address: domain.Address(crypto.PubkeyToAddress(*pub).Hex()).ToLower(),
	}
}

func (cr creator) signCreate(t *testing.T, slug string) string {
	msg := []byte(fmt.Sprintf(listing.CreateMsgTemplate, slug))
	sig, err := crypto.Sign(accounts.TextHash(msg), cr.key)
	require.NoError(t, err)
	return hexutil.Encode(sig)
}

func doCreate(t *testing.T, uc listing.Usecase, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = bValidator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	auth := authUsecase.New("test-secret")
	New(e, uc, authMiddleware.New(auth, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/create", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateEndpointSuccessBody(t *testing.T) {
	cr := newCreator(t)
	uc := &mListing.Usecase{}
	uc.On("Create", mock.Anything, cr.address, mock.Anything).
		Return(&listing.Listing{Slug: "my-locked-essay", CreatorAddress: cr.address}, nil)

	body := `{"slug":"my-locked-essay","title":"essay","price":"3","receiverAddress":"0x3000000000000000000000000000000000000003","contentType":"url","targetUrl":"https://example.com/essay"}`
	rec := doCreate(t, uc, body, map[string]string{
		headerAddress:   string(cr.address),
		headerSignature: cr.signCreate(t, "my-locked-essay"),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// success body is flat, no envelope
	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "my-locked-essay", resp.Slug)
}

func TestCreateEndpointDuplicateSlugBody(t *testing.T) {
	cr := newCreator(t)
	uc := &mListing.Usecase{}
	uc.On("Create", mock.Anything, cr.address, mock.Anything).
		Return(nil, domain.ErrConflict)

	body := `{"slug":"my-locked-essay","title":"essay","price":"3","receiverAddress":"0x3000000000000000000000000000000000000003","contentType":"url","targetUrl":"https://example.com/essay"}`
	rec := doCreate(t, uc, body, map[string]string{
		headerAddress:   string(cr.address),
		headerSignature: cr.signCreate(t, "my-locked-essay"),
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp delivery.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestCreateEndpointBadSignature(t *testing.T) {
	cr := newCreator(t)
	stranger := newCreator(t)
	uc := &mListing.Usecase{}

	body := `{"slug":"my-locked-essay","title":"essay","price":"3","receiverAddress":"0x3000000000000000000000000000000000000003","contentType":"url","targetUrl":"https://example.com/essay"}`
	rec := doCreate(t, uc, body, map[string]string{
		headerAddress:   string(cr.address),
		headerSignature: stranger.signCreate(t, "my-locked-essay"),
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp delivery.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	uc.AssertNotCalled(t, "Create")
}
