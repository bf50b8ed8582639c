package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/delivery"
	bValidator "github.com/justunlock/goapi/base/validator"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/unlock"
	mUnlock "github.com/justunlock/goapi/domain/unlock/mocks"
)

const unlockReqBody = `{
	"contentId": "my-locked-link",
	"transactionHash": "0x9f2f6d7b84f2bce4e2cfe60bd1f70765a5ba8c15c4e0d4c9e7a2d73146f08a31",
	"walletAddress": "0xCE4468e7CE84AcEB74363F4Ea64E5A038176F369",
	"signature": "0xdeadbeef"
}`

func doUnlock(t *testing.T, uc unlock.Usecase, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = bValidator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc)

	req := httptest.NewRequest(http.MethodPost, "/api/unlock", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUnlockEndpointSuccess(t *testing.T) {
	uc := &mUnlock.Usecase{}
	uc.On("Unlock", mock.Anything, unlock.UnlockParams{
		ContentId:       "my-locked-link",
		TransactionHash: domain.TxHash("0x9f2f6d7b84f2bce4e2cfe60bd1f70765a5ba8c15c4e0d4c9e7a2d73146f08a31"),
		WalletAddress:   domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369"),
		Signature:       "0xdeadbeef",
	}).Return(&unlock.UnlockResult{
		TargetUrl:   "https://example.com/essay",
		ContentType: domain.ContentTypeUrl,
	}, nil)

	rec := doUnlock(t, uc, unlockReqBody)
	require.Equal(t, http.StatusOK, rec.Code)

	// success body is flat, no envelope
	var resp unlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://example.com/essay", resp.TargetUrl)
	assert.Equal(t, domain.ContentTypeUrl, resp.ContentType)
	uc.AssertExpectations(t)
}

func TestUnlockEndpointStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidSignature, http.StatusUnauthorized},
		{domain.ErrPaymentNotVerified, http.StatusBadRequest},
		{domain.ErrTxReverted, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUpstream, http.StatusServiceUnavailable},
		{domain.ErrInternalServerError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		uc := &mUnlock.Usecase{}
		uc.On("Unlock", mock.Anything, mock.Anything).Return(nil, tc.err)

		rec := doUnlock(t, uc, unlockReqBody)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())

		var resp delivery.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error, tc.err.Error())
	}
}

func TestUnlockEndpointGenericInternalError(t *testing.T) {
	uc := &mUnlock.Usecase{}
	uc.On("Unlock", mock.Anything, mock.Anything).
		Return(nil, errors.New("mongo: socket was unexpectedly closed"))

	rec := doUnlock(t, uc, unlockReqBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp delivery.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrInternalServerError.Error(), resp.Error)
}

func TestUnlockEndpointRejectsMissingFields(t *testing.T) {
	uc := &mUnlock.Usecase{}
	rec := doUnlock(t, uc, `{"contentId": "my-locked-link"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Unlock")
}
