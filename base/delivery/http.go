package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		if errors.Is(err, domain.ErrConflict) {
			status = http.StatusConflict
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// MakeErrorResp emits the public failure body `{error}` used by the unlock
// and create endpoints. The data/status envelope stays on the account,
// notification and admin endpoints.
func MakeErrorResp(c echo.Context, status int, data interface{}) error {
	msg := http.StatusText(status)
	switch v := data.(type) {
	case error:
		if errors.Is(v, domain.ErrNotFound) || errors.Is(v, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		if errors.Is(v, domain.ErrConflict) {
			status = http.StatusConflict
		}
		msg = v.Error()
	case string:
		msg = v
	}
	return c.JSON(status, ErrorResponse{msg})
}
