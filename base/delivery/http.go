package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/service/query"
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

// statusOverride maps ledger error kinds onto http statuses so handlers can
// hand errors over without inspecting them
func statusOverride(err error, status int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, query.ErrNotFound),
		errors.Is(err, domain.ErrNotListed),
		errors.Is(err, domain.ErrNoProceeds):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyListed), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotApproved):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrInvalidPrice), errors.Is(err, domain.ErrPriceNotMet):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	}
	return status
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusOverride(err, status)
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
