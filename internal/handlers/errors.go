package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nazmul-dev/campusmart/backend/internal/views"
)

// viewHTTPError maps engine errors to stable HTTP responses: invalid input to
// 400, meaningful absence to 404, store failures and anything else to 500.
func viewHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, views.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, views.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var se *views.StoreError
	if errors.As(err, &se) {
		return echo.NewHTTPError(http.StatusInternalServerError, se.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
