package handler

import (
	"errors"
	"net/http"

	appErrors "github.com/Rak-Code/swiftcart-backend/internal/pkg/errors"

	"github.com/labstack/echo/v4"
)

// toHTTPError maps application errors onto HTTP status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, appErrors.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrDuplicateWishlistItem):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
