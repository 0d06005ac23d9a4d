package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps a domain error to its HTTP status and public message.
// ok is false for errors that have no public mapping.
func StatusFor(err error) (code int, msg string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidTrackingNumber):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, domain.ErrCarrierRejectedFormat):
		return http.StatusBadRequest, "tracking number rejected by carrier", true
	case errors.Is(err, domain.ErrParcelNotFound):
		return http.StatusNotFound, "parcel not found", true
	case errors.Is(err, domain.ErrWatchNotFound):
		return http.StatusNotFound, "watch not found", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", true
	case errors.Is(err, domain.ErrWatchExists):
		return http.StatusConflict, "watch already exists", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", true
	case errors.Is(err, domain.ErrCarrierUnauthorized),
		errors.Is(err, domain.ErrCarrierUnavailable):
		return http.StatusBadGateway, "carrier unavailable", true
	case errors.Is(err, domain.ErrUnknownEventCode),
		errors.Is(err, domain.ErrNoProgress):
		return http.StatusBadGateway, "carrier returned an unreadable shipment", true
	}
	return 0, "", false
}

// respondError renders known domain errors and hands anything else to the
// central error handler.
func respondError(c echo.Context, err error) error {
	if code, msg, ok := StatusFor(err); ok {
		return c.JSON(code, errorResponse{Error: msg})
	}
	return err
}
