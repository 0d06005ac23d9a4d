package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

// ctxCaller extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - client role requires a non-empty client_id, otherwise the token cannot
//     own any watch and is rejected with 401.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	clientID, _ := c.Get("client_id").(string)
	if role == domain.RoleClient && clientID == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing client identity")
	}

	return ports.Caller{Role: role, ClientID: clientID}, nil
}
