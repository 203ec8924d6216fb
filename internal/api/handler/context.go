package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: employee_id and role
// must both be present (presence proves the middleware ran and the token
// carried a usable identity).
func ctxIdentity(c echo.Context) (employeeID, role string, err error) {
	employeeID, _ = c.Get("employee_id").(string)
	if employeeID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing role")
	}

	return employeeID, role, nil
}
