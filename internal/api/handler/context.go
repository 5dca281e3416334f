package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ctxDisplayName extracts the caller's display name injected by the Auth
// middleware. A token without a name claim cannot author entries or
// approvals, so it is rejected with 401.
func ctxDisplayName(c echo.Context) (string, error) {
	name, _ := c.Get("display_name").(string)
	if name == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return name, nil
}

// periodParams reads the :rok/:miesiac path parameters. The month is
// zero-based on the wire. Malformed values are coerced to integers that can
// never match a stored entry or approval key rather than rejected.
func periodParams(c echo.Context) (year, month int) {
	year, err := strconv.Atoi(c.Param("rok"))
	if err != nil {
		year = -1
	}
	month, err = strconv.Atoi(c.Param("miesiac"))
	if err != nil {
		month = -1
	}
	return year, month
}
