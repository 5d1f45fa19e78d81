package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SharerHeader carries the acting user's id. The service trusts an upstream
// gateway to have authenticated the caller; here the header is only required
// to be present and non-blank.
const SharerHeader = "X-Sharer-User-Id"

// Identity extracts the sharer id header and injects it into context under
// "user_id". Requests without it are rejected with 400 before any handler runs.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(SharerHeader))
			if id == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing "+SharerHeader+" header")
			}

			c.Set("user_id", id)
			return next(c)
		}
	}
}
