package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lendly/sharing-system/internal/core/ports"
)

// sharerID extracts the acting user's id injected by the Identity middleware
// and performs a fast-fail check before any service call: presence proves the
// middleware ran on this route.
func sharerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing sharer identity")
	}
	return id, nil
}

// parsePage reads the from/size query parameters shared by all list
// endpoints. from is a literal record offset, size the page length; both
// default when absent and reject negatives.
func parsePage(c echo.Context) (ports.Page, error) {
	page := ports.Page{From: 0, Size: 10}

	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
		page.From = v
	}
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
		page.Size = v
	}
	return page, nil
}
