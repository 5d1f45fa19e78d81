package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lendly/sharing-system/internal/api/metrics"
	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings. The time-window sanity checks (start before
// end, neither in the past) live here at the gateway; the engine only
// enforces ownership and availability.
func (h *BookingHandler) Create(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	now := time.Now().UTC()
	if !req.End.After(req.Start) {
		return echo.NewHTTPError(http.StatusBadRequest, "end must be after start")
	}
	if req.Start.Before(now) {
		return echo.NewHTTPError(http.StatusBadRequest, "start must not be in the past")
	}

	detail, err := h.service.Create(c.Request().Context(), requesterID, ports.CreateBookingInput{
		Start:  req.Start,
		End:    req.End,
		ItemID: req.ItemID,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBookingResponse(detail))
}

// Get handles GET /bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), requesterID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(detail))
}

// ListByBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListByBooker(c echo.Context) error {
	return h.list(c, "booker", h.service.GetByBooker)
}

// ListByOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListByOwner(c echo.Context) error {
	return h.list(c, "owner", h.service.GetByOwner)
}

func (h *BookingHandler) list(
	c echo.Context,
	side string,
	query func(ctx context.Context, requesterID string, state domain.BookingState, now time.Time, page ports.Page) ([]*ports.BookingDetail, error),
) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("state")
	if raw == "" {
		raw = string(domain.StateAll)
	}
	state, ok := domain.ParseBookingState(raw)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown state: "+raw)
	}

	page, err := parsePage(c)
	if err != nil {
		return err
	}

	// One instant per request: every temporal comparison in this listing uses
	// the same now.
	list, err := query(c.Request().Context(), requesterID, state, time.Now().UTC(), page)
	if err != nil {
		return err
	}

	metrics.BookingListQueriesTotal.WithLabelValues(side, string(state)).Inc()
	return c.JSON(http.StatusOK, toBookingListResponse(list))
}

// Confirm handles PATCH /bookings/:id?approved=true|false.
func (h *BookingHandler) Confirm(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("approved")
	approved, err := strconv.ParseBool(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}

	detail, err := h.service.Confirm(c.Request().Context(), requesterID, c.Param("id"), approved)
	if err != nil {
		return err
	}

	decision := "rejected"
	if approved {
		decision = "approved"
	}
	metrics.BookingsConfirmedTotal.WithLabelValues(decision).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(detail))
}
