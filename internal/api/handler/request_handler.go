package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// RequestHandler handles HTTP requests for item requests ("I need a drill").
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	r, err := h.service.Create(c.Request().Context(), requesterID, ports.CreateRequestInput{
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRequestResponse(r))
}

// ListOwn handles GET /requests — the sharer's own requests, newest first.
func (h *RequestHandler) ListOwn(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	list, err := h.service.GetUserRequests(c.Request().Context(), requesterID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestDetailListResponse(list))
}

// ListAll handles GET /requests/all — other users' requests, newest first.
func (h *RequestHandler) ListAll(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	list, err := h.service.GetAllRequests(c.Request().Context(), requesterID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestDetailListResponse(list))
}

// Get handles GET /requests/:id.
func (h *RequestHandler) Get(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), requesterID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestDetailResponse(detail))
}

func toRequestResponse(r *domain.ItemRequest) requestResponse {
	return requestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created.UTC(),
	}
}

func toRequestDetailResponse(d *ports.RequestDetail) requestDetailResponse {
	items := make([]itemResponse, len(d.Items))
	for i, item := range d.Items {
		items[i] = toItemResponse(item)
	}
	return requestDetailResponse{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		Created:     d.Request.Created.UTC(),
		Items:       items,
	}
}

func toRequestDetailListResponse(list []*ports.RequestDetail) []requestDetailResponse {
	out := make([]requestDetailResponse, len(list))
	for i, d := range list {
		out[i] = toRequestDetailResponse(d)
	}
	return out
}
