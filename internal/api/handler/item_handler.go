package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lendly/sharing-system/internal/core/ports"
)

// ItemHandler handles HTTP requests for the item catalog.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c echo.Context) error {
	ownerID, err := sharerID(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), ownerID, ports.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c echo.Context) error {
	requesterID, err := sharerID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), requesterID, c.Param("id"), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemDetailResponse(detail))
}

// List handles GET /items?from=&size= — the sharer's own items.
func (h *ItemHandler) List(c echo.Context) error {
	ownerID, err := sharerID(c)
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	details, err := h.service.GetUserItems(c.Request().Context(), ownerID, time.Now().UTC(), page)
	if err != nil {
		return err
	}

	out := make([]itemDetailResponse, len(details))
	for i, d := range details {
		out[i] = toItemDetailResponse(d)
	}
	return c.JSON(http.StatusOK, out)
}

// Search handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) Search(c echo.Context) error {
	if _, err := sharerID(c); err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := h.service.Search(c.Request().Context(), c.QueryParam("text"), page)
	if err != nil {
		return err
	}

	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PATCH /items/:id.
func (h *ItemHandler) Update(c echo.Context) error {
	ownerID, err := sharerID(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), ownerID, c.Param("id"), ports.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c echo.Context) error {
	ownerID, err := sharerID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateComment handles POST /items/:id/comment.
func (h *ItemHandler) CreateComment(c echo.Context) error {
	authorID, err := sharerID(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.CreateComment(c.Request().Context(), authorID, c.Param("id"),
		ports.CreateCommentInput{Text: req.Text}, time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}
