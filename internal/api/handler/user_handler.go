package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendly/sharing-system/internal/core/domain"
	"github.com/lendly/sharing-system/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory. User routes carry
// no sharer header: registration necessarily precedes identity.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(u))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	u, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// List handles GET /users?from=&size=.
func (h *UserHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	users, err := h.service.GetAll(c.Request().Context(), page)
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PATCH /users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
