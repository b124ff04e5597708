package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neemaflex/platform-api/internal/api/middleware"
	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

// UserHandler handles the caller's own profile.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial profile update. Only fields present in the
// body are touched; updated_at always refreshes.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.UserUpdate  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var update domain.UserUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
