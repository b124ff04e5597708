package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

// AdminHandler serves the admin-only collection listings. Role gating is
// done by the RequireRole middleware on the route group.
type AdminHandler struct {
	userService     ports.UserService
	providerService ports.ProviderService
}

func NewAdminHandler(userService ports.UserService, providerService ports.ProviderService) *AdminHandler {
	return &AdminHandler{userService: userService, providerService: providerService}
}

// ListUsers returns up to 1000 user records.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// ListProviders returns up to 1000 provider records.
//
// @Summary      List all service providers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ServiceProvider
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/service-providers [get]
func (h *AdminHandler) ListProviders(c echo.Context) error {
	providers, err := h.providerService.ListProviders(c.Request().Context())
	if err != nil {
		return err
	}
	if providers == nil {
		providers = []domain.ServiceProvider{}
	}
	return c.JSON(http.StatusOK, providers)
}
