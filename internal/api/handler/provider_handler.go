package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neemaflex/platform-api/internal/api/middleware"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

// ProviderHandler handles service-provider profile routes.
type ProviderHandler struct {
	providerService ports.ProviderService
}

func NewProviderHandler(providerService ports.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

type createProviderRequest struct {
	BusinessName      string   `json:"business_name" validate:"required"`
	ServiceCategories []string `json:"service_categories" validate:"required,min=1"`
	Description       string   `json:"description"`
	BusinessLicense   string   `json:"business_license"`
}

// Create registers the caller's provider profile.
//
// @Summary      Create a service-provider profile
// @Tags         service-providers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProviderRequest  true  "Provider details"
// @Success      200   {object}  domain.ServiceProvider
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/service-providers [post]
func (h *ProviderHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var req createProviderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	provider, err := h.providerService.Create(c.Request().Context(), user, ports.CreateProviderInput{
		BusinessName:      req.BusinessName,
		BusinessLicense:   req.BusinessLicense,
		ServiceCategories: req.ServiceCategories,
		Description:       req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, provider)
}

// Me returns the caller's provider profile.
//
// @Summary      Get own service-provider profile
// @Tags         service-providers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ServiceProvider
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/service-providers/me [get]
func (h *ProviderHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	provider, err := h.providerService.GetByUser(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, provider)
}
