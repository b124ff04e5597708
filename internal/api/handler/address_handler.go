package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neemaflex/platform-api/internal/api/middleware"
	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

// AddressHandler handles the caller's mailing addresses.
type AddressHandler struct {
	addressService ports.AddressService
}

func NewAddressHandler(addressService ports.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

type createAddressRequest struct {
	Label         string   `json:"label" validate:"required"`
	StreetAddress string   `json:"street_address" validate:"required"`
	City          string   `json:"city" validate:"required"`
	State         string   `json:"state" validate:"required"`
	PostalCode    string   `json:"postal_code" validate:"required"`
	Country       string   `json:"country" validate:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	IsDefault     bool     `json:"is_default"`
}

// Create adds an address for the caller. A new default address displaces
// any previous default.
//
// @Summary      Create an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAddressRequest  true  "Address fields"
// @Success      200   {object}  domain.Address
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.addressService.Create(c.Request().Context(), user.ID, ports.CreateAddressInput{
		Label:         req.Label,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

// List returns the caller's addresses.
//
// @Summary      List own addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Address
// @Failure      401  {object}  map[string]string
// @Router       /api/addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	addresses, err := h.addressService.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	return c.JSON(http.StatusOK, addresses)
}
