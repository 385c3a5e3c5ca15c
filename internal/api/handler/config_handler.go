package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// Configurer changes the defaults applied to later compilations.
type Configurer interface {
	SetGenerationPolicy(policy string) error
	SetPickupAddress(fields validation.Fields) error
}

// SettingsReader exposes the active defaults.
type SettingsReader interface {
	Environment() domain.Environment
	GenerationPolicy() domain.GenerationPolicy
	PickupAddress() (domain.AddressDocument, bool)
}

// ConfigHandler reads and updates compiler defaults. Updates are restricted to
// admins by the router.
type ConfigHandler struct {
	configurer Configurer
	settings   SettingsReader
}

func NewConfigHandler(configurer Configurer, settings SettingsReader) *ConfigHandler {
	return &ConfigHandler{configurer: configurer, settings: settings}
}

// Get handles GET /v1/config.
//
// @Summary      Current compiler defaults
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Router       /v1/config [get]
func (h *ConfigHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshot())
}

// SetGenerationPolicy handles PUT /v1/config/generation-policy.
//
// @Summary      Change the generation policy
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generationPolicyRequest  true  "Policy name or code 1-3"
// @Success      200   {object}  settingsResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/config/generation-policy [put]
func (h *ConfigHandler) SetGenerationPolicy(c echo.Context) error {
	var req generationPolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.configurer.SetGenerationPolicy(req.Policy); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// SetPickupAddress handles PUT /v1/config/pickup-address.
//
// @Summary      Change the default sender address
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Address fields"
// @Success      200   {object}  settingsResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/config/pickup-address [put]
func (h *ConfigHandler) SetPickupAddress(c echo.Context) error {
	var fields validation.Fields
	if err := validation.DecodeJSON(c.Request().Body, &fields); err != nil || fields == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.configurer.SetPickupAddress(fields); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

func (h *ConfigHandler) snapshot() settingsResponse {
	resp := settingsResponse{
		Environment:      string(h.settings.Environment()),
		GenerationPolicy: string(h.settings.GenerationPolicy()),
	}
	if addr, ok := h.settings.PickupAddress(); ok {
		resp.PickupAddress = &addr
	}
	return resp
}
