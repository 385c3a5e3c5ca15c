package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// ShipmentHandler handles HTTP requests for shipment and label documents.
type ShipmentHandler struct {
	compiler ports.Compiler
}

func NewShipmentHandler(compiler ports.Compiler) *ShipmentHandler {
	return &ShipmentHandler{compiler: compiler}
}

// Compile handles POST /v1/shipments/compile.
//
// @Summary      Compile a shipment without submitting it
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ShipmentInput  true  "Shipment input"
// @Success      200   {object}  compiledShipmentResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/shipments/compile [post]
func (h *ShipmentHandler) Compile(c echo.Context) error {
	var in ports.ShipmentInput
	if err := validation.DecodeJSON(c.Request().Body, &in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	compiled, err := h.compiler.CompileShipment(in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, compiledShipmentResponse{Request: compiled})
}

// Submit handles POST /v1/shipments: compiles and asks the carrier for
// package numbers.
//
// @Summary      Submit a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ShipmentInput  true  "Shipment input"
// @Success      200   {object}  remoteResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Submit(c echo.Context) error {
	var in ports.ShipmentInput
	if err := validation.DecodeJSON(c.Request().Body, &in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	resp, err := h.compiler.SubmitShipment(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRemoteResponse(resp))
}

// CompileLabel handles POST /v1/labels/compile.
//
// @Summary      Compile a label request without submitting it
// @Tags         labels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      labelRequest  true  "Label input"
// @Success      200   {object}  compiledLabelResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/labels/compile [post]
func (h *ShipmentHandler) CompileLabel(c echo.Context) error {
	var req labelRequest
	if err := validation.DecodeJSON(c.Request().Body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	compiled, err := h.compiler.CompileLabel(toLabelInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, compiledLabelResponse{Request: compiled})
}

// SubmitLabel handles POST /v1/labels.
//
// @Summary      Generate labels for a shipment
// @Tags         labels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      labelRequest  true  "Label input"
// @Success      200   {object}  remoteResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Router       /v1/labels [post]
func (h *ShipmentHandler) SubmitLabel(c echo.Context) error {
	var req labelRequest
	if err := validation.DecodeJSON(c.Request().Body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	resp, err := h.compiler.SubmitLabel(c.Request().Context(), toLabelInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRemoteResponse(resp))
}

// FindPostalCode handles GET /v1/postal-codes/:zip?country=PL.
//
// @Summary      Check whether the carrier serves a postal code
// @Tags         lookups
// @Produce      json
// @Security     BearerAuth
// @Param        zip      path   string  true   "Postal code"
// @Param        country  query  string  false  "Country code (default PL)"
// @Success      200  {object}  remoteResponse
// @Failure      422  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/postal-codes/{zip} [get]
func (h *ShipmentHandler) FindPostalCode(c echo.Context) error {
	resp, err := h.compiler.FindPostalCode(c.Request().Context(), c.Param("zip"), c.QueryParam("country"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRemoteResponse(resp))
}

// CourierAvailability handles GET /v1/courier-availability/:zip?country=PL.
//
// @Summary      Courier pickup availability for a postal code
// @Tags         lookups
// @Produce      json
// @Security     BearerAuth
// @Param        zip      path   string  true   "Postal code"
// @Param        country  query  string  false  "Country code (default PL)"
// @Success      200  {object}  remoteResponse
// @Failure      422  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/courier-availability/{zip} [get]
func (h *ShipmentHandler) CourierAvailability(c echo.Context) error {
	resp, err := h.compiler.CourierOrderAvailability(c.Request().Context(), c.Param("zip"), c.QueryParam("country"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRemoteResponse(resp))
}
