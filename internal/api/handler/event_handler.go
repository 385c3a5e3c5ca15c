package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to record fetched events.
type EventDispatcher interface {
	Enqueue(ctx context.Context, event domain.TrackingEvent) error
}

// EventHandler exposes the carrier's tracking service.
type EventHandler struct {
	events     ports.EventService
	dispatcher EventDispatcher
}

// NewEventHandler creates an EventHandler. dispatcher may be nil, in which
// case fetched events are returned but not recorded.
func NewEventHandler(events ports.EventService, dispatcher EventDispatcher) *EventHandler {
	return &EventHandler{events: events, dispatcher: dispatcher}
}

// Customer handles GET /v1/events?limit=100&lang=PL.
//
// @Summary      Fetch the next page of unconfirmed customer events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int     false  "Page size (default 100)"
// @Param        lang   query     string  false  "Language (default PL)"
// @Success      200    {object}  eventBatchResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      502    {object}  ErrorResponse
// @Router       /v1/events [get]
func (h *EventHandler) Customer(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	batch, err := h.events.CustomerEvents(c.Request().Context(), limit, c.QueryParam("lang"))
	if err != nil {
		return err
	}
	if h.dispatcher != nil {
		for _, e := range batch.Events {
			if err := h.dispatcher.Enqueue(c.Request().Context(), e); err != nil {
				return fmt.Errorf("record events: %w", err)
			}
		}
	}
	return c.JSON(http.StatusOK, eventBatchResponse{
		ConfirmID: batch.ConfirmID,
		Events:    batch.Events,
		Count:     len(batch.Events),
	})
}

// Waybill handles GET /v1/events/:waybill?all=true.
//
// @Summary      Tracking history of one parcel
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        waybill  path      string  true   "Waybill number"
// @Param        all      query     bool    false  "Return the full history instead of the latest event"
// @Param        lang     query     string  false  "Language (default PL)"
// @Success      200      {object}  eventBatchResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /v1/events/{waybill} [get]
func (h *EventHandler) Waybill(c echo.Context) error {
	all, _ := strconv.ParseBool(c.QueryParam("all"))

	events, err := h.events.WaybillEvents(c.Request().Context(), c.Param("waybill"), all, c.QueryParam("lang"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventBatchResponse{Events: events, Count: len(events)})
}

// Confirm handles POST /v1/events/confirm/:confirmId.
//
// @Summary      Mark a page of customer events as processed
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        confirmId  path      string  true  "Confirm id of the page"
// @Success      202        {object}  acceptedResponse
// @Failure      502        {object}  ErrorResponse
// @Router       /v1/events/confirm/{confirmId} [post]
func (h *EventHandler) Confirm(c echo.Context) error {
	if err := h.events.ConfirmEvents(c.Request().Context(), c.Param("confirmId")); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "events confirmed"})
}
