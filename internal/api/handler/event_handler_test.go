package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

type stubEventService struct {
	limit     int
	lang      string
	waybill   string
	all       bool
	confirmed string
	batch     *domain.EventBatch
}

func (s *stubEventService) CustomerEvents(_ context.Context, limit int, lang string) (*domain.EventBatch, error) {
	s.limit, s.lang = limit, lang
	return s.batch, nil
}

func (s *stubEventService) WaybillEvents(_ context.Context, waybill string, all bool, _ string) ([]domain.TrackingEvent, error) {
	s.waybill, s.all = waybill, all
	return s.batch.Events, nil
}

func (s *stubEventService) ConfirmEvents(_ context.Context, confirmID string) error {
	s.confirmed = confirmID
	return nil
}

type recordingDispatcher struct {
	events []domain.TrackingEvent
	err    error
}

func (d *recordingDispatcher) Enqueue(_ context.Context, e domain.TrackingEvent) error {
	if d.err != nil {
		return d.err
	}
	d.events = append(d.events, e)
	return nil
}

func sampleBatch() *domain.EventBatch {
	return &domain.EventBatch{
		ConfirmID: "C-1",
		Events: []domain.TrackingEvent{
			{EventID: "E1", Waybill: "W1", Code: "040101"},
			{EventID: "E2", Waybill: "W1", Code: "190101"},
		},
	}
}

func TestEventHandler_Customer(t *testing.T) {
	e := echo.New()
	svc := &stubEventService{batch: sampleBatch()}
	dispatcher := &recordingDispatcher{}
	h := NewEventHandler(svc, dispatcher)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/events?limit=50&lang=EN", nil), rec)

	require.NoError(t, h.Customer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, svc.limit)
	assert.Equal(t, "EN", svc.lang)
	assert.Len(t, dispatcher.events, 2)
	assert.Contains(t, rec.Body.String(), `"confirmId":"C-1"`)
	assert.Contains(t, rec.Body.String(), `"count":2`)
}

func TestEventHandler_Customer_DispatcherStopped(t *testing.T) {
	e := echo.New()
	stopped := errors.New("dispatcher stopped")
	h := NewEventHandler(&stubEventService{batch: sampleBatch()}, &recordingDispatcher{err: stopped})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/events", nil), httptest.NewRecorder())

	assert.ErrorIs(t, h.Customer(c), stopped)
}

func TestEventHandler_Customer_BadLimit(t *testing.T) {
	e := echo.New()
	h := NewEventHandler(&stubEventService{batch: sampleBatch()}, nil)

	for _, limit := range []string{"ten", "-1"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/events?limit="+limit, nil), rec)

		err := h.Customer(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, limit)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestEventHandler_Waybill(t *testing.T) {
	e := echo.New()
	svc := &stubEventService{batch: sampleBatch()}
	h := NewEventHandler(svc, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/events/W1?all=true", nil), rec)
	c.SetParamNames("waybill")
	c.SetParamValues("W1")

	require.NoError(t, h.Waybill(c))
	assert.Equal(t, "W1", svc.waybill)
	assert.True(t, svc.all)
}

func TestEventHandler_Confirm(t *testing.T) {
	e := echo.New()
	svc := &stubEventService{}
	h := NewEventHandler(svc, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/events/confirm/C-9", nil), rec)
	c.SetParamNames("confirmId")
	c.SetParamValues("C-9")

	require.NoError(t, h.Confirm(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "C-9", svc.confirmed)
}
