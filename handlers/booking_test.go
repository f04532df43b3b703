package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"profitpilot/database"
	"profitpilot/models"
	"profitpilot/services/booking"
	"profitpilot/services/extraction"
	"profitpilot/services/invoice"
	"profitpilot/services/scheduling"
	"profitpilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyNotifier struct {
	confirmErr error
}

func (f *flakyNotifier) SendConfirmation(_ context.Context, _ models.BookingRecord, _ *models.Invoice) error {
	return f.confirmErr
}

func (f *flakyNotifier) SendAlternatives(_ context.Context, _ models.ExtractedRequest, _ []models.SlotRef) error {
	return nil
}

func (f *flakyNotifier) SendIncomplete(_ context.Context, _ string) error { return nil }

func (f *flakyNotifier) SendProcessingError(_ context.Context, _ string) error { return nil }

func newBookingRouter(t *testing.T, notifier *flakyNotifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := database.New(filepath.Join(dir, "events_database.json"))
	Orchestrator = booking.NewOrchestrator(
		store,
		scheduling.NewAllocator(store),
		extraction.NewHeuristicExtractor(),
		invoice.NewGenerator(store, filepath.Join(dir, "invoices")),
		notifier,
	)
	RecordService = &booking.DefaultRecordService{Store: store}

	router := gin.New()
	router.POST("/api/bookings", CreateBooking)
	return router
}

const bookingPayload = `{
	"name": "Jordan Miles",
	"email": "jordan@milescorp.com",
	"date": "2024-06-15",
	"time_preference": "afternoon",
	"guest_count": 10,
	"event_type": "meeting"
}`

func TestCreateBookingSuccess(t *testing.T) {
	router := newBookingRouter(t, &flakyNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingPayload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"state":"booked"`)
}

func TestCreateBookingIncomplete(t *testing.T) {
	router := newBookingRouter(t, &flakyNotifier{})

	payload := `{"email": "jordan@milescorp.com", "event_type": "meeting"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"rejected_incomplete"`)
}

func TestCreateBookingNotifierFailureIsNot2xx(t *testing.T) {
	notifier := &flakyNotifier{
		confirmErr: utils.NewServiceError("failed to send email", errors.New("connection refused")),
	}
	router := newBookingRouter(t, notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingPayload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"state":"failed"`)
	assert.Contains(t, w.Body.String(), "connection refused")

	// The underlying error never serializes into the payload.
	assert.NotContains(t, w.Body.String(), `"Err"`)
}
