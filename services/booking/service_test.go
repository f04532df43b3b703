package booking

import (
	"path/filepath"
	"testing"
	"time"

	"profitpilot/database"
	"profitpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecordService(t *testing.T) (*DefaultRecordService, *database.Store) {
	t.Helper()
	store := database.New(filepath.Join(t.TempDir(), "events_database.json"))
	return &DefaultRecordService{Store: store}, store
}

func seedBooking(t *testing.T, store *database.Store) models.BookingRecord {
	t.Helper()
	rec := models.BookingRecord{
		EventID:  "EVT-20240615-1",
		Customer: models.Customer{Name: "Jordan Miles", Email: "jordan@milescorp.com"},
		Details: models.EventDetails{
			Date:       "2024-06-15",
			TimeSlot:   models.SlotAfternoon,
			GuestCount: 10,
			EventType:  "meeting",
		},
		Status:    models.StatusBooked,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Update(func(doc *database.Document) error {
		doc.AppendBooking(rec)
		return nil
	}))
	return rec
}

func TestListEmpty(t *testing.T) {
	svc, _ := newTestRecordService(t)

	records, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetUnknownID(t *testing.T) {
	svc, _ := newTestRecordService(t)

	_, err := svc.Get("EVT-19990101-1")
	require.Error(t, err)
}

func TestCancelReleasesSlot(t *testing.T) {
	svc, store := newTestRecordService(t)
	rec := seedBooking(t, store)

	got, err := svc.Cancel(rec.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)

	err = store.View(func(doc *database.Document) error {
		assert.True(t, doc.SlotFree("2024-06-15", models.SlotAfternoon))
		// History is retained, not deleted.
		require.Len(t, doc.Events, 1)
		return nil
	})
	require.NoError(t, err)

	// Cancelling again is a no-op.
	again, err := svc.Cancel(rec.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, again.Status)
	assert.Equal(t, got.UpdatedAt, again.UpdatedAt)
}
