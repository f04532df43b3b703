package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"profitpilot/models"
	"profitpilot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "events_database.json"))
}

func TestStoreMissingFileYieldsEmptyDocument(t *testing.T) {
	store := newTestStore(t)

	err := store.View(func(doc *Document) error {
		assert.Empty(t, doc.Events)
		assert.Empty(t, doc.Invoices)
		assert.Equal(t, 500.0, doc.Settings.Pricing.BasePrice)
		return nil
	})
	require.NoError(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events_database.json")

	rec := models.BookingRecord{
		EventID: "EVT-20240615-1",
		Customer: models.Customer{
			Name:  "Jordan Miles",
			Email: "jordan@milescorp.com",
		},
		Details: models.EventDetails{
			Date:       "2024-06-15",
			TimeSlot:   models.SlotAfternoon,
			GuestCount: 10,
			EventType:  "meeting",
		},
		Status:    models.StatusBooked,
		CreatedAt: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}

	store := New(path)
	err := store.Update(func(doc *Document) error {
		doc.AppendBooking(rec)
		return nil
	})
	require.NoError(t, err)

	// A fresh store over the same file sees identical state.
	reopened := New(path)
	err = reopened.View(func(doc *Document) error {
		require.Len(t, doc.Events, 1)
		assert.Equal(t, rec.EventID, doc.Events[0].EventID)
		assert.Equal(t, rec.Customer, doc.Events[0].Customer)
		assert.Equal(t, rec.Details, doc.Events[0].Details)
		assert.True(t, rec.CreatedAt.Equal(doc.Events[0].CreatedAt))

		assert.False(t, doc.SlotFree("2024-06-15", models.SlotAfternoon))
		assert.True(t, doc.SlotFree("2024-06-15", models.SlotMorning))
		return nil
	})
	require.NoError(t, err)
}

func TestStoreUpdateRollsBackOnError(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Update(func(doc *Document) error {
		doc.SetSlot("2024-06-15", models.SlotMorning, false)
		return nil
	}))

	boom := errors.New("boom")
	err := store.Update(func(doc *Document) error {
		doc.SetSlot("2024-06-15", models.SlotMorning, true)
		doc.Events = append(doc.Events, models.BookingRecord{EventID: "EVT-X"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.View(func(doc *Document) error {
		assert.False(t, doc.SlotFree("2024-06-15", models.SlotMorning))
		assert.Empty(t, doc.Events)
		return nil
	})
	require.NoError(t, err)
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events_database.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(path)
	err := store.View(func(doc *Document) error { return nil })
	require.Error(t, err)

	var storageErr *utils.StorageError
	assert.True(t, errors.As(err, &storageErr))
}
