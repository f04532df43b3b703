package analytics

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "purchases.db"))
	require.NoError(t, err)
	return db
}

// seedDaily inserts `perDay` purchases on each of `days` consecutive days
// starting at `start`.
func seedDaily(t *testing.T, db *gorm.DB, start time.Time, days, perDay int, cost float64) {
	t.Helper()
	var rows []Purchase
	n := 0
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		for i := 0; i < perDay; i++ {
			n++
			rows = append(rows, Purchase{
				PurchaseID: fmt.Sprintf("T-%06d", n),
				Timestamp:  day.Add(time.Duration(i) * time.Minute),
				Cost:       cost,
				Sales:      1,
			})
		}
	}
	require.NoError(t, db.CreateInBatches(rows, 500).Error)
}

func TestForecastHorizonAndBounds(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seedDaily(t, db, start, 60, 5, 20)

	engine := NewEngine(db)
	points, err := engine.Forecast()
	require.NoError(t, err)
	require.Len(t, points, 365)

	for _, p := range points {
		assert.LessOrEqual(t, p.Lower, p.Predicted, p.Date)
		assert.LessOrEqual(t, p.Predicted, p.Upper, p.Date)
	}

	// The horizon starts the day after the last observation.
	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.Equal(t, "2025-02-28", points[364].Date)
}

func TestForecastFlatSeriesPredictsLevel(t *testing.T) {
	db := newTestDB(t)
	seedDaily(t, db, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 30, 4, 10)

	engine := NewEngine(db)
	points, err := engine.Forecast()
	require.NoError(t, err)
	require.NotEmpty(t, points)

	// Four purchases every day: the point forecast stays at four.
	assert.InDelta(t, 4.0, points[0].Predicted, 0.01)
	assert.InDelta(t, 4.0, points[100].Predicted, 0.01)
}

func TestForecastInsufficientHistory(t *testing.T) {
	db := newTestDB(t)
	seedDaily(t, db, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 1, 3, 10)

	engine := NewEngine(db)
	points, err := engine.Forecast()
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestAddTransactionInvalidatesCache(t *testing.T) {
	db := newTestDB(t)
	seedDaily(t, db, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 30, 4, 10)

	engine := NewEngine(db)
	_, err := engine.Forecast()
	require.NoError(t, err)

	history, err := engine.History()
	require.NoError(t, err)
	require.Len(t, history, 30)

	err = engine.AddTransaction(Purchase{
		PurchaseID: "T-NEW",
		Timestamp:  time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
		Cost:       42,
	})
	require.NoError(t, err)

	history, err = engine.History()
	require.NoError(t, err)
	assert.Len(t, history, 31)
}

func TestAddTransactionValidation(t *testing.T) {
	engine := NewEngine(newTestDB(t))

	err := engine.AddTransaction(Purchase{PurchaseID: "T-1", Cost: 10})
	require.Error(t, err, "zero timestamp rejected")

	err = engine.AddTransaction(Purchase{
		PurchaseID: "T-2",
		Timestamp:  time.Now(),
		Cost:       -5,
	})
	require.Error(t, err, "negative cost rejected")
}

func TestGenerateSampleDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, GenerateSampleData(db, 2000))

	var count int64
	require.NoError(t, db.Model(&Purchase{}).Count(&count).Error)
	assert.Equal(t, int64(2000), count)

	// A second run leaves the populated table alone.
	require.NoError(t, GenerateSampleData(db, 2000))
	require.NoError(t, db.Model(&Purchase{}).Count(&count).Error)
	assert.Equal(t, int64(2000), count)
}
