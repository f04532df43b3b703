package analytics

import (
	"context"
	"testing"
	"time"

	"profitpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyRevenueGroupsByISOWeek(t *testing.T) {
	db := newTestDB(t)

	// Two purchases in one ISO week, one in the next.
	rows := []Purchase{
		{PurchaseID: "W-1", Timestamp: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), Cost: 100, Sales: 1}, // Mon, week 24
		{PurchaseID: "W-2", Timestamp: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC), Cost: 50, Sales: 1},  // Wed, week 24
		{PurchaseID: "W-3", Timestamp: time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC), Cost: 25, Sales: 1},  // Mon, week 25
	}
	require.NoError(t, db.Create(&rows).Error)

	engine := NewEngine(db)
	weeks, err := engine.WeeklyRevenue()
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	assert.Equal(t, "2024-W24", weeks[0].Week)
	assert.Equal(t, 150.0, weeks[0].Revenue)
	assert.Equal(t, "2024-W25", weeks[1].Week)
	assert.Equal(t, 25.0, weeks[1].Revenue)
}

func TestWeeklyRevenueWindowAnchorsOnNewestData(t *testing.T) {
	db := newTestDB(t)

	rows := []Purchase{
		// Outside the trailing 30 days of the newest purchase.
		{PurchaseID: "W-OLD", Timestamp: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), Cost: 999, Sales: 1},
		{PurchaseID: "W-NEW", Timestamp: time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC), Cost: 30, Sales: 1},
	}
	require.NoError(t, db.Create(&rows).Error)

	engine := NewEngine(db)
	weeks, err := engine.WeeklyRevenue()
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, 30.0, weeks[0].Revenue)
}

func TestWeeklyRevenueEmptyTable(t *testing.T) {
	engine := NewEngine(newTestDB(t))

	weeks, err := engine.WeeklyRevenue()
	require.NoError(t, err)
	assert.Empty(t, weeks)
}

func TestSummarizeWithoutAPIKey(t *testing.T) {
	gen := NewInsightGenerator("")

	summary := gen.Summarize(context.Background(), nil)
	assert.Equal(t, "No revenue recorded in the last 30 days.", summary)

	weeks := []models.WeeklyRevenue{
		{Week: "2024-W24", Revenue: 150},
		{Week: "2024-W25", Revenue: 250},
	}
	summary = gen.Summarize(context.Background(), weeks)
	assert.Contains(t, summary, "$400.00")
	assert.Contains(t, summary, "2024-W25")
}
