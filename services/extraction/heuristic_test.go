package extraction

import (
	"context"
	"testing"

	"profitpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicExtractRealisticEmail(t *testing.T) {
	text := `Subject: Conference room booking

Hi, my name is Dana Wheeler and I'm organizing our quarterly conference.
We'd like to book the venue on 2024-09-20 in the afternoon for 45 attendees.
We need dietary accommodation for several guests.
You can reach me at dana.wheeler@northwind.io.`

	req, err := NewHeuristicExtractor().Extract(context.Background(), text)
	require.NoError(t, err)

	require.NotNil(t, req.ContactName)
	assert.Equal(t, "Dana Wheeler", *req.ContactName)
	require.NotNil(t, req.ContactEmail)
	assert.Equal(t, "dana.wheeler@northwind.io", *req.ContactEmail)
	require.NotNil(t, req.Date)
	assert.Equal(t, "2024-09-20", *req.Date)
	require.NotNil(t, req.TimePreference)
	assert.Equal(t, models.SlotAfternoon, *req.TimePreference)
	require.NotNil(t, req.GuestCount)
	assert.Equal(t, 45, *req.GuestCount)
	require.NotNil(t, req.EventType)
	assert.Equal(t, "conference", *req.EventType)
	require.NotNil(t, req.SpecialRequests)
	assert.Contains(t, *req.SpecialRequests, "dietary")

	assert.True(t, req.Complete())
}

func TestHeuristicExtractDateFormats(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"book us for 2025-01-05 please", "2025-01-05"},
		{"we were thinking of June 15th, 2024", "2024-06-15"},
		{"available on 15 June 2024?", "2024-06-15"},
	}
	for _, tt := range tests {
		req, err := NewHeuristicExtractor().Extract(context.Background(), tt.text)
		require.NoError(t, err)
		require.NotNil(t, req.Date, tt.text)
		assert.Equal(t, tt.want, *req.Date, tt.text)
	}
}

func TestHeuristicExtractClockTimeMapsToSlot(t *testing.T) {
	tests := []struct {
		text string
		want models.TimeSlot
	}{
		{"we'd start around 9am", models.SlotMorning},
		{"lunch meeting at 1:30 pm", models.SlotAfternoon},
		{"dinner reception from 6pm", models.SlotEvening},
	}
	for _, tt := range tests {
		req, err := NewHeuristicExtractor().Extract(context.Background(), tt.text)
		require.NoError(t, err)
		require.NotNil(t, req.TimePreference, tt.text)
		assert.Equal(t, tt.want, *req.TimePreference, tt.text)
	}
}

func TestHeuristicExtractPrefersNonFreemailAddress(t *testing.T) {
	text := "Contact me at personal@gmail.com or work@fabrikam.com for details."

	req, err := NewHeuristicExtractor().Extract(context.Background(), text)
	require.NoError(t, err)
	require.NotNil(t, req.ContactEmail)
	assert.Equal(t, "work@fabrikam.com", *req.ContactEmail)
}

func TestHeuristicExtractGarbledInput(t *testing.T) {
	req, err := NewHeuristicExtractor().Extract(context.Background(), "%%% ??? total nonsense !!!")
	require.NoError(t, err)

	assert.Nil(t, req.Date)
	assert.Nil(t, req.TimePreference)
	assert.Nil(t, req.GuestCount)
	assert.Nil(t, req.EventType)
	assert.False(t, req.Complete())
}
