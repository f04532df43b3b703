package ai

import (
	"context"
	"errors"
	"testing"

	"profitpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func sampleBooking() models.BookingRecord {
	return models.BookingRecord{
		EventID:  "EVT-20240615-1",
		Customer: models.Customer{Name: "Jordan Miles", Email: "jordan@milescorp.com"},
		Details: models.EventDetails{
			Date:       "2024-06-15",
			TimeSlot:   models.SlotAfternoon,
			GuestCount: 10,
			EventType:  "meeting",
		},
		Pricing: models.PriceBreakdown{Total: 950},
	}
}

func TestConfirmationEmailWithoutClientUsesTemplate(t *testing.T) {
	svc := NewDefaultAIService(nil)

	body, err := svc.ConfirmationEmail(context.Background(), sampleBooking())
	require.NoError(t, err)

	assert.Contains(t, body, "Dear Jordan Miles")
	assert.Contains(t, body, "Saturday, June 15, 2024")
	assert.Contains(t, body, "$950.00")
	assert.Contains(t, body, "The ProfitPilot Team")
}

func TestConfirmationEmailGenerationFailureFallsBack(t *testing.T) {
	svc := NewDefaultAIService(&stubClient{err: errors.New("quota exceeded")})

	body, err := svc.ConfirmationEmail(context.Background(), sampleBooking())
	require.NoError(t, err)
	assert.Contains(t, body, "Dear Jordan Miles")
}

func TestConfirmationEmailUsesGeneratedBody(t *testing.T) {
	svc := NewDefaultAIService(&stubClient{reply: "Hi Jordan, you are all set."})

	body, err := svc.ConfirmationEmail(context.Background(), sampleBooking())
	require.NoError(t, err)
	assert.Equal(t, "Hi Jordan, you are all set.", body)
}

func TestRejectionEmailListsAlternatives(t *testing.T) {
	svc := NewDefaultAIService(nil)

	req := models.ExtractedRequest{
		ContactName: models.StringPtr("Dana Wheeler"),
		Date:        models.StringPtr("2024-09-20"),
		EventType:   models.StringPtr("conference"),
	}
	alts := []models.SlotRef{
		{Date: "2024-09-21", Time: models.SlotMorning},
		{Date: "2024-09-22", Time: models.SlotEvening},
	}

	body, err := svc.RejectionEmail(context.Background(), req, alts)
	require.NoError(t, err)

	assert.Contains(t, body, "Dear Dana Wheeler")
	assert.Contains(t, body, "Saturday, September 21, 2024")
	assert.Contains(t, body, "Sunday, September 22, 2024")
}

func TestRejectionEmailWithoutAlternatives(t *testing.T) {
	svc := NewDefaultAIService(nil)

	body, err := svc.RejectionEmail(context.Background(), models.ExtractedRequest{}, nil)
	require.NoError(t, err)

	assert.Contains(t, body, "Dear Valued Client")
	assert.Contains(t, body, "could not find an alternative slot")
}

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripJSONFences(tt.in))
	}
}
