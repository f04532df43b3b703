package booking

import (
	"testing"

	"profitpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	pricing := models.DefaultSettings().Pricing

	tests := []struct {
		name   string
		date   string
		guests int
		notes  string
		total  float64
	}{
		{
			name:   "weekday zero guests is base price only",
			date:   "2024-06-12", // Wednesday
			guests: 0,
			total:  500,
		},
		{
			name:   "weekday with guests",
			date:   "2024-06-12",
			guests: 20,
			total:  500 + 20*25,
		},
		{
			name:   "saturday adds weekend premium",
			date:   "2024-06-15",
			guests: 0,
			total:  500 + 100,
		},
		{
			name:   "sunday adds weekend premium",
			date:   "2024-06-16",
			guests: 0,
			total:  500 + 100,
		},
		{
			name:   "two keywords stack",
			date:   "2024-06-15", // Saturday
			guests: 10,
			notes:  "need dietary and allergy accommodation",
			total:  500 + 10*25 + 100 + 2*50,
		},
		{
			name:   "repeated keyword counts once",
			date:   "2024-06-12",
			guests: 0,
			notes:  "dietary needs, more dietary needs",
			total:  500 + 50,
		},
		{
			name:   "keyword match is case-insensitive",
			date:   "2024-06-12",
			guests: 0,
			notes:  "Setup the stage and CLEANUP afterwards",
			total:  500 + 2*50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(pricing, tt.date, tt.guests, tt.notes)
			require.NoError(t, err)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.guests, got.GuestCount)
		})
	}
}

func TestPriceBreakdownComponents(t *testing.T) {
	pricing := models.DefaultSettings().Pricing

	got, err := Price(pricing, "2024-06-15", 10, "decorations please")
	require.NoError(t, err)

	assert.Equal(t, 500.0, got.BasePrice)
	assert.Equal(t, 25.0, got.PerPersonRate)
	assert.Equal(t, 100.0, got.WeekendPremium)
	assert.Equal(t, 50.0, got.SpecialRequestFee)
	assert.Equal(t, 500+250+100+50.0, got.Total)
}

func TestPriceRejectsBadInput(t *testing.T) {
	pricing := models.DefaultSettings().Pricing

	_, err := Price(pricing, "2024-06-15", -1, "")
	require.Error(t, err)

	_, err = Price(pricing, "June 15 2024", 5, "")
	require.Error(t, err)
}
