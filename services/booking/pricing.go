package booking

import (
	"strings"
	"time"

	"profitpilot/models"
	"profitpilot/utils"
)

// specialRequestKeywords each add the per-keyword fee at most once. Matches
// are independent, so multiple keywords stack.
var specialRequestKeywords = []string{"dietary", "allergy", "decoration", "setup", "cleanup"}

// Price computes the price breakdown for an event: base price, per-person
// rate times guest count, a weekend premium on Saturdays and Sundays, and a
// fixed fee per special-request keyword found in the notes.
func Price(pricing models.PricingSettings, date string, guests int, notes string) (models.PriceBreakdown, error) {
	if guests < 0 {
		return models.PriceBreakdown{}, utils.NewInputError("guest count must be >= 0, got %d", guests)
	}
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.PriceBreakdown{}, utils.NewInputError("malformed date %q, expected YYYY-MM-DD", date)
	}

	breakdown := models.PriceBreakdown{
		BasePrice:     pricing.BasePrice,
		PerPersonRate: pricing.PerPerson,
		GuestCount:    guests,
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		breakdown.WeekendPremium = pricing.WeekendPremium
	}

	lowered := strings.ToLower(notes)
	for _, keyword := range specialRequestKeywords {
		if strings.Contains(lowered, keyword) {
			breakdown.SpecialRequestFee += pricing.SpecialRequestFee
		}
	}

	breakdown.Total = breakdown.BasePrice +
		float64(guests)*breakdown.PerPersonRate +
		breakdown.WeekendPremium +
		breakdown.SpecialRequestFee
	return breakdown, nil
}
