package models

// HoursRange is a start/end pair in "HH:MM".
type HoursRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusinessHours holds weekday and weekend opening hours.
type BusinessHours struct {
	Weekday HoursRange `json:"weekday"`
	Weekend HoursRange `json:"weekend"`
}

// PricingSettings are the pricing constants used by the calculator.
type PricingSettings struct {
	BasePrice         float64 `json:"base_price"`
	PerPerson         float64 `json:"per_person"`
	WeekendPremium    float64 `json:"weekend_premium"`
	SpecialRequestFee float64 `json:"special_request_fee"`
	TaxRate           float64 `json:"tax_rate"`
}

// Settings is the business configuration persisted with the booking state.
type Settings struct {
	BusinessHours BusinessHours   `json:"business_hours"`
	Pricing       PricingSettings `json:"pricing"`
}

// DefaultSettings mirrors the defaults seeded into a fresh data file.
func DefaultSettings() Settings {
	return Settings{
		BusinessHours: BusinessHours{
			Weekday: HoursRange{Start: "08:00", End: "20:00"},
			Weekend: HoursRange{Start: "10:00", End: "22:00"},
		},
		Pricing: PricingSettings{
			BasePrice:         500,
			PerPerson:         25,
			WeekendPremium:    100,
			SpecialRequestFee: 50,
			TaxRate:           0.08,
		},
	}
}
