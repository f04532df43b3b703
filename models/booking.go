package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
)

// Customer is the contact info captured with a booking.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// EventDetails describes the booked event itself.
type EventDetails struct {
	Date            string   `json:"date"`
	TimeSlot        TimeSlot `json:"time_slot"`
	GuestCount      int      `json:"guest_count"`
	EventType       string   `json:"event_type,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
}

// PriceBreakdown is the derived price for an event. It is recomputed on
// demand and only persisted as part of a BookingRecord.
type PriceBreakdown struct {
	BasePrice         float64 `json:"base_price"`
	PerPersonRate     float64 `json:"per_person_rate"`
	GuestCount        int     `json:"guest_count"`
	WeekendPremium    float64 `json:"weekend_premium"`
	SpecialRequestFee float64 `json:"special_requests_fee"`
	Total             float64 `json:"total_price"`
}

// BookingRecord is an event booking. Immutable once created except for
// Status and UpdatedAt.
type BookingRecord struct {
	EventID     string         `json:"event_id"`
	Customer    Customer       `json:"customer"`
	Details     EventDetails   `json:"event_details"`
	Pricing     PriceBreakdown `json:"pricing"`
	Status      BookingStatus  `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	InvoiceSent bool           `json:"invoice_sent"`
}
