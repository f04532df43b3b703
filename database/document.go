package database

import (
	"fmt"
	"time"

	"profitpilot/models"
)

// Document is the full persisted booking state: events, availability,
// settings and invoices, serialized as one JSON file.
type Document struct {
	Events       []models.BookingRecord `json:"events"`
	Availability models.AvailabilityMap `json:"availability"`
	Invoices     []models.Invoice       `json:"invoices"`
	Settings     models.Settings        `json:"settings"`
}

// NewDocument returns an empty document with default settings. Availability
// days are materialized lazily on first reference.
func NewDocument() *Document {
	return &Document{
		Events:       []models.BookingRecord{},
		Availability: models.AvailabilityMap{},
		Invoices:     []models.Invoice{},
		Settings:     models.DefaultSettings(),
	}
}

// EnsureDay materializes a date in the availability map, defaulting all
// three slots free, and returns its slot set.
func (d *Document) EnsureDay(date string) models.SlotSet {
	if d.Availability == nil {
		d.Availability = models.AvailabilityMap{}
	}
	day, ok := d.Availability[date]
	if !ok {
		day = models.NewSlotSet()
		d.Availability[date] = day
	}
	return day
}

// SlotFree reports whether a slot is free, lazily materializing the day.
func (d *Document) SlotFree(date string, slot models.TimeSlot) bool {
	return d.EnsureDay(date).Free(slot)
}

// SetSlot marks a slot free or booked. Idempotent.
func (d *Document) SetSlot(date string, slot models.TimeSlot, free bool) {
	day := d.EnsureDay(date)
	day.Set(slot, free)
	d.Availability[date] = day
}

// NextEventID builds an identifier unique and monotonic within the given
// day, e.g. EVT-20240615-3.
func (d *Document) NextEventID(now time.Time) string {
	day := now.Format("20060102")
	prefix := "EVT-" + day + "-"
	seq := 1
	for _, ev := range d.Events {
		if ev.CreatedAt.Format("20060102") == day {
			seq++
		}
	}
	return fmt.Sprintf("%s%d", prefix, seq)
}

// AppendBooking adds a record and marks its slot unavailable.
func (d *Document) AppendBooking(rec models.BookingRecord) {
	d.SetSlot(rec.Details.Date, rec.Details.TimeSlot, false)
	d.Events = append(d.Events, rec)
}

// FindBooking returns the index of a booking by ID, or -1.
func (d *Document) FindBooking(id string) int {
	for i := range d.Events {
		if d.Events[i].EventID == id {
			return i
		}
	}
	return -1
}

// FindInvoice returns the index of an invoice by number, or -1.
func (d *Document) FindInvoice(number string) int {
	for i := range d.Invoices {
		if d.Invoices[i].Number == number {
			return i
		}
	}
	return -1
}
