package booking

import (
	"time"

	"profitpilot/database"
	"profitpilot/models"
	"profitpilot/utils"
)

// List returns all booking records in creation order.
func (s *DefaultRecordService) List() ([]models.BookingRecord, error) {
	var events []models.BookingRecord
	err := s.Store.View(func(doc *database.Document) error {
		events = append(events, doc.Events...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.BookingRecord{}
	}
	return events, nil
}

// Get returns a booking by event ID.
func (s *DefaultRecordService) Get(id string) (models.BookingRecord, error) {
	var rec models.BookingRecord
	err := s.Store.View(func(doc *database.Document) error {
		idx := doc.FindBooking(id)
		if idx < 0 {
			return utils.NewNotFoundError("booking %s not found", id)
		}
		rec = doc.Events[idx]
		return nil
	})
	return rec, err
}

// Cancel marks a booking cancelled and releases its slot. Historical fields
// never change; only status and updated_at do.
func (s *DefaultRecordService) Cancel(id string) (models.BookingRecord, error) {
	var rec models.BookingRecord
	err := s.Store.Update(func(doc *database.Document) error {
		idx := doc.FindBooking(id)
		if idx < 0 {
			return utils.NewNotFoundError("booking %s not found", id)
		}
		if doc.Events[idx].Status != models.StatusCancelled {
			doc.Events[idx].Status = models.StatusCancelled
			doc.Events[idx].UpdatedAt = time.Now()
			doc.SetSlot(doc.Events[idx].Details.Date, doc.Events[idx].Details.TimeSlot, true)
		}
		rec = doc.Events[idx]
		return nil
	})
	return rec, err
}
