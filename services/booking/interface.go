package booking

import (
	"profitpilot/database"
	"profitpilot/models"
)

// RecordService manages the append-only booking record store.
type RecordService interface {
	List() ([]models.BookingRecord, error)
	Get(id string) (models.BookingRecord, error)
	Cancel(id string) (models.BookingRecord, error)
}

// DefaultRecordService implements RecordService on the JSON document store.
type DefaultRecordService struct {
	Store *database.Store
}
