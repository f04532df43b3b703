package scheduling

import (
	"time"

	"profitpilot/database"
	"profitpilot/models"
	"profitpilot/utils"
)

// Allocator answers availability queries and reserves slots against the
// persisted availability map. Unknown dates are treated as fully free and
// materialized lazily before answering.
type Allocator struct {
	Store *database.Store
}

func NewAllocator(store *database.Store) *Allocator {
	return &Allocator{Store: store}
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return time.Time{}, utils.NewInputError("malformed date %q, expected YYYY-MM-DD", date)
	}
	return t, nil
}

// Check reports whether slot on date is free. Materializing the day is a
// mutation, so this runs as an Update.
func (a *Allocator) Check(date string, slot models.TimeSlot) (bool, error) {
	if _, err := parseDate(date); err != nil {
		return false, err
	}
	var free bool
	err := a.Store.Update(func(doc *database.Document) error {
		free = doc.SlotFree(date, slot)
		return nil
	})
	return free, err
}

// Reserve marks a slot unavailable. Reserving an already-unavailable slot
// is a no-op, not an error.
func (a *Allocator) Reserve(date string, slot models.TimeSlot) error {
	if _, err := parseDate(date); err != nil {
		return err
	}
	return a.Store.Update(func(doc *database.Document) error {
		doc.SetSlot(date, slot, false)
		return nil
	})
}

// Release marks a slot free again (booking cancellation, rollback).
func (a *Allocator) Release(date string, slot models.TimeSlot) error {
	if _, err := parseDate(date); err != nil {
		return err
	}
	return a.Store.Update(func(doc *database.Document) error {
		doc.SetSlot(date, slot, true)
		return nil
	})
}

// FindAlternatives scans a ±7 day window around date for free slots. For
// each day the preferred slot is tried first, then the remaining slots in
// the fixed morning→afternoon→evening order. Results follow the scan order
// (offset −7 → +7, skipping the requested date itself) and are capped at
// count. An exhausted window yields an empty slice, not an error.
func (a *Allocator) FindAlternatives(date string, preferred models.TimeSlot, count int) ([]models.SlotRef, error) {
	base, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	alternatives := []models.SlotRef{}
	err = a.Store.Update(func(doc *database.Document) error {
		for offset := -7; offset <= 7; offset++ {
			if len(alternatives) >= count {
				break
			}
			altDate := base.AddDate(0, 0, offset).Format(models.DateLayout)
			if altDate == date {
				continue
			}

			if doc.SlotFree(altDate, preferred) {
				alternatives = append(alternatives, models.SlotRef{Date: altDate, Time: preferred})
				continue
			}
			for _, slot := range models.AllSlots {
				if slot == preferred {
					continue
				}
				if doc.SlotFree(altDate, slot) {
					alternatives = append(alternatives, models.SlotRef{Date: altDate, Time: slot})
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return alternatives, nil
}

// CheckAndReserve performs the availability check and reservation in one
// transaction boundary. Returns whether the slot was free (and is now
// reserved).
func (a *Allocator) CheckAndReserve(date string, slot models.TimeSlot) (bool, error) {
	if _, err := parseDate(date); err != nil {
		return false, err
	}
	var free bool
	err := a.Store.Update(func(doc *database.Document) error {
		free = doc.SlotFree(date, slot)
		if free {
			doc.SetSlot(date, slot, false)
		}
		return nil
	})
	return free, err
}
