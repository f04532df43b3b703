package models

// DateLayout is the wire format for calendar dates everywhere in the system.
const DateLayout = "2006-01-02"

// TimeSlot is one of the three fixed daily booking windows.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// AllSlots is the fixed enumeration order used when scanning for
// alternative slots.
var AllSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// ParseTimeSlot normalizes a free-form slot string.
func ParseTimeSlot(s string) (TimeSlot, bool) {
	switch TimeSlot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return TimeSlot(s), true
	}
	return "", false
}

// DisplayWindow returns the human-readable window for a slot.
func (t TimeSlot) DisplayWindow() string {
	switch t {
	case SlotMorning:
		return "Morning (8:00 AM - 12:00 PM)"
	case SlotAfternoon:
		return "Afternoon (12:00 PM - 4:00 PM)"
	case SlotEvening:
		return "Evening (4:00 PM - 8:00 PM)"
	}
	return string(t)
}

// SlotSet records which of a day's three slots are still free.
type SlotSet struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

// NewSlotSet returns a fully free day.
func NewSlotSet() SlotSet {
	return SlotSet{Morning: true, Afternoon: true, Evening: true}
}

func (s SlotSet) Free(slot TimeSlot) bool {
	switch slot {
	case SlotMorning:
		return s.Morning
	case SlotAfternoon:
		return s.Afternoon
	case SlotEvening:
		return s.Evening
	}
	return false
}

func (s *SlotSet) Set(slot TimeSlot, free bool) {
	switch slot {
	case SlotMorning:
		s.Morning = free
	case SlotAfternoon:
		s.Afternoon = free
	case SlotEvening:
		s.Evening = free
	}
}

// AvailabilityMap maps ISO dates to slot-free flags. Days are materialized
// lazily on first reference, defaulting to fully free, and never deleted.
type AvailabilityMap map[string]SlotSet

// SlotRef identifies one bookable (date, slot) pair.
type SlotRef struct {
	Date string   `json:"date"`
	Time TimeSlot `json:"time"`
}
