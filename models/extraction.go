package models

// ExtractedRequest is the normalized output of the request extractor.
// Every field is a pointer so that extraction failure degrades to nil
// fields instead of an error. Err carries the diagnostic when a delegated
// extraction produced an unusable reply.
type ExtractedRequest struct {
	ContactName     *string   `json:"client_name"`
	ContactEmail    *string   `json:"client_email"`
	Date            *string   `json:"requested_date"`
	TimePreference  *TimeSlot `json:"time_preference"`
	GuestCount      *int      `json:"attendees"`
	EventType       *string   `json:"purpose"`
	SpecialRequests *string   `json:"special_requests"`
	Err             string    `json:"error,omitempty"`
}

// Complete reports whether the minimum fields for a booking are present:
// date, time slot, guest count and event purpose.
func (r ExtractedRequest) Complete() bool {
	return r.Date != nil && r.TimePreference != nil && r.GuestCount != nil && r.EventType != nil
}

// Notes returns the special-requests text, or "" when absent.
func (r ExtractedRequest) Notes() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return *r.SpecialRequests
}

// StringPtr, IntPtr and SlotPtr are small helpers for building requests.
func StringPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }

func SlotPtr(t TimeSlot) *TimeSlot { return &t }
