package extraction

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"profitpilot/models"
)

// HeuristicExtractor pattern-matches booking details out of free text.
// It tolerates arbitrarily garbled input: anything it cannot match is left
// nil.
type HeuristicExtractor struct{}

func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`)
	longDateRe  = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	dayFirstRe  = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(January|February|March|April|May|June|July|August|September|October|November|December),?\s+(\d{4})\b`)

	attendeesRe = regexp.MustCompile(`(?i)\b(\d+)\s*(?:people|persons|guests|attendees)\b`)
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	clockRe     = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	nameRe      = regexp.MustCompile(`(?:[Mm]y name is|[Tt]his is)\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)?)`)
	requestRe   = regexp.MustCompile(`(?i)(?:special requests?|would like|we need|i need|require|arrangements?)[\s:]+([^.!?\n]+)`)
)

// eventTypes is the fixed vocabulary of recognized event purposes.
var eventTypes = []string{"wedding", "conference", "meeting", "party", "workshop", "seminar", "retreat"}

// freemailDomains are excluded when disambiguating the organizer's contact
// address from reply addresses in quoted text.
var freemailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com"}

func (e *HeuristicExtractor) Extract(_ context.Context, raw string) (models.ExtractedRequest, error) {
	var req models.ExtractedRequest

	if date, ok := findDate(raw); ok {
		req.Date = models.StringPtr(date)
	}
	if slot, ok := findTimePreference(raw); ok {
		req.TimePreference = models.SlotPtr(slot)
	}
	if m := attendeesRe.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.GuestCount = models.IntPtr(n)
		}
	}

	lowered := strings.ToLower(raw)
	for _, et := range eventTypes {
		if strings.Contains(lowered, et) {
			req.EventType = models.StringPtr(et)
			break
		}
	}

	if email, ok := findContactEmail(raw); ok {
		req.ContactEmail = models.StringPtr(email)
	}
	if m := nameRe.FindStringSubmatch(raw); m != nil {
		req.ContactName = models.StringPtr(m[1])
	}
	if m := requestRe.FindStringSubmatch(raw); m != nil {
		req.SpecialRequests = models.StringPtr(strings.TrimSpace(m[1]))
	}

	return req, nil
}

func findDate(raw string) (string, bool) {
	if m := isoDateRe.FindStringSubmatch(raw); m != nil {
		if _, err := time.Parse(models.DateLayout, m[1]); err == nil {
			return m[1], true
		}
	}
	if m := slashDateRe.FindStringSubmatch(raw); m != nil {
		for _, layout := range []string{"02/01/2006", "01/02/2006"} {
			if t, err := time.Parse(layout, m[1]); err == nil {
				return t.Format(models.DateLayout), true
			}
		}
	}
	if m := longDateRe.FindStringSubmatch(raw); m != nil {
		if t, err := time.Parse("January 2 2006", m[1]+" "+m[2]+" "+m[3]); err == nil {
			return t.Format(models.DateLayout), true
		}
	}
	if m := dayFirstRe.FindStringSubmatch(raw); m != nil {
		if t, err := time.Parse("2 January 2006", m[1]+" "+m[2]+" "+m[3]); err == nil {
			return t.Format(models.DateLayout), true
		}
	}
	return "", false
}

func findTimePreference(raw string) (models.TimeSlot, bool) {
	lowered := strings.ToLower(raw)
	for _, slot := range models.AllSlots {
		if strings.Contains(lowered, string(slot)) {
			return slot, true
		}
	}

	// Map an explicit clock time onto the slot windows.
	if m := clockRe.FindStringSubmatch(raw); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return "", false
		}
		if strings.EqualFold(m[3], "pm") && hour != 12 {
			hour += 12
		}
		if strings.EqualFold(m[3], "am") && hour == 12 {
			hour = 0
		}
		switch {
		case hour >= 8 && hour < 12:
			return models.SlotMorning, true
		case hour >= 12 && hour < 16:
			return models.SlotAfternoon, true
		case hour >= 16 && hour < 21:
			return models.SlotEvening, true
		}
	}
	return "", false
}

func findContactEmail(raw string) (string, bool) {
	matches := emailRe.FindAllString(raw, -1)
	if len(matches) == 0 {
		return "", false
	}
	for _, match := range matches {
		freemail := false
		for _, domain := range freemailDomains {
			if strings.HasSuffix(strings.ToLower(match), domain) {
				freemail = true
				break
			}
		}
		if !freemail {
			return match, true
		}
	}
	return matches[0], true
}
