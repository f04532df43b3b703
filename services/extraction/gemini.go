package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"profitpilot/models"
	ai "profitpilot/services/intelligence"
	"profitpilot/utils"
)

// GeminiExtractor delegates extraction to a text-understanding model with a
// fixed schema description. A malformed or non-JSON reply degrades to a
// request with every field nil and the diagnostic recorded in Err; only
// transport failure is an error.
type GeminiExtractor struct {
	Client ai.Client
}

func NewGeminiExtractor(client ai.Client) *GeminiExtractor {
	return &GeminiExtractor{Client: client}
}

const extractionPrompt = `Extract booking request details from the following email.
Return the information in a structured JSON format with the following fields:
- client_name: Name of the person making the request
- client_email: Email address of the requester
- requested_date: The date requested for booking (in YYYY-MM-DD format)
- time_preference: One of "morning", "afternoon" or "evening"
- purpose: The purpose of the booking (e.g. wedding, conference, meeting)
- attendees: Number of attendees (integer)
- special_requests: Any special requests mentioned

If any information is not provided in the email, use null for that field.
Output MUST be valid JSON and contain ONLY JSON: no explanations, no markdown, no extra text.

Email:
%s`

// wireRequest mirrors the schema the model is asked to produce. The slot is
// received as a raw string and validated separately.
type wireRequest struct {
	ClientName      *string `json:"client_name"`
	ClientEmail     *string `json:"client_email"`
	RequestedDate   *string `json:"requested_date"`
	TimePreference  *string `json:"time_preference"`
	Purpose         *string `json:"purpose"`
	Attendees       *int    `json:"attendees"`
	SpecialRequests *string `json:"special_requests"`
}

func (e *GeminiExtractor) Extract(ctx context.Context, raw string) (models.ExtractedRequest, error) {
	reply, err := e.Client.GenerateContent(ctx, fmt.Sprintf(extractionPrompt, raw))
	if err != nil {
		return models.ExtractedRequest{}, utils.NewServiceError("extraction request failed", err)
	}

	var wire wireRequest
	if err := json.Unmarshal([]byte(ai.StripJSONFences(reply)), &wire); err != nil {
		return models.ExtractedRequest{Err: fmt.Sprintf("non-JSON extraction reply: %v", err)}, nil
	}

	req := models.ExtractedRequest{
		ContactName:     wire.ClientName,
		ContactEmail:    wire.ClientEmail,
		Date:            wire.RequestedDate,
		EventType:       wire.Purpose,
		GuestCount:      wire.Attendees,
		SpecialRequests: wire.SpecialRequests,
	}
	if wire.TimePreference != nil {
		if slot, ok := models.ParseTimeSlot(*wire.TimePreference); ok {
			req.TimePreference = models.SlotPtr(slot)
		}
	}
	return req, nil
}
