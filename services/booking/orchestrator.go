package booking

import (
	"context"
	"time"

	"profitpilot/database"
	"profitpilot/models"
	"profitpilot/services/extraction"
	"profitpilot/services/invoice"
	"profitpilot/services/notification"
	"profitpilot/services/scheduling"
	"profitpilot/utils"

	"go.uber.org/zap"
)

// State is a terminal (or reported) state of the process-one-request state
// machine.
type State string

const (
	StateExtracted           State = "extracted"
	StateRejectedIncomplete  State = "rejected_incomplete"
	StateBooked              State = "booked"
	StateAlternativesOffered State = "alternatives_offered"
	StateFailed              State = "failed"
)

// Outcome is the result of processing one incoming booking request.
type Outcome struct {
	State        State                   `json:"state"`
	Request      models.ExtractedRequest `json:"request"`
	Booking      *models.BookingRecord   `json:"booking,omitempty"`
	Invoice      *models.Invoice         `json:"invoice,omitempty"`
	Alternatives []models.SlotRef        `json:"alternatives,omitempty"`
	Detail       string                  `json:"detail,omitempty"`

	// Err is the error behind a failed state, kept for status mapping and
	// never serialized.
	Err error `json:"-"`
}

// Orchestrator sequences extraction, validation, availability check,
// booking-or-alternatives and notification for one request at a time.
type Orchestrator struct {
	Store     *database.Store
	Allocator *scheduling.Allocator
	Extractor extraction.Extractor
	Invoices  *invoice.Generator
	Notifier  notification.Notifier
}

func NewOrchestrator(
	store *database.Store,
	allocator *scheduling.Allocator,
	extractor extraction.Extractor,
	invoices *invoice.Generator,
	notifier notification.Notifier,
) *Orchestrator {
	return &Orchestrator{
		Store:     store,
		Allocator: allocator,
		Extractor: extractor,
		Invoices:  invoices,
		Notifier:  notifier,
	}
}

func failed(req models.ExtractedRequest, err error) Outcome {
	return Outcome{State: StateFailed, Request: req, Detail: err.Error(), Err: err}
}

// ProcessText runs the full pipeline starting from raw text. The fallback
// customer fills in contact details the extractor could not find (sender
// headers on the email path, form fields on the HTTP path).
func (o *Orchestrator) ProcessText(ctx context.Context, raw string, fallback models.Customer) Outcome {
	req, err := o.Extractor.Extract(ctx, raw)
	if err != nil {
		return failed(models.ExtractedRequest{}, err)
	}
	if req.ContactEmail == nil && fallback.Email != "" {
		req.ContactEmail = models.StringPtr(fallback.Email)
	}
	if req.ContactName == nil && fallback.Name != "" {
		req.ContactName = models.StringPtr(fallback.Name)
	}
	return o.ProcessRequest(ctx, req)
}

// ProcessRequest runs the state machine on an already-extracted request:
//
//	extracted → {validated | rejected_incomplete}
//	validated → {slot_available | slot_unavailable}
//	slot_available  → reserve + price + create + notify → booked
//	slot_unavailable → alternatives + notify → alternatives_offered
//
// Reservation and record creation execute inside one store transaction, so
// a failure in either leaves no partial mutation behind.
func (o *Orchestrator) ProcessRequest(ctx context.Context, req models.ExtractedRequest) Outcome {
	logger := utils.GetLogger()

	if !req.Complete() {
		if req.ContactEmail != nil {
			if err := o.Notifier.SendIncomplete(ctx, *req.ContactEmail); err != nil {
				return failed(req, err)
			}
		}
		return Outcome{State: StateRejectedIncomplete, Request: req, Detail: "missing required booking details"}
	}

	date := *req.Date
	slot := *req.TimePreference

	var booked *models.BookingRecord
	var available bool
	err := o.Store.Update(func(doc *database.Document) error {
		available = doc.SlotFree(date, slot)
		if !available {
			return nil
		}
		doc.SetSlot(date, slot, false)

		breakdown, err := Price(doc.Settings.Pricing, date, *req.GuestCount, req.Notes())
		if err != nil {
			return err
		}

		now := time.Now()
		rec := models.BookingRecord{
			EventID: doc.NextEventID(now),
			Customer: models.Customer{
				Name:  deref(req.ContactName),
				Email: deref(req.ContactEmail),
			},
			Details: models.EventDetails{
				Date:            date,
				TimeSlot:        slot,
				GuestCount:      *req.GuestCount,
				EventType:       deref(req.EventType),
				SpecialRequests: req.Notes(),
			},
			Pricing:   breakdown,
			Status:    models.StatusBooked,
			CreatedAt: now,
			UpdatedAt: now,
		}
		doc.Events = append(doc.Events, rec)
		booked = &rec
		return nil
	})
	if err != nil {
		return failed(req, err)
	}

	if !available {
		alts, err := o.Allocator.FindAlternatives(date, slot, 3)
		if err != nil {
			return failed(req, err)
		}
		if req.ContactEmail != nil {
			if err := o.Notifier.SendAlternatives(ctx, req, alts); err != nil {
				return failed(req, err)
			}
		}
		return Outcome{State: StateAlternativesOffered, Request: req, Alternatives: alts}
	}

	inv, err := o.Invoices.Generate(*booked)
	if err != nil {
		// The booking is persisted; surface the failure with the record so
		// a follow-up can regenerate the invoice.
		out := failed(req, err)
		out.Booking = booked
		return out
	}

	if err := o.Notifier.SendConfirmation(ctx, *booked, &inv); err != nil {
		out := failed(req, err)
		out.Booking = booked
		out.Invoice = &inv
		return out
	}

	// Best-effort flag; confirmation already went out.
	if err := o.Store.Update(func(doc *database.Document) error {
		if idx := doc.FindBooking(booked.EventID); idx >= 0 {
			doc.Events[idx].InvoiceSent = true
			doc.Events[idx].UpdatedAt = time.Now()
		}
		return nil
	}); err != nil {
		logger.Warn("failed to flag invoice as sent", zap.String("eventID", booked.EventID), zap.Error(err))
	}

	return Outcome{State: StateBooked, Request: req, Booking: booked, Invoice: &inv}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
