package handlers

import (
	"net/http"
	"strings"

	"profitpilot/models"
	"profitpilot/services/booking"
	"profitpilot/utils"

	"github.com/gin-gonic/gin"
)

var (
	RecordService booking.RecordService
	Orchestrator  *booking.Orchestrator
)

// CreateBooking accepts a structured booking form and runs it through the
// full pipeline. Missing details get the same rejected_incomplete outcome
// an incomplete email would.
func CreateBooking(c *gin.Context) {
	var input struct {
		Name            string `json:"name"`
		Email           string `json:"email" binding:"required,email"`
		Phone           string `json:"phone"`
		Date            string `json:"date"`
		TimePreference  string `json:"time_preference"`
		GuestCount      *int   `json:"guest_count"`
		EventType       string `json:"event_type"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req := models.ExtractedRequest{
		ContactEmail: models.StringPtr(input.Email),
		GuestCount:   input.GuestCount,
	}
	if input.Name != "" {
		req.ContactName = models.StringPtr(input.Name)
	}
	if input.Date != "" {
		req.Date = models.StringPtr(input.Date)
	}
	if input.EventType != "" {
		req.EventType = models.StringPtr(strings.ToLower(input.EventType))
	}
	if input.SpecialRequests != "" {
		req.SpecialRequests = models.StringPtr(input.SpecialRequests)
	}
	if input.TimePreference != "" {
		slot, ok := models.ParseTimeSlot(input.TimePreference)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid time_preference", "expected morning, afternoon or evening")
			return
		}
		req.TimePreference = models.SlotPtr(slot)
	}

	outcome := Orchestrator.ProcessRequest(c.Request.Context(), req)
	status := http.StatusOK
	switch outcome.State {
	case booking.StateBooked:
		status = http.StatusCreated
	case booking.StateFailed:
		// Terminal failures keep the error taxonomy mapping; the outcome
		// body still carries state and detail.
		status = utils.HTTPStatus(outcome.Err)
	}
	c.JSON(status, outcome)
}

// ListBookings returns the full booking history.
func ListBookings(c *gin.Context) {
	records, err := RecordService.List()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records, "count": len(records)})
}

// GetBooking returns one booking by event ID.
func GetBooking(c *gin.Context) {
	record, err := RecordService.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelBooking marks a booking cancelled and frees its slot.
func CancelBooking(c *gin.Context) {
	record, err := RecordService.Cancel(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, record)
}
