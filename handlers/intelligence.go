package handlers

import (
	"net/http"

	"profitpilot/models"
	"profitpilot/services/extraction"
	"profitpilot/services/notification"
	"profitpilot/utils"

	"github.com/gin-gonic/gin"
)

var (
	Extractor extraction.Extractor
	TextGen   notification.TextGenerator
)

// AnalyzeText extracts structured booking details from raw text without
// creating anything.
func AnalyzeText(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := Extractor.Extract(c.Request.Context(), input.Text)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req, "complete": req.Complete()})
}

// GenerateConfirmation drafts a confirmation email body for an existing
// booking.
func GenerateConfirmation(c *gin.Context) {
	var input struct {
		EventID string `json:"event_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := RecordService.Get(input.EventID)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	body, err := TextGen.ConfirmationEmail(c.Request.Context(), record)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": record.EventID, "body": body})
}

// GenerateRejection drafts a rejection email body offering the supplied
// alternative slots.
func GenerateRejection(c *gin.Context) {
	var input struct {
		Request      models.ExtractedRequest `json:"request"`
		Alternatives []models.SlotRef        `json:"alternatives"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	body, err := TextGen.RejectionEmail(c.Request.Context(), input.Request, input.Alternatives)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"body": body})
}
