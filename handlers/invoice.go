package handlers

import (
	"net/http"

	"profitpilot/services/invoice"
	"profitpilot/utils"

	"github.com/gin-gonic/gin"
)

var InvoiceGenerator *invoice.Generator

// CreateInvoice generates and persists an invoice for an existing booking.
func CreateInvoice(c *gin.Context) {
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
	inv, err := InvoiceGenerator.Generate(record)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvoices returns all persisted invoices.
func ListInvoices(c *gin.Context) {
	invoices, err := InvoiceGenerator.List()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "count": len(invoices)})
}

// GetInvoice returns one invoice by number.
func GetInvoice(c *gin.Context) {
	inv, err := InvoiceGenerator.Get(c.Param("number"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, inv)
}
