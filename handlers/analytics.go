package handlers

import (
	"net/http"
	"time"

	"profitpilot/services/analytics"
	"profitpilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ForecastEngine *analytics.Engine
	Insights       *analytics.InsightGenerator
)

// AddTransaction records a purchase and invalidates the forecast cache.
func AddTransaction(c *gin.Context) {
	var input struct {
		Timestamp time.Time `json:"timestamp" binding:"required"`
		Cost      float64   `json:"cost" binding:"required"`
		Sales     int       `json:"sales"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p := analytics.Purchase{
		PurchaseID: uuid.NewString(),
		Timestamp:  input.Timestamp,
		Cost:       input.Cost,
		Sales:      input.Sales,
	}
	if err := ForecastEngine.AddTransaction(p); err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetForecast returns the one-year daily purchase volume forecast.
func GetForecast(c *gin.Context) {
	points, err := ForecastEngine.Forecast()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": points, "days": len(points)})
}

// ForecastPlot renders the forecast chart as PNG.
func ForecastPlot(c *gin.Context) {
	points, err := ForecastEngine.Forecast()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	history, err := ForecastEngine.History()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	png, err := analytics.RenderForecastPNG(history, points)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// WeeklyRevenue returns revenue for the trailing 30 days grouped by ISO
// week, with a short generated summary.
func WeeklyRevenue(c *gin.Context) {
	weeks, err := ForecastEngine.WeeklyRevenue()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weeks":   weeks,
		"insight": Insights.Summarize(c.Request.Context(), weeks),
	})
}

// RevenuePlot renders the weekly revenue bar chart as PNG.
func RevenuePlot(c *gin.Context) {
	weeks, err := ForecastEngine.WeeklyRevenue()
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	png, err := analytics.RenderRevenuePNG(weeks)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
