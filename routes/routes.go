package routes

import (
	"net/http"
	"time"

	"profitpilot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking intake and history endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.POST("", handlers.CreateBooking)
		api.GET("", handlers.ListBookings)
		api.GET("/:id", handlers.GetBooking)
		api.DELETE("/:id", handlers.CancelBooking)
	}
}

// RegisterIntelligenceRoutes registers extraction and drafting endpoints.
func RegisterIntelligenceRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/analyze", handlers.AnalyzeText)
		api.POST("/generate/confirmation", handlers.GenerateConfirmation)
		api.POST("/generate/rejection", handlers.GenerateRejection)
	}
}

// RegisterInvoiceRoutes registers invoice endpoints.
func RegisterInvoiceRoutes(r *gin.Engine) {
	api := r.Group("/api/invoices")
	{
		api.POST("", handlers.CreateInvoice)
		api.GET("", handlers.ListInvoices)
		api.GET("/:number", handlers.GetInvoice)
	}
}

// RegisterAnalyticsRoutes registers forecast and revenue endpoints.
func RegisterAnalyticsRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/transactions", handlers.AddTransaction)
		api.GET("/forecast", handlers.GetForecast)
		api.GET("/forecast/plot", handlers.ForecastPlot)
		api.GET("/revenue/weekly", handlers.WeeklyRevenue)
		api.GET("/revenue/plot", handlers.RevenuePlot)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires every endpoint group onto the engine.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r)
	RegisterIntelligenceRoutes(r)
	RegisterInvoiceRoutes(r)
	RegisterAnalyticsRoutes(r)
	RegisterHealthRoute(r)
}
