// File: profitpilot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profitpilot/config"
	"profitpilot/cron"
	"profitpilot/database"
	"profitpilot/handlers"
	"profitpilot/middleware"
	"profitpilot/routes"
	"profitpilot/services/analytics"
	"profitpilot/services/booking"
	"profitpilot/services/extraction"
	"profitpilot/services/inbox"
	ai "profitpilot/services/intelligence"
	"profitpilot/services/invoice"
	"profitpilot/services/notification"
	"profitpilot/services/scheduling"
	"profitpilot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	utils.InitCache()

	// Booking state lives in a single JSON document on disk.
	store := database.New(config.AppConfig.DataFile)
	allocator := scheduling.NewAllocator(store)

	// Analytics dataset and forecast engine.
	db, err := analytics.OpenDB(config.AppConfig.AnalyticsDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open analytics database: %v", err)
	}
	if err := analytics.GenerateSampleData(db, 100_000); err != nil {
		logger.Sugar().Fatalf("main: failed to seed analytics dataset: %v", err)
	}
	engine := analytics.NewEngine(db)

	// Gemini client is optional; without a key the text generator falls
	// back to templates and extraction stays heuristic.
	var aiClient ai.Client
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := ai.NewGeminiClient(context.Background(), key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		aiClient = client
	}

	var extractor extraction.Extractor
	switch config.AppConfig.Extractor {
	case "gemini":
		if aiClient == nil {
			logger.Sugar().Fatal("main: EXTRACTOR=gemini requires GEMINI_API_KEY")
		}
		extractor = extraction.NewGeminiExtractor(aiClient)
	default:
		extractor = extraction.NewHeuristicExtractor()
	}
	extractor = extraction.NewCachedExtractor(extractor, utils.GetCacheClient(), time.Hour)

	textGen := ai.NewDefaultAIService(aiClient)
	notifier := notification.NewMailNotifier(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
		config.AppConfig.FromEmail,
		textGen,
	)

	invoices := invoice.NewGenerator(store, config.AppConfig.InvoiceDir)
	recordService := &booking.DefaultRecordService{Store: store}
	orchestrator := booking.NewOrchestrator(store, allocator, extractor, invoices, notifier)

	// Handler dependencies.
	handlers.RecordService = recordService
	handlers.Orchestrator = orchestrator
	handlers.Extractor = extractor
	handlers.TextGen = textGen
	handlers.InvoiceGenerator = invoices
	handlers.ForecastEngine = engine
	handlers.Insights = analytics.NewInsightGenerator(config.AppConfig.OpenAIAPIKey)

	// Inbox poller runs only when an IMAP endpoint is configured.
	if addr := config.AppConfig.IMAPAddr; addr != "" {
		fetcher := inbox.NewFetcher(addr, config.AppConfig.IMAPUsername, config.AppConfig.IMAPPassword)
		processor := inbox.NewProcessor(fetcher, orchestrator, notifier)
		cron.InitInboxWorker(processor)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
