// File: dispatchly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatchly/config"
	"dispatchly/cron"
	"dispatchly/database"
	assignmentRepo "dispatchly/database/repository/assignment"
	availabilityRepo "dispatchly/database/repository/availability"
	catalogRepo "dispatchly/database/repository/catalog"
	draftRepo "dispatchly/database/repository/draft"
	jobRepo "dispatchly/database/repository/job"
	quoteRepo "dispatchly/database/repository/quote"
	"dispatchly/handlers"
	"dispatchly/middleware"
	"dispatchly/routes"
	"dispatchly/services/notification"
	"dispatchly/services/wizard"
	"dispatchly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	jobs := jobRepo.NewMongoJobRepo()
	quotes := quoteRepo.NewMongoQuoteRepo()
	assignments := assignmentRepo.NewMongoAssignmentRepo()
	drafts := draftRepo.NewMongoDraftRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()

	// services.
	checker := &wizard.DefaultAvailabilityChecker{
		Availability: availability,
		Assignments:  assignments,
	}
	orchestrator := &wizard.DefaultCommitOrchestrator{
		Jobs:        jobs,
		Quotes:      quotes,
		Assignments: assignments,
	}
	wizardService := &wizard.DefaultWizardSessionService{
		Drafts:       drafts,
		Catalog:      catalog,
		Checker:      checker,
		Orchestrator: orchestrator,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	deliveryService, err := notification.NewDefaultQuoteDeliveryService(quotes, catalog, asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize quote delivery service: %v", err)
	}
	cron.InitQuoteDeliveryWorker(deliveryService)

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	draftHandler := handlers.NewDraftHandler(wizardService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalog, logger)
	quoteHandler := handlers.NewQuoteHandler(quotes, deliveryService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Wizard session endpoints.
		OpenWizardSession:   wizardHandler.OpenSession,
		GetWizardSession:    wizardHandler.GetSession,
		UpdateWizardData:    wizardHandler.UpdateData,
		NextWizardStep:      wizardHandler.NextStep,
		PreviousWizardStep:  wizardHandler.PreviousStep,
		GoToWizardStep:      wizardHandler.GoToStep,
		ReviewWizard:        wizardHandler.Review,
		SubmitWizard:        wizardHandler.Submit,
		CancelWizardSession: wizardHandler.CancelSession,

		// Draft endpoints.
		SaveDraftHandler:   draftHandler.SaveDraft,
		ListDraftsHandler:  draftHandler.ListDrafts,
		DeleteDraftHandler: draftHandler.DeleteDraft,

		// Catalog endpoints.
		SearchCustomersHandler:     catalogHandler.SearchCustomers,
		GetContactsHandler:         catalogHandler.GetContacts,
		GetServiceLocationsHandler: catalogHandler.GetServiceLocations,
		GetProductsHandler:         catalogHandler.GetProducts,
		GetUnitsHandler:            catalogHandler.GetUnits,
		GetServicesHandler:         catalogHandler.GetServices,
		GetDriversHandler:          catalogHandler.GetDrivers,
		GetVehiclesHandler:         catalogHandler.GetVehicles,
		GetSettingsHandler:         catalogHandler.GetSettings,

		// Quote endpoints.
		GetQuoteHandler:  quoteHandler.GetQuote,
		SendQuoteHandler: quoteHandler.SendQuote,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
