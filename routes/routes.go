package routes

import (
	"dispatchly/handlers"
	"dispatchly/middleware"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes sets up the endpoints for the work-order wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.Use(middleware.JWTAuthDispatcherMiddleware())
		wizardGroup.POST("/session", hb.OpenWizardSession)
		wizardGroup.GET("/session/:sessionID", hb.GetWizardSession)
		wizardGroup.PUT("/session/:sessionID/data", hb.UpdateWizardData)
		wizardGroup.POST("/session/:sessionID/next", hb.NextWizardStep)
		wizardGroup.POST("/session/:sessionID/previous", hb.PreviousWizardStep)
		wizardGroup.POST("/session/:sessionID/goto/:step", hb.GoToWizardStep)
		wizardGroup.GET("/session/:sessionID/review", hb.ReviewWizard)
		wizardGroup.POST("/session/:sessionID/submit", hb.SubmitWizard)
		wizardGroup.DELETE("/session/:sessionID", hb.CancelWizardSession)
		wizardGroup.POST("/session/:sessionID/draft", hb.SaveDraftHandler)
	}
}

// RegisterDraftRoutes sets up endpoints for saved wizard drafts.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	draftGroup := r.Group("/api/drafts")
	{
		draftGroup.Use(middleware.JWTAuthDispatcherMiddleware())
		draftGroup.GET("", hb.ListDraftsHandler)
		draftGroup.DELETE("/:draftID", hb.DeleteDraftHandler)
	}
}

// RegisterCatalogRoutes sets up the reference-data endpoints the wizard
// steps select from.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	catalogGroup := r.Group("/api/catalog")
	{
		catalogGroup.Use(middleware.JWTAuthDispatcherMiddleware())
		catalogGroup.GET("/customers", hb.SearchCustomersHandler)
		catalogGroup.GET("/customers/:customerID/contacts", hb.GetContactsHandler)
		catalogGroup.GET("/customers/:customerID/locations", hb.GetServiceLocationsHandler)
		catalogGroup.GET("/products", hb.GetProductsHandler)
		catalogGroup.GET("/products/:productID/units", hb.GetUnitsHandler)
		catalogGroup.GET("/services", hb.GetServicesHandler)
		catalogGroup.GET("/drivers", hb.GetDriversHandler)
		catalogGroup.GET("/vehicles", hb.GetVehiclesHandler)
		catalogGroup.GET("/settings", hb.GetSettingsHandler)
	}
}

// RegisterQuoteRoutes sets up endpoints for committed quotes.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	quoteGroup := r.Group("/api/quotes")
	{
		quoteGroup.Use(middleware.JWTAuthDispatcherMiddleware())
		quoteGroup.GET("/:quoteID", hb.GetQuoteHandler)
		quoteGroup.POST("/:quoteID/send", hb.SendQuoteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Dispatchly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWizardRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterHealthRoute(r)
}
