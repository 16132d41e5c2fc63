// File: dispatchly/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Wizard session endpoints
	OpenWizardSession   gin.HandlerFunc
	GetWizardSession    gin.HandlerFunc
	UpdateWizardData    gin.HandlerFunc
	NextWizardStep      gin.HandlerFunc
	PreviousWizardStep  gin.HandlerFunc
	GoToWizardStep      gin.HandlerFunc
	ReviewWizard        gin.HandlerFunc
	SubmitWizard        gin.HandlerFunc
	CancelWizardSession gin.HandlerFunc

	// Draft endpoints
	SaveDraftHandler   gin.HandlerFunc
	ListDraftsHandler  gin.HandlerFunc
	DeleteDraftHandler gin.HandlerFunc

	// Catalog endpoints
	SearchCustomersHandler     gin.HandlerFunc
	GetContactsHandler         gin.HandlerFunc
	GetServiceLocationsHandler gin.HandlerFunc
	GetProductsHandler         gin.HandlerFunc
	GetUnitsHandler            gin.HandlerFunc
	GetServicesHandler         gin.HandlerFunc
	GetDriversHandler          gin.HandlerFunc
	GetVehiclesHandler         gin.HandlerFunc
	GetSettingsHandler         gin.HandlerFunc

	// Quote endpoints
	GetQuoteHandler  gin.HandlerFunc
	SendQuoteHandler gin.HandlerFunc
}
