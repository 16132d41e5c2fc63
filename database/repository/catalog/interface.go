// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"dispatchly/database"
	"dispatchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository serves the read-only reference data the wizard's step UI
// needs: customers, contacts, locations, products, units, services, crew and
// company settings. The wizard never writes through this interface.
type CatalogRepository interface {
	SearchCustomers(ctx context.Context, query string, limit int64) ([]models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	GetContacts(ctx context.Context, customerID string) ([]models.Contact, error)
	GetServiceLocations(ctx context.Context, customerID string) ([]models.ServiceLocation, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetUnits(ctx context.Context, productID string) ([]models.InventoryUnit, error)
	GetServices(ctx context.Context) ([]models.CatalogService, error)
	GetDrivers(ctx context.Context) ([]models.Driver, error)
	GetVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetSettings(ctx context.Context) (*models.CompanySettings, error)
}

type mongoCatalogRepo struct {
	customers *mongo.Collection
	contacts  *mongo.Collection
	locations *mongo.Collection
	products  *mongo.Collection
	units     *mongo.Collection
	services  *mongo.Collection
	drivers   *mongo.Collection
	vehicles  *mongo.Collection
	settings  *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("dispatchly")
	return &mongoCatalogRepo{
		customers: db.Collection("customers"),
		contacts:  db.Collection("contacts"),
		locations: db.Collection("service_locations"),
		products:  db.Collection("products"),
		units:     db.Collection("inventory_units"),
		services:  db.Collection("catalog_services"),
		drivers:   db.Collection("drivers"),
		vehicles:  db.Collection("vehicles"),
		settings:  db.Collection("company_settings"),
	}
}
