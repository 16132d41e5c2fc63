// File: database/repository/catalog/queries.go
package catalogRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dispatchly/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoCatalogRepo) SearchCustomers(ctx context.Context, query string, limit int64) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if query != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	}
	if limit <= 0 {
		limit = 25
	}
	opts := options.Find().SetLimit(limit).SetSort(bson.M{"name": 1})

	cursor, err := r.customers.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCatalogRepo) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var customer models.Customer
	if err := r.customers.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCatalogRepo) GetContacts(ctx context.Context, customerID string) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.contacts.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *mongoCatalogRepo) GetServiceLocations(ctx context.Context, customerID string) ([]models.ServiceLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.locations.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []models.ServiceLocation
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *mongoCatalogRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoCatalogRepo) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product models.Product
	if err := r.products.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mongoCatalogRepo) GetUnits(ctx context.Context, productID string) ([]models.InventoryUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.units.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var units []models.InventoryUnit
	if err := cursor.All(ctx, &units); err != nil {
		return nil, err
	}
	return units, nil
}

func (r *mongoCatalogRepo) GetServices(ctx context.Context) ([]models.CatalogService, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.CatalogService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoCatalogRepo) GetDrivers(ctx context.Context) ([]models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.drivers.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *mongoCatalogRepo) GetVehicles(ctx context.Context) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.vehicles.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *mongoCatalogRepo) GetSettings(ctx context.Context) (*models.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var settings models.CompanySettings
	if err := r.settings.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
