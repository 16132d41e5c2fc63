// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"dispatchly/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository answers the two availability questions the wizard
// asks: how many of a product are free over a window, and which individual
// unit ids are free over a window. Both are read-only and safe to re-run.
type AvailabilityRepository interface {
	AvailableQuantity(ctx context.Context, productID, startDate, endDate string) (int, error)
	AvailableUnitIDs(ctx context.Context, productID, startDate, endDate string) ([]string, error)
}

type mongoAvailabilityRepo struct {
	products *mongo.Collection
	units    *mongo.Collection
	jobs     *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("dispatchly")
	return &mongoAvailabilityRepo{
		products: db.Collection("products"),
		units:    db.Collection("inventory_units"),
		jobs:     db.Collection("jobs"),
	}
}
