// File: database/repository/assignment/interface.go
package assignmentRepo

import (
	"context"

	"dispatchly/database"
	"dispatchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CrewAssignmentRepository persists daily driver/vehicle assignment records.
// Exclusivity is per calendar day: a driver or vehicle appearing in any record
// on a date is considered booked for that whole day.
type CrewAssignmentRepository interface {
	Create(ctx context.Context, assignment *models.CrewAssignment) (string, error)
	FindByDate(ctx context.Context, date string) ([]models.CrewAssignment, error)
	FindByDateAndDriver(ctx context.Context, date, driverID string) (*models.CrewAssignment, error)
	FindByDateAndVehicle(ctx context.Context, date, vehicleID string) (*models.CrewAssignment, error)
	ExistsForDate(ctx context.Context, date, driverID, vehicleID string) (bool, error)
}

type mongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo constructs a new MongoDB CrewAssignmentRepository.
func NewMongoAssignmentRepo() CrewAssignmentRepository {
	db := database.MongoClient.Database("dispatchly")
	return &mongoAssignmentRepo{
		coll: db.Collection("crew_assignments"),
	}
}
