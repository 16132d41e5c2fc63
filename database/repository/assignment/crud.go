// File: database/repository/assignment/crud.go
package assignmentRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatchly/models"
)

func (r *mongoAssignmentRepo) Create(ctx context.Context, assignment *models.CrewAssignment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	assignment.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, assignment); err != nil {
		return "", err
	}
	return assignment.ID, nil
}

func (r *mongoAssignmentRepo) FindByDate(ctx context.Context, date string) ([]models.CrewAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.CrewAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *mongoAssignmentRepo) FindByDateAndDriver(ctx context.Context, date, driverID string) (*models.CrewAssignment, error) {
	return r.findOne(ctx, bson.M{"date": date, "driverId": driverID})
}

func (r *mongoAssignmentRepo) FindByDateAndVehicle(ctx context.Context, date, vehicleID string) (*models.CrewAssignment, error) {
	return r.findOne(ctx, bson.M{"date": date, "vehicleId": vehicleID})
}

func (r *mongoAssignmentRepo) findOne(ctx context.Context, filter bson.M) (*models.CrewAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var assignment models.CrewAssignment
	err := r.coll.FindOne(ctx, filter).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *mongoAssignmentRepo) ExistsForDate(ctx context.Context, date, driverID, vehicleID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"date":      date,
		"driverId":  driverID,
		"vehicleId": vehicleID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
