// File: database/repository/job/interface.go
package jobRepo

import (
	"context"

	"dispatchly/database"
	"dispatchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// JobRepository persists committed jobs and their service line items. Every
// create returns the new record's id so later commit steps can chain on it.
type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) (string, error)
	CreateLineItem(ctx context.Context, item *models.JobLineItem) (string, error)
	GetJobByID(ctx context.Context, id string) (*models.Job, error)
	GetJobsByDate(ctx context.Context, date string) ([]models.Job, error)
	SetLinkedQuote(ctx context.Context, jobID, quoteID string) error
}

type mongoJobRepo struct {
	jobs      *mongo.Collection
	lineItems *mongo.Collection
}

// NewMongoJobRepo constructs a new MongoDB JobRepository.
func NewMongoJobRepo() JobRepository {
	db := database.MongoClient.Database("dispatchly")
	return &mongoJobRepo{
		jobs:      db.Collection("jobs"),
		lineItems: db.Collection("job_line_items"),
	}
}
