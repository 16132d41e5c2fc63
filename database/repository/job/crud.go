// File: database/repository/job/crud.go
package jobRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatchly/models"
)

func (r *mongoJobRepo) CreateJob(ctx context.Context, job *models.Job) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Status == "" {
		job.Status = models.JobStatusScheduled
	}
	job.CreatedAt = time.Now()

	if _, err := r.jobs.InsertOne(ctx, job); err != nil {
		return "", err
	}
	return job.ID, nil
}

func (r *mongoJobRepo) CreateLineItem(ctx context.Context, item *models.JobLineItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	if _, err := r.lineItems.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *mongoJobRepo) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var job models.Job
	if err := r.jobs.FindOne(ctx, bson.M{"id": id}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *mongoJobRepo) GetJobsByDate(ctx context.Context, date string) ([]models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.jobs.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *mongoJobRepo) SetLinkedQuote(ctx context.Context, jobID, quoteID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.jobs.UpdateOne(ctx,
		bson.M{"id": jobID},
		bson.M{"$set": bson.M{"linkedQuoteId": quoteID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
