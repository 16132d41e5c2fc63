// File: database/repository/draft/crud.go
package draftRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dispatchly/models"
)

func (r *mongoDraftRepo) Save(ctx context.Context, draft *models.Draft) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if draft.ID == "" {
		draft.ID = uuid.New().String()
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": draft.ID}, draft, opts); err != nil {
		return "", err
	}
	return draft.ID, nil
}

func (r *mongoDraftRepo) List(ctx context.Context, dispatcherID string) ([]models.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"updatedAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"dispatcherId": dispatcherID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drafts []models.Draft
	if err := cursor.All(ctx, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *mongoDraftRepo) GetByID(ctx context.Context, id string) (*models.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var draft models.Draft
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *mongoDraftRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
