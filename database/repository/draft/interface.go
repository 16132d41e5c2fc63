// File: database/repository/draft/interface.go
package draftRepo

import (
	"context"

	"dispatchly/database"
	"dispatchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DraftRepository persists named snapshots of in-progress wizard documents.
type DraftRepository interface {
	Save(ctx context.Context, draft *models.Draft) (string, error)
	List(ctx context.Context, dispatcherID string) ([]models.Draft, error)
	GetByID(ctx context.Context, id string) (*models.Draft, error)
	Delete(ctx context.Context, id string) error
}

type mongoDraftRepo struct {
	coll *mongo.Collection
}

// NewMongoDraftRepo constructs a new MongoDB DraftRepository.
func NewMongoDraftRepo() DraftRepository {
	db := database.MongoClient.Database("dispatchly")
	return &mongoDraftRepo{
		coll: db.Collection("wizard_drafts"),
	}
}
