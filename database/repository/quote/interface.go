// File: database/repository/quote/interface.go
package quoteRepo

import (
	"context"

	"dispatchly/database"
	"dispatchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// QuoteRepository persists quotes created from the wizard.
type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote *models.Quote) (string, error)
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	SetStatus(ctx context.Context, id, status, deliveryMethod string) error
}

type mongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo constructs a new MongoDB QuoteRepository.
func NewMongoQuoteRepo() QuoteRepository {
	db := database.MongoClient.Database("dispatchly")
	return &mongoQuoteRepo{
		coll: db.Collection("quotes"),
	}
}
