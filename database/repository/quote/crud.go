// File: database/repository/quote/crud.go
package quoteRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dispatchly/models"
)

func (r *mongoQuoteRepo) CreateQuote(ctx context.Context, quote *models.Quote) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if quote.Status == "" {
		quote.Status = models.QuoteStatusDraft
	}
	quote.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, quote); err != nil {
		return "", err
	}
	return quote.ID, nil
}

func (r *mongoQuoteRepo) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var quote models.Quote
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *mongoQuoteRepo) SetStatus(ctx context.Context, id, status, deliveryMethod string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"status": status}
	if deliveryMethod != "" {
		update["deliveryMethod"] = deliveryMethod
	}
	if status == models.QuoteStatusSent {
		update["sentAt"] = time.Now()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
