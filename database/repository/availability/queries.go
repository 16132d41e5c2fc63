// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"dispatchly/models"
)

const queryTimeout = 5 * time.Second

// overlapFilter matches scheduled jobs whose rental window intersects
// [startDate, endDate]. Jobs without a return date occupy only their own day.
func overlapFilter(startDate, endDate string) bson.M {
	return bson.M{
		"status": models.JobStatusScheduled,
		"date":   bson.M{"$lte": endDate},
		"$or": bson.A{
			bson.M{"returnDate": bson.M{"$gte": startDate}},
			bson.M{"returnDate": "", "date": bson.M{"$gte": startDate}},
		},
	}
}

// AvailableQuantity returns the on-hand stock of a product minus the
// quantities held by jobs overlapping the window.
func (r *mongoAvailabilityRepo) AvailableQuantity(ctx context.Context, productID, startDate, endDate string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product models.Product
	if err := r.products.FindOne(ctx, bson.M{"id": productID}).Decode(&product); err != nil {
		return 0, err
	}
	stock := 0
	for _, qty := range product.Stock {
		stock += qty
	}

	cursor, err := r.jobs.Find(ctx, overlapFilter(startDate, endDate))
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return 0, err
	}

	reserved := 0
	for _, job := range jobs {
		for _, line := range job.Items {
			if line.ProductID == productID {
				reserved += line.Quantity
			}
		}
	}

	available := stock - reserved
	if available < 0 {
		available = 0
	}
	return available, nil
}

// AvailableUnitIDs returns the individually tracked unit ids of a product not
// held by any job overlapping the window.
func (r *mongoAvailabilityRepo) AvailableUnitIDs(ctx context.Context, productID, startDate, endDate string) ([]string, error) {
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

	jobCursor, err := r.jobs.Find(ctx, overlapFilter(startDate, endDate))
	if err != nil {
		return nil, err
	}
	defer jobCursor.Close(ctx)

	var jobs []models.Job
	if err := jobCursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	taken := make(map[string]bool)
	for _, job := range jobs {
		for _, line := range job.Items {
			if line.ProductID != productID {
				continue
			}
			for _, unitID := range line.SpecificItemIDs {
				taken[unitID] = true
			}
		}
	}

	var free []string
	for _, unit := range units {
		if !taken[unit.ID] {
			free = append(free, unit.ID)
		}
	}
	return free, nil
}
