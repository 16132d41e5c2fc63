package models

import "time"

// Job statuses.
const (
	JobStatusScheduled = "scheduled"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

// Job is a committed, schedulable unit of work tied to a customer and date.
type Job struct {
	ID         string `bson:"id" json:"id"`
	CustomerID string `bson:"customerId" json:"customerId"`
	ContactID  string `bson:"contactId" json:"contactId,omitempty"`
	JobType    string `bson:"jobType" json:"jobType"`

	Date      string `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeOfDay string `bson:"timeOfDay" json:"timeOfDay,omitempty"`
	Timezone  string `bson:"timezone" json:"timezone,omitempty"`

	// ReturnDate is set on delivery jobs with a rental duration.
	ReturnDate string `bson:"returnDate" json:"returnDate,omitempty"`

	LocationID string   `bson:"locationId" json:"locationId,omitempty"`
	Address    *Address `bson:"address" json:"address,omitempty"`

	DriverID  string `bson:"driverId" json:"driverId,omitempty"`
	VehicleID string `bson:"vehicleId" json:"vehicleId,omitempty"`

	Items []InventoryLineRequest `bson:"items" json:"items,omitempty"`

	Note string `bson:"note" json:"note,omitempty"`

	// SourceJobID links derived pickup jobs back to the primary job.
	SourceJobID string `bson:"sourceJobId" json:"sourceJobId,omitempty"`
	// LinkedQuoteID is set in job_and_quote mode.
	LinkedQuoteID string `bson:"linkedQuoteId" json:"linkedQuoteId,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// JobLineItem is one recurring-service line committed with a job. It carries
// the frequency descriptor, computed visit dates and final cost.
type JobLineItem struct {
	ID        string `bson:"id" json:"id"`
	JobID     string `bson:"jobId" json:"jobId"`
	ServiceID string `bson:"serviceId" json:"serviceId"`
	Name      string `bson:"name" json:"name"`

	Frequency    string   `bson:"frequency" json:"frequency"`
	CustomType   string   `bson:"customType" json:"customType,omitempty"`
	VisitDates   []string `bson:"visitDates" json:"visitDates,omitempty"`
	VisitCount   int      `bson:"visitCount" json:"visitCount"`
	TotalCost    float64  `bson:"totalCost" json:"totalCost"`
	PriceSummary string   `bson:"priceSummary" json:"priceSummary,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CrewAssignment is the daily assignment record for a driver/vehicle pair.
// One record per driver (and per vehicle) per calendar day.
type CrewAssignment struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`
	DriverID  string    `bson:"driverId" json:"driverId"`
	VehicleID string    `bson:"vehicleId" json:"vehicleId"`
	JobID     string    `bson:"jobId" json:"jobId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
