package models

import "time"

// Quote statuses.
const (
	QuoteStatusDraft   = "draft"
	QuoteStatusPending = "pending"
	QuoteStatusSent    = "sent"
)

// Quote delivery methods.
const (
	DeliveryEmail = "email"
	DeliverySMS   = "sms"
	DeliveryBoth  = "both"
)

// Quote is a priced proposal derived from the wizard document. In
// job_and_quote mode it is linked to the primary job by id.
type Quote struct {
	ID         string `bson:"id" json:"id"`
	CustomerID string `bson:"customerId" json:"customerId"`
	ContactID  string `bson:"contactId" json:"contactId,omitempty"`
	JobID      string `bson:"jobId" json:"jobId,omitempty"`

	JobType       string `bson:"jobType" json:"jobType"`
	ScheduledDate string `bson:"scheduledDate" json:"scheduledDate"`
	ReturnDate    string `bson:"returnDate" json:"returnDate,omitempty"`

	Items []InventoryLineRequest `bson:"items" json:"items,omitempty"`
	Lines []QuoteLine            `bson:"lines" json:"lines,omitempty"`
	Total float64                `bson:"total" json:"total"`

	Status         string    `bson:"status" json:"status"`
	DeliveryMethod string    `bson:"deliveryMethod" json:"deliveryMethod,omitempty"`
	SentAt         time.Time `bson:"sentAt" json:"sentAt,omitzero"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// QuoteDeliveryPayload is the asynq task payload for sending a quote to its
// customer by email, SMS or both.
type QuoteDeliveryPayload struct {
	QuoteID string `json:"quoteId"`
	Method  string `json:"method"`
}

// QuoteLine is one priced line on a quote.
type QuoteLine struct {
	ServiceID  string  `bson:"serviceId" json:"serviceId,omitempty"`
	Name       string  `bson:"name" json:"name"`
	VisitCount int     `bson:"visitCount" json:"visitCount,omitempty"`
	Amount     float64 `bson:"amount" json:"amount"`
}
