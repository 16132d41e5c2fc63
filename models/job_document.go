package models

// Job types supported by the wizard. The job type is the discriminant that
// decides which later steps are visible and required.
const (
	JobTypeDelivery = "delivery"
	JobTypePickup   = "pickup"
	JobTypeService  = "service"
	JobTypeSurvey   = "on-site-survey"
)

// Wizard modes.
const (
	WizardModeJob         = "job"
	WizardModeQuote       = "quote"
	WizardModeJobAndQuote = "job_and_quote"
)

// Inventory reservation strategies.
const (
	StrategyBulk     = "bulk"
	StrategySpecific = "specific"
)

// JobDocument is the wizard's working document. It is owned exclusively by the
// active wizard session and is destroyed on close, submit or reset.
type JobDocument struct {
	CustomerID string `bson:"customerId" json:"customerId,omitempty"`
	ContactID  string `bson:"contactId" json:"contactId,omitempty"`

	JobType string `bson:"jobType" json:"jobType,omitempty"`

	ScheduledDate string `bson:"scheduledDate" json:"scheduledDate,omitempty"` // "YYYY-MM-DD"
	ScheduledTime string `bson:"scheduledTime" json:"scheduledTime,omitempty"` // "HH:MM", optional
	Timezone      string `bson:"timezone" json:"timezone,omitempty"`

	// Rental duration is mutually exclusive: at most one of days/hours is set.
	// ReturnDate is derived from it, never entered directly.
	RentalDurationDays  *int   `bson:"rentalDurationDays" json:"rentalDurationDays,omitempty"`
	RentalDurationHours *int   `bson:"rentalDurationHours" json:"rentalDurationHours,omitempty"`
	ReturnDate          string `bson:"returnDate" json:"returnDate,omitempty"`

	PickupPlan *PickupPlan `bson:"pickupPlan" json:"pickupPlan,omitempty"`

	Location   LocationSelection `bson:"location" json:"location"`
	Assignment Assignment        `bson:"assignment" json:"assignment"`

	Items    []InventoryLineRequest `bson:"items" json:"items,omitempty"`
	Services []ServiceSelection     `bson:"services" json:"services,omitempty"`
}

// PickupPlan describes the return leg of a delivery: an optional full pickup
// job plus optional interim partial pickups.
type PickupPlan struct {
	CreatePickupJob bool   `bson:"createPickupJob" json:"createPickupJob"`
	PickupDate      string `bson:"pickupDate" json:"pickupDate,omitempty"`
	PickupTime      string `bson:"pickupTime" json:"pickupTime,omitempty"`

	// Explicit inventory selection for the pickup job. When empty, the pickup
	// job carries the same items as the primary job.
	Items []InventoryLineRequest `bson:"items" json:"items,omitempty"`

	CreatePartialPickups bool            `bson:"createPartialPickups" json:"createPartialPickups"`
	PartialPickups       []PartialPickup `bson:"partialPickups" json:"partialPickups,omitempty"`
}

// PartialPickup is an interim pickup of a subset of delivered inventory.
// Its date must fall within [scheduledDate, pickupDate).
type PartialPickup struct {
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time,omitempty"`
	Note string `bson:"note" json:"note,omitempty"`

	// Inventory subset; falls back to the primary items when empty.
	Items []InventoryLineRequest `bson:"items" json:"items,omitempty"`
}

// LocationSelection is either a reference to a saved service location or an
// inline new-address payload; exactly one is active.
type LocationSelection struct {
	SavedLocationID string   `bson:"savedLocationId" json:"savedLocationId,omitempty"`
	NewAddress      *Address `bson:"newAddress" json:"newAddress,omitempty"`
}

// IsResolved reports whether the selection points at a usable location.
func (l LocationSelection) IsResolved() bool {
	if l.SavedLocationID != "" {
		return true
	}
	return l.NewAddress != nil && !l.NewAddress.IsEmpty()
}

// Address is an inline service address.
type Address struct {
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
}

func (a Address) IsEmpty() bool {
	return a.Line1 == "" && a.City == "" && a.PostalCode == ""
}

// Assignment holds the optional crew assignment for the job.
type Assignment struct {
	DriverID  string `bson:"driverId" json:"driverId,omitempty"`
	VehicleID string `bson:"vehicleId" json:"vehicleId,omitempty"`
}

// InventoryLineRequest requests inventory either by quantity from a pool
// (bulk) or by named individual unit ids (specific).
type InventoryLineRequest struct {
	ProductID       string   `bson:"productId" json:"productId"`
	Quantity        int      `bson:"quantity" json:"quantity"`
	Strategy        string   `bson:"strategy" json:"strategy"`
	SpecificItemIDs []string `bson:"specificItemIds" json:"specificItemIds,omitempty"`
}

// SetRentalDurationDays sets the day-based rental duration and clears the
// hour-based one; at most one of the two is ever set.
func (d *JobDocument) SetRentalDurationDays(days int) {
	d.RentalDurationDays = &days
	d.RentalDurationHours = nil
}

// SetRentalDurationHours sets the hour-based rental duration and clears the
// day-based one.
func (d *JobDocument) SetRentalDurationHours(hours int) {
	d.RentalDurationHours = &hours
	d.RentalDurationDays = nil
}
