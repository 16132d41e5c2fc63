package wizard

import (
	"dispatchly/models"
)

// DocumentPatch is a partial update to the wizard document. Absent fields are
// left untouched; pointer fields distinguish "not sent" from "set to empty"
// so identity references can be cleared to restart a selection.
type DocumentPatch struct {
	CustomerID *string `json:"customerId,omitempty"`
	ContactID  *string `json:"contactId,omitempty"`

	JobType       *string `json:"jobType,omitempty"`
	ScheduledDate *string `json:"scheduledDate,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`
	Timezone      *string `json:"timezone,omitempty"`

	RentalDurationDays  *int `json:"rentalDurationDays,omitempty"`
	RentalDurationHours *int `json:"rentalDurationHours,omitempty"`

	PickupPlan      *models.PickupPlan `json:"pickupPlan,omitempty"`
	ClearPickupPlan bool               `json:"clearPickupPlan,omitempty"`

	Location   *models.LocationSelection `json:"location,omitempty"`
	Assignment *models.Assignment        `json:"assignment,omitempty"`

	Items    *[]models.InventoryLineRequest `json:"items,omitempty"`
	Services *[]models.ServiceSelection     `json:"services,omitempty"`
}

// Apply folds the patch into the document and refreshes the derived fields.
// Rental days and hours stay mutually exclusive: whichever the patch sets
// clears the other, and when a patch carries both, hours wins as the later
// write.
func (p DocumentPatch) Apply(doc *models.JobDocument) {
	if p.CustomerID != nil {
		doc.CustomerID = *p.CustomerID
		if doc.CustomerID == "" {
			// Clearing the customer restarts selection; dependent references
			// go with it.
			doc.ContactID = ""
			doc.Location = models.LocationSelection{}
		}
	}
	if p.ContactID != nil {
		doc.ContactID = *p.ContactID
	}
	if p.JobType != nil {
		doc.JobType = *p.JobType
	}
	if p.ScheduledDate != nil {
		doc.ScheduledDate = *p.ScheduledDate
	}
	if p.ScheduledTime != nil {
		doc.ScheduledTime = *p.ScheduledTime
	}
	if p.Timezone != nil {
		doc.Timezone = *p.Timezone
	}

	if p.RentalDurationDays != nil {
		doc.SetRentalDurationDays(*p.RentalDurationDays)
	}
	if p.RentalDurationHours != nil {
		doc.SetRentalDurationHours(*p.RentalDurationHours)
	}

	if p.ClearPickupPlan {
		doc.PickupPlan = nil
	} else if p.PickupPlan != nil {
		doc.PickupPlan = p.PickupPlan
	}

	if p.Location != nil {
		doc.Location = *p.Location
	}
	if p.Assignment != nil {
		doc.Assignment = *p.Assignment
	}
	if p.Items != nil {
		doc.Items = *p.Items
	}
	if p.Services != nil {
		doc.Services = *p.Services
	}

	RefreshDerived(doc)
}

// RefreshDerived recomputes everything the document derives from user input:
// the return date and each service's visit count, dates and cost.
func RefreshDerived(doc *models.JobDocument) {
	if returnDate, err := ComputeReturnDate(*doc); err == nil {
		doc.ReturnDate = returnDate
	}

	if doc.ScheduledDate == "" {
		return
	}
	window, err := ServiceWindow(*doc)
	if err != nil {
		return
	}
	for i := range doc.Services {
		RecalculateService(&doc.Services[i], window)
	}
}
