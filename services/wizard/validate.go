package wizard

import (
	"fmt"

	"dispatchly/models"
)

// ValidateStep runs the validator for one step and returns per-field error
// messages. An empty map means the step is clean. These errors block step
// advancement only; they are never fatal.
func ValidateStep(s *models.WizardSession, number int) map[string]string {
	step, ok := StepForNumber(s.Data.JobType, number)
	if !ok {
		return map[string]string{"step": fmt.Sprintf("step %d is not valid for this job type", number)}
	}

	errs := map[string]string{}
	switch step.ID {
	case StepCustomer:
		validateCustomer(s.Data, errs)
	case StepSchedule:
		validateSchedule(s.Data, errs)
	case StepLocation:
		validateLocation(s.Data, errs)
	case StepCrew:
		validateCrew(s, errs)
	case StepInventory:
		validateInventory(s.Data, errs)
	case StepServices:
		validateServices(s.Data, errs)
	case StepReview:
		validateReview(s, errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateCustomer(doc models.JobDocument, errs map[string]string) {
	if doc.CustomerID == "" {
		errs["customerId"] = "select a customer"
	}
}

func validateSchedule(doc models.JobDocument, errs map[string]string) {
	if doc.JobType == "" {
		errs["jobType"] = "select a job type"
		return
	}
	if doc.ScheduledDate == "" {
		if doc.JobType == models.JobTypePickup {
			errs["scheduledDate"] = "pickup date is required"
		} else {
			errs["scheduledDate"] = "scheduled date is required"
		}
	}

	// Rental days and hours are mutually exclusive. The setters maintain
	// this, so both being set means the document was patched raw.
	if doc.RentalDurationDays != nil && doc.RentalDurationHours != nil {
		errs["rentalDuration"] = "rental duration cannot be set in both days and hours"
	}

	if doc.PickupPlan != nil {
		validatePickupPlan(doc, *doc.PickupPlan, errs)
	}
}

func validatePickupPlan(doc models.JobDocument, plan models.PickupPlan, errs map[string]string) {
	if plan.CreatePickupJob && plan.PickupDate == "" {
		errs["pickupPlan.pickupDate"] = "pickup date is required to create a pickup job"
	}
	if plan.PickupDate != "" && doc.ScheduledDate != "" && plan.PickupDate < doc.ScheduledDate {
		errs["pickupPlan.pickupDate"] = "pickup date cannot be before the scheduled date"
	}

	if !plan.CreatePartialPickups && len(plan.PartialPickups) > 0 {
		errs["pickupPlan.partialPickups"] = "partial pickups are listed but partial pickups are not enabled"
		return
	}
	for i, pp := range plan.PartialPickups {
		field := fmt.Sprintf("pickupPlan.partialPickups[%d].date", i)
		if pp.Date == "" {
			errs[field] = "partial pickup date is required"
			continue
		}
		// Partial pickups must fall within [scheduledDate, pickupDate).
		if doc.ScheduledDate != "" && pp.Date < doc.ScheduledDate {
			errs[field] = "partial pickup cannot be before the scheduled date"
		}
		if plan.PickupDate != "" && pp.Date >= plan.PickupDate {
			errs[field] = "partial pickup must be before the final pickup date"
		}
	}
}

func validateLocation(doc models.JobDocument, errs map[string]string) {
	loc := doc.Location
	if loc.SavedLocationID != "" && loc.NewAddress != nil {
		errs["location"] = "choose a saved location or enter a new address, not both"
		return
	}
	if !loc.IsResolved() {
		errs["location"] = "a service location is required"
	}
}

// The crew step is optional, but advancement is blocked while the last
// availability report shows conflicts.
func validateCrew(s *models.WizardSession, errs map[string]string) {
	if s.HasConflicts() {
		errs["assignment"] = "resolve availability conflicts before continuing"
	}
}

func validateInventory(doc models.JobDocument, errs map[string]string) {
	for i, line := range doc.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if line.ProductID == "" {
			errs[prefix+".productId"] = "product is required"
		}
		if line.Quantity < 1 {
			errs[prefix+".quantity"] = "quantity must be at least 1"
		}
		switch line.Strategy {
		case models.StrategySpecific:
			if len(line.SpecificItemIDs) > line.Quantity {
				errs[prefix+".specificItemIds"] = "more specific units selected than the requested quantity"
			}
		case models.StrategyBulk, "":
			if len(line.SpecificItemIDs) > 0 {
				errs[prefix+".specificItemIds"] = "specific units are only valid with the specific strategy"
			}
		default:
			errs[prefix+".strategy"] = fmt.Sprintf("unknown strategy %q", line.Strategy)
		}
	}
}

func validateServices(doc models.JobDocument, errs map[string]string) {
	for i, sel := range doc.Services {
		prefix := fmt.Sprintf("services[%d]", i)
		if sel.Frequency == "" {
			errs[prefix+".frequency"] = "frequency is required"
			continue
		}
		if sel.Frequency != models.FrequencyCustom {
			continue
		}
		switch sel.CustomType {
		case models.CustomDaysInterval:
			if sel.IntervalDays < 1 {
				errs[prefix+".intervalDays"] = "interval must be at least 1 day"
			}
		case models.CustomDaysOfWeek:
			if len(sel.DaysOfWeek) == 0 {
				errs[prefix+".daysOfWeek"] = "select at least one weekday"
			}
		case models.CustomSpecificDates:
			if len(sel.SpecificDates) == 0 {
				errs[prefix+".specificDates"] = "add at least one date"
			}
		default:
			errs[prefix+".customType"] = "choose a custom frequency type"
		}
	}
}

// The review step re-runs every earlier step's validator so nothing edited
// out from under the wizard slips through, then gates on conflicts.
func validateReview(s *models.WizardSession, errs map[string]string) {
	for _, st := range StepsFor(s.Data.JobType) {
		if st.ID == StepReview {
			break
		}
		for field, msg := range ValidateStep(s, st.Number) {
			errs[field] = msg
		}
	}
	if s.HasConflicts() {
		errs["conflicts"] = "availability conflicts must be resolved before submitting"
	}
}
