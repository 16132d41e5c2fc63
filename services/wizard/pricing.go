package wizard

import (
	"fmt"
	"time"

	"dispatchly/models"
)

// PerVisitCost returns the computed cost of a single visit for a selection.
// Flat-rate services have no per-visit component; their cost is applied as a
// whole in FinalServiceCost.
func PerVisitCost(sel models.ServiceSelection) float64 {
	switch sel.PricingMethod {
	case models.PricingPerHour:
		return sel.BaseRate * sel.HoursPerVisit
	case models.PricingFlatRate:
		return 0
	default:
		return sel.BaseRate
	}
}

// FinalServiceCost applies the selection's price override (when present) to a
// computed schedule. The schedule's own TotalCost stays untouched so the
// delta between computed and charged cost remains visible.
func FinalServiceCost(sel models.ServiceSelection, schedule VisitSchedule) float64 {
	if sel.PriceOverride != nil {
		switch sel.PriceOverride.Method {
		case models.OverrideFlatForJob:
			return sel.PriceOverride.Amount
		case models.OverridePerVisit:
			return sel.PriceOverride.Amount * float64(len(schedule.Visits))
		}
	}
	if sel.PricingMethod == models.PricingFlatRate {
		return sel.BaseRate
	}
	return schedule.TotalCost
}

// windowEnd resolves the date a document's hold runs through: the return
// date, or the planned pickup date when no return date is derived yet. Empty
// means the hold is a single day.
func windowEnd(doc models.JobDocument) string {
	if doc.ReturnDate != "" {
		return doc.ReturnDate
	}
	if doc.PickupPlan != nil {
		return doc.PickupPlan.PickupDate
	}
	return ""
}

// ServiceWindow returns the window a document's services expand over: the
// scheduled date through the resolved end of the hold.
func ServiceWindow(doc models.JobDocument) (DateWindow, error) {
	return WindowFromStrings(doc.ScheduledDate, windowEnd(doc))
}

// RecalculateService recomputes the derived fields (visit count, dates,
// calculated cost) on a selection in place and returns the schedule used.
func RecalculateService(sel *models.ServiceSelection, window DateWindow) VisitSchedule {
	flags := VisitFlags{Dropoff: sel.IncludeDropoffService, Pickup: sel.IncludePickupService}
	schedule := ComputeVisits(window, SpecFromSelection(*sel), flags, PerVisitCost(*sel))

	sel.VisitCount = len(schedule.Visits)
	sel.CalculatedCost = FinalServiceCost(*sel, schedule)
	sel.ServiceDates = make([]string, len(schedule.Visits))
	for i, v := range schedule.Visits {
		sel.ServiceDates[i] = v.Date
	}
	return schedule
}

// ComputeReturnDate derives the return date from the rental duration. Days
// and hours are mutually exclusive; an hour-based duration is anchored at the
// scheduled time when one is set.
func ComputeReturnDate(doc models.JobDocument) (string, error) {
	if doc.RentalDurationDays == nil && doc.RentalDurationHours == nil {
		return "", nil
	}
	if doc.ScheduledDate == "" {
		return "", fmt.Errorf("cannot derive return date without a scheduled date")
	}

	anchor, err := time.Parse(DateLayout, doc.ScheduledDate)
	if err != nil {
		return "", fmt.Errorf("invalid scheduled date %q: %w", doc.ScheduledDate, err)
	}
	if doc.ScheduledTime != "" {
		if t, terr := time.Parse("15:04", doc.ScheduledTime); terr == nil {
			anchor = anchor.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}

	if doc.RentalDurationDays != nil {
		return anchor.Add(time.Duration(*doc.RentalDurationDays) * 24 * time.Hour).Format(DateLayout), nil
	}
	return anchor.Add(time.Duration(*doc.RentalDurationHours) * time.Hour).Format(DateLayout), nil
}
