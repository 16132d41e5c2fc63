package wizard

import (
	"testing"

	"dispatchly/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestPatchApplyRefreshesDerivedFields(t *testing.T) {
	doc := models.JobDocument{
		CustomerID: "c1",
		JobType:    models.JobTypeDelivery,
		Services: []models.ServiceSelection{{
			ServiceID:     "s1",
			PricingMethod: models.PricingPerVisit,
			BaseRate:      50,
			Frequency:     models.FrequencyDaily,
		}},
	}

	patch := DocumentPatch{
		ScheduledDate:      strPtr("2025-03-02"),
		RentalDurationDays: intPtr(2),
	}
	patch.Apply(&doc)

	if doc.ReturnDate != "2025-03-04" {
		t.Errorf("ReturnDate = %q, want 2025-03-04", doc.ReturnDate)
	}
	// Daily over 02..04 is three visits.
	if doc.Services[0].VisitCount != 3 {
		t.Errorf("VisitCount = %d, want 3", doc.Services[0].VisitCount)
	}
	if doc.Services[0].CalculatedCost != 150 {
		t.Errorf("CalculatedCost = %v, want 150", doc.Services[0].CalculatedCost)
	}
}

func TestPatchDurationExclusivity(t *testing.T) {
	doc := models.JobDocument{ScheduledDate: "2025-03-02"}

	DocumentPatch{RentalDurationDays: intPtr(3)}.Apply(&doc)
	if doc.RentalDurationDays == nil || doc.RentalDurationHours != nil {
		t.Fatalf("after days patch: days=%v hours=%v", doc.RentalDurationDays, doc.RentalDurationHours)
	}

	DocumentPatch{RentalDurationHours: intPtr(6)}.Apply(&doc)
	if doc.RentalDurationDays != nil {
		t.Error("hours patch should clear days")
	}

	// A raw patch carrying both resolves to hours as the later write.
	doc = models.JobDocument{ScheduledDate: "2025-03-02"}
	DocumentPatch{RentalDurationDays: intPtr(3), RentalDurationHours: intPtr(6)}.Apply(&doc)
	if doc.RentalDurationDays != nil {
		t.Error("days should be cleared when both are patched")
	}
	if doc.RentalDurationHours == nil || *doc.RentalDurationHours != 6 {
		t.Errorf("hours = %v, want 6", doc.RentalDurationHours)
	}
}

func TestPatchClearingCustomerClearsDependents(t *testing.T) {
	doc := models.JobDocument{
		CustomerID: "c1",
		ContactID:  "ct1",
		Location:   models.LocationSelection{SavedLocationID: "loc-1"},
	}

	DocumentPatch{CustomerID: strPtr("")}.Apply(&doc)

	if doc.CustomerID != "" || doc.ContactID != "" {
		t.Errorf("customer/contact = %q/%q, want both cleared", doc.CustomerID, doc.ContactID)
	}
	if doc.Location.IsResolved() {
		t.Errorf("location should be cleared with the customer, got %+v", doc.Location)
	}
}

func TestPatchSwitchingCustomerKeepsNothingStale(t *testing.T) {
	doc := models.JobDocument{CustomerID: "c1", ContactID: "ct1"}

	DocumentPatch{CustomerID: strPtr("c2")}.Apply(&doc)

	// A non-empty replacement keeps the contact; it may still belong to the
	// new customer and the validator re-checks anyway.
	if doc.CustomerID != "c2" {
		t.Errorf("CustomerID = %q, want c2", doc.CustomerID)
	}
}

func TestPatchPickupPlanLifecycle(t *testing.T) {
	doc := models.JobDocument{ScheduledDate: "2025-03-02"}

	plan := &models.PickupPlan{CreatePickupJob: true, PickupDate: "2025-03-09"}
	DocumentPatch{PickupPlan: plan}.Apply(&doc)
	if doc.PickupPlan == nil || doc.PickupPlan.PickupDate != "2025-03-09" {
		t.Fatalf("PickupPlan = %+v", doc.PickupPlan)
	}

	DocumentPatch{ClearPickupPlan: true}.Apply(&doc)
	if doc.PickupPlan != nil {
		t.Errorf("PickupPlan should be cleared, got %+v", doc.PickupPlan)
	}
}

func TestPatchUntouchedFieldsSurvive(t *testing.T) {
	doc := models.JobDocument{
		CustomerID:    "c1",
		JobType:       models.JobTypeDelivery,
		ScheduledDate: "2025-03-02",
		Timezone:      "America/Chicago",
	}

	DocumentPatch{ScheduledTime: strPtr("08:30")}.Apply(&doc)

	if doc.CustomerID != "c1" || doc.JobType != models.JobTypeDelivery || doc.Timezone != "America/Chicago" {
		t.Errorf("unrelated fields changed: %+v", doc)
	}
	if doc.ScheduledTime != "08:30" {
		t.Errorf("ScheduledTime = %q, want 08:30", doc.ScheduledTime)
	}
}
