package wizard

import (
	"reflect"
	"testing"

	"dispatchly/models"
)

func TestStepsForJobTypes(t *testing.T) {
	stepNumbers := func(jobType string) []int {
		var nums []int
		for _, st := range StepsFor(jobType) {
			nums = append(nums, st.Number)
		}
		return nums
	}

	tests := []struct {
		jobType string
		want    []int
	}{
		{models.JobTypeDelivery, []int{1, 2, 3, 4, 5, 6, 7}},
		{models.JobTypeSurvey, []int{1, 2, 3, 4, 5, 6, 7}},
		{models.JobTypeService, []int{1, 2, 3, 4, 5, 6}},
		{models.JobTypePickup, []int{1, 2, 3, 4, 6}},
		{"", []int{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.jobType, func(t *testing.T) {
			if got := stepNumbers(tt.jobType); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StepsFor(%q) numbers = %v, want %v", tt.jobType, got, tt.want)
			}
		})
	}
}

func TestPickupSequenceSkipsStepFive(t *testing.T) {
	// Pickup jobs keep their absolute numbering: 1,2,3,4 then review at 6.
	// Step 5 must not exist at all.
	if _, ok := StepForNumber(models.JobTypePickup, 5); ok {
		t.Fatal("step 5 should not exist for pickup jobs")
	}
	st, ok := StepForNumber(models.JobTypePickup, 6)
	if !ok || st.ID != StepReview {
		t.Fatalf("step 6 for pickup = %+v (ok=%v), want review", st, ok)
	}
	if got := FinalStepNumber(models.JobTypePickup); got != 6 {
		t.Errorf("FinalStepNumber(pickup) = %d, want 6", got)
	}
}

func TestServiceSequenceReplacesInventory(t *testing.T) {
	st, ok := StepForNumber(models.JobTypeService, 5)
	if !ok || st.ID != StepServices {
		t.Fatalf("step 5 for service = %+v (ok=%v), want services", st, ok)
	}
	st, ok = StepForNumber(models.JobTypeService, 6)
	if !ok || st.ID != StepReview {
		t.Fatalf("step 6 for service = %+v (ok=%v), want review", st, ok)
	}
	if _, ok := StepForNumber(models.JobTypeService, 7); ok {
		t.Error("step 7 should not exist for service jobs")
	}
}

func pickupSession() *models.WizardSession {
	return &models.WizardSession{
		WizardMode:  models.WizardModeJob,
		CurrentStep: 1,
		HighestStep: 1,
		Data: models.JobDocument{
			CustomerID:    "cust-1",
			JobType:       models.JobTypePickup,
			ScheduledDate: "2025-03-10",
			Location:      models.LocationSelection{SavedLocationID: "loc-1"},
		},
	}
}

func TestAdvanceWalksPickupSequence(t *testing.T) {
	s := pickupSession()

	wantPath := []int{2, 3, 4, 6}
	for _, want := range wantPath {
		if ok := Advance(s); !ok {
			t.Fatalf("Advance from step %d failed: %v", s.CurrentStep, s.Errors)
		}
		if s.CurrentStep != want {
			t.Fatalf("CurrentStep = %d, want %d", s.CurrentStep, want)
		}
	}
	if s.HighestStep != 6 {
		t.Errorf("HighestStep = %d, want 6", s.HighestStep)
	}

	// Advancing from the final step stays put.
	Advance(s)
	if s.CurrentStep != 6 {
		t.Errorf("CurrentStep after advancing past review = %d, want 6", s.CurrentStep)
	}
}

func TestAdvanceBlockedByValidation(t *testing.T) {
	s := pickupSession()
	s.Data.CustomerID = ""

	if ok := Advance(s); ok {
		t.Fatal("Advance should fail without a customer")
	}
	if s.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1 (no movement on validation failure)", s.CurrentStep)
	}
	if s.Errors["customerId"] == "" {
		t.Errorf("expected customerId error, got %v", s.Errors)
	}
}

func TestRetreatAndJump(t *testing.T) {
	s := pickupSession()
	for i := 0; i < 4; i++ {
		Advance(s)
	}
	// At review (6); back goes to 4, skipping the hole at 5.
	Retreat(s)
	if s.CurrentStep != 4 {
		t.Fatalf("Retreat from 6 landed on %d, want 4", s.CurrentStep)
	}

	// Jumping anywhere already reached is fine, including review.
	for _, n := range []int{1, 2, 3, 4, 6} {
		if err := JumpTo(s, n); err != nil {
			t.Errorf("JumpTo(%d): %v", n, err)
		}
	}

	// Step 5 does not exist for pickup.
	if err := JumpTo(s, 5); err == nil {
		t.Error("JumpTo(5) should fail for pickup jobs")
	}
}

func TestJumpToBeyondHighestStep(t *testing.T) {
	s := pickupSession()
	Advance(s) // highest = 2

	if err := JumpTo(s, 4); err == nil {
		t.Error("JumpTo past HighestStep should fail")
	}
	if s.CurrentStep != 2 {
		t.Errorf("CurrentStep = %d, want 2", s.CurrentStep)
	}
}

func TestRetreatOnFirstStepIsNoOp(t *testing.T) {
	s := pickupSession()
	Retreat(s)
	if s.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep)
	}
}
