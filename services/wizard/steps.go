package wizard

import (
	"fmt"

	"dispatchly/models"
)

// StepID identifies what a wizard step collects, independent of its number.
type StepID int

const (
	StepCustomer StepID = iota + 1
	StepSchedule
	StepLocation
	StepCrew
	StepInventory
	StepServices
	StepReview
)

func (s StepID) String() string {
	switch s {
	case StepCustomer:
		return "customer"
	case StepSchedule:
		return "schedule"
	case StepLocation:
		return "location"
	case StepCrew:
		return "crew"
	case StepInventory:
		return "inventory"
	case StepServices:
		return "services"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// WizardStep pairs a step's displayed number with its identity. Numbers are
// job-type dependent: some types omit numbers entirely rather than renumber.
type WizardStep struct {
	Number int    `json:"number"`
	ID     StepID `json:"-"`
	Name   string `json:"name"`
}

// The legal step sequence per job type, as data rather than control flow.
// Delivery and survey carry the full sequence. Service jobs have no inventory
// step; the services-only step takes its number. Pickup jobs have neither an
// inventory nor a services step and reach review at step 6.
var stepTables = map[string][]WizardStep{
	models.JobTypeService: {
		{Number: 1, ID: StepCustomer},
		{Number: 2, ID: StepSchedule},
		{Number: 3, ID: StepLocation},
		{Number: 4, ID: StepCrew},
		{Number: 5, ID: StepServices},
		{Number: 6, ID: StepReview},
	},
	models.JobTypePickup: {
		{Number: 1, ID: StepCustomer},
		{Number: 2, ID: StepSchedule},
		{Number: 3, ID: StepLocation},
		{Number: 4, ID: StepCrew},
		{Number: 6, ID: StepReview},
	},
}

var defaultStepTable = []WizardStep{
	{Number: 1, ID: StepCustomer},
	{Number: 2, ID: StepSchedule},
	{Number: 3, ID: StepLocation},
	{Number: 4, ID: StepCrew},
	{Number: 5, ID: StepInventory},
	{Number: 6, ID: StepServices},
	{Number: 7, ID: StepReview},
}

// StepsFor returns the ordered legal step list for a job type. Before a job
// type is chosen the full sequence applies; only steps 1-2 are reachable then
// anyway.
func StepsFor(jobType string) []WizardStep {
	if table, ok := stepTables[jobType]; ok {
		steps := make([]WizardStep, len(table))
		copy(steps, table)
		for i := range steps {
			steps[i].Name = steps[i].ID.String()
		}
		return steps
	}
	steps := make([]WizardStep, len(defaultStepTable))
	copy(steps, defaultStepTable)
	for i := range steps {
		steps[i].Name = steps[i].ID.String()
	}
	return steps
}

// StepForNumber resolves a step number for a job type. ok is false when the
// number is not part of that type's sequence.
func StepForNumber(jobType string, number int) (WizardStep, bool) {
	for _, st := range StepsFor(jobType) {
		if st.Number == number {
			return st, true
		}
	}
	return WizardStep{}, false
}

// FinalStepNumber returns the review step's number for a job type.
func FinalStepNumber(jobType string) int {
	steps := StepsFor(jobType)
	return steps[len(steps)-1].Number
}

// IsQuotePreview reports whether the session's review step renders as a quote
// preview rather than a job review.
func IsQuotePreview(s *models.WizardSession) bool {
	return s.WizardMode == models.WizardModeQuote
}

// Advance validates the current step and moves forward when it is clean.
// On validation errors the session stays put with Errors populated.
func Advance(s *models.WizardSession) bool {
	errs := ValidateStep(s, s.CurrentStep)
	s.Errors = errs
	if len(errs) > 0 {
		return false
	}

	steps := StepsFor(s.Data.JobType)
	for i, st := range steps {
		if st.Number == s.CurrentStep && i+1 < len(steps) {
			s.CurrentStep = steps[i+1].Number
			if s.CurrentStep > s.HighestStep {
				s.HighestStep = s.CurrentStep
			}
			break
		}
	}
	return true
}

// Retreat moves one step back without re-validation. It always succeeds;
// on the first step it is a no-op.
func Retreat(s *models.WizardSession) {
	steps := StepsFor(s.Data.JobType)
	for i, st := range steps {
		if st.Number == s.CurrentStep && i > 0 {
			s.CurrentStep = steps[i-1].Number
			s.Errors = nil
			return
		}
	}
}

// JumpTo moves directly to a step, as used by the nav bar and review "Edit"
// links. Only steps at or below the highest step already reached are legal,
// which prevents skipping ahead past unvalidated steps.
func JumpTo(s *models.WizardSession, number int) error {
	if _, ok := StepForNumber(s.Data.JobType, number); !ok {
		return fmt.Errorf("step %d does not exist for job type %q", number, s.Data.JobType)
	}
	if number > s.HighestStep {
		return fmt.Errorf("step %d has not been reached yet (highest is %d)", number, s.HighestStep)
	}
	s.CurrentStep = number
	s.Errors = nil
	return nil
}
