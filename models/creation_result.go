package models

// CreatedEntity identifies one record created during a commit.
type CreatedEntity struct {
	Step string `json:"step"` // commit step that created it
	Kind string `json:"kind"` // "job", "lineItem", "assignment", "quote"
	ID   string `json:"id"`
}

// CreationResult reports the outcome of a commit. There is no atomic
// multi-entity transaction behind it: when a step fails, everything created
// by earlier steps stays committed and is listed here so the caller can
// retry or reconcile manually.
type CreationResult struct {
	JobsCreated int             `json:"jobsCreated"`
	Created     []CreatedEntity `json:"created,omitempty"`
	QuoteID     string          `json:"quoteId,omitempty"`

	// FailedStep names the commit step that failed, empty on full success.
	FailedStep    string `json:"failedStep,omitempty"`
	FailureDetail string `json:"failureDetail,omitempty"`

	// RolledBack is always false today; the field exists so the gap is
	// explicit in the payload rather than implied.
	RolledBack bool `json:"rolledBack"`
}

// Succeeded reports whether every commit step completed.
func (r *CreationResult) Succeeded() bool {
	return r.FailedStep == ""
}
