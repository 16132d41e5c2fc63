package models

import "time"

// WizardSession is the step machine's envelope. It is created on wizard open
// (fresh or from a draft), mutated by navigation and field updates, and
// discarded on close or submit.
type WizardSession struct {
	SessionID    string `json:"sessionId"`
	DispatcherID string `json:"dispatcherId"`
	WizardMode   string `json:"wizardMode"`

	// CurrentStep and HighestStep are 1-based positions into the step list
	// for the document's job type. HighestStep bounds forward navigation.
	CurrentStep int `json:"currentStep"`
	HighestStep int `json:"highestStep"`

	Data JobDocument `json:"data"`

	// Errors is transient per-field validation output; recomputed by the
	// validator, never persisted to drafts.
	Errors map[string]string `json:"errors,omitempty"`

	// Conflicts holds the most recently applied availability report.
	Conflicts *ConflictReport `json:"conflicts,omitempty"`

	// CheckGeneration is the sequence number of the newest availability check
	// issued for this session. A report is applied only if it carries this
	// generation (last-request-wins).
	CheckGeneration uint64 `json:"checkGeneration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasConflicts reports whether the last applied availability report found
// real conflicts. Unverified checks do not count as conflicts.
func (s *WizardSession) HasConflicts() bool {
	return s.Conflicts != nil && s.Conflicts.HasConflicts
}
