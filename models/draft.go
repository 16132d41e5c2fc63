package models

import "time"

// Draft is a named, timestamped snapshot of an in-progress wizard document.
// Resuming a draft re-hydrates a fresh session; CurrentStep resets to 1
// unless the draft stored the step.
type Draft struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	DispatcherID string `bson:"dispatcherId" json:"dispatcherId"`

	WizardMode string      `bson:"wizardMode" json:"wizardMode"`
	Document   JobDocument `bson:"document" json:"document"`
	Step       int         `bson:"step" json:"step,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
