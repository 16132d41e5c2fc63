package wizard

import (
	"context"
	"time"

	catalogRepo "dispatchly/database/repository/catalog"
	draftRepo "dispatchly/database/repository/draft"
	"dispatchly/models"
)

// WizardSessionService manages the stateful wizard session: open/resume,
// field updates, step navigation, availability review, submit and drafts.
type WizardSessionService interface {
	OpenSession(mode, dispatcherID string) (*models.WizardSession, error)
	OpenFromDraft(draftID, dispatcherID string) (*models.WizardSession, error)
	GetSession(sessionID string) (*models.WizardSession, error)
	UpdateData(sessionID string, patch DocumentPatch) (*models.WizardSession, error)
	NextStep(sessionID string) (*models.WizardSession, error)
	PreviousStep(sessionID string) (*models.WizardSession, error)
	GoToStep(sessionID string, number int) (*models.WizardSession, error)
	Review(ctx context.Context, sessionID string) (*ReviewSummary, error)
	Submit(ctx context.Context, sessionID string) (*models.CreationResult, error)
	CancelSession(sessionID string, saveAsDraft bool, draftName string) error

	SaveDraft(sessionID, name string) (string, error)
	ListDrafts(dispatcherID string) ([]models.Draft, error)
	DeleteDraft(draftID string) error
}

// DefaultWizardSessionService implements WizardSessionService. Sessions
// defaults to the Redis-backed store when left nil.
type DefaultWizardSessionService struct {
	Drafts       draftRepo.DraftRepository
	Catalog      catalogRepo.CatalogRepository
	Checker      AvailabilityChecker
	Orchestrator CommitOrchestrator
	Sessions     WizardSessionStore
	SessionTTL   time.Duration
}

// ReviewSummary is the review-step payload: the latest conflict report plus
// the expanded schedule and cost for every selected service.
type ReviewSummary struct {
	Session   *models.WizardSession    `json:"session"`
	Conflicts *models.ConflictReport   `json:"conflicts"`
	Schedules map[string]VisitSchedule `json:"schedules,omitempty"`
	Total     float64                  `json:"total"`
}
