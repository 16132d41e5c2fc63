// File: services/wizard/drafts.go
package wizard

import (
	"context"
	"fmt"
	"time"

	"dispatchly/models"
	"dispatchly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaveDraft snapshots the session's document as a named draft. The session
// itself is untouched; callers that want save-and-exit go through
// CancelSession with saveAsDraft set.
func (s *DefaultWizardSessionService) SaveDraft(sessionID, name string) (string, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = defaultDraftName(session.Data)
	}

	draft := &models.Draft{
		ID:           uuid.New().String(),
		Name:         name,
		DispatcherID: session.DispatcherID,
		WizardMode:   session.WizardMode,
		Document:     session.Data,
		Step:         session.CurrentStep,
	}

	id, err := s.Drafts.Save(context.Background(), draft)
	if err != nil {
		return "", fmt.Errorf("failed to save draft: %w", err)
	}
	utils.GetLogger().Info("wizard draft saved",
		zap.String("draftId", id), zap.String("sessionId", sessionID))
	return id, nil
}

// ListDrafts returns the dispatcher's drafts, most recently updated first.
func (s *DefaultWizardSessionService) ListDrafts(dispatcherID string) ([]models.Draft, error) {
	return s.Drafts.List(context.Background(), dispatcherID)
}

// DeleteDraft removes a draft permanently.
func (s *DefaultWizardSessionService) DeleteDraft(draftID string) error {
	if err := s.Drafts.Delete(context.Background(), draftID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func defaultDraftName(doc models.JobDocument) string {
	switch {
	case doc.CustomerID != "" && doc.ScheduledDate != "":
		return fmt.Sprintf("Draft %s %s", doc.CustomerID, doc.ScheduledDate)
	case doc.CustomerID != "":
		return "Draft " + doc.CustomerID
	default:
		return "Draft " + time.Now().Format("2006-01-02 15:04")
	}
}
