// File: services/wizard/session.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatchly/config"
	"dispatchly/models"
	"dispatchly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WizardSessionStore persists live sessions between requests. The Redis-backed
// store is the default.
type WizardSessionStore interface {
	Save(session *models.WizardSession, ttl time.Duration) error
	Load(sessionID string) (*models.WizardSession, error)
	Delete(sessionID string)
}

type redisSessionStore struct{}

func (redisSessionStore) Save(session *models.WizardSession, ttl time.Duration) error {
	ctx := context.Background()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}

	key := utils.WizardSessionPrefix + session.SessionID
	if err := utils.GetSessionCacheClient().Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (redisSessionStore) Load(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()
	data, err := utils.GetSessionCacheClient().Get(ctx, utils.WizardSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("wizard session not found or expired: %w", err)
	}

	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (redisSessionStore) Delete(sessionID string) {
	ctx := context.Background()
	utils.GetSessionCacheClient().Del(ctx, utils.WizardSessionPrefix+sessionID)
}

func (s *DefaultWizardSessionService) store() WizardSessionStore {
	if s.Sessions != nil {
		return s.Sessions
	}
	return redisSessionStore{}
}

func (s *DefaultWizardSessionService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return time.Duration(config.AppConfig.WizardSessionTTLMin) * time.Minute
}

// OpenSession creates a fresh wizard session with an empty document, assigns
// it a unique SessionID and stores it in Redis.
func (s *DefaultWizardSessionService) OpenSession(mode, dispatcherID string) (*models.WizardSession, error) {
	switch mode {
	case models.WizardModeJob, models.WizardModeQuote, models.WizardModeJobAndQuote:
	default:
		return nil, fmt.Errorf("unknown wizard mode %q", mode)
	}

	now := time.Now()
	session := &models.WizardSession{
		SessionID:    uuid.New().String(),
		DispatcherID: dispatcherID,
		WizardMode:   mode,
		CurrentStep:  1,
		HighestStep:  1,
		Data: models.JobDocument{
			Timezone: config.AppConfig.DefaultTimezone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("wizard session opened",
		zap.String("sessionId", session.SessionID), zap.String("mode", mode))
	return session, nil
}

// OpenFromDraft re-hydrates a fresh session from a saved draft. The session
// resumes at the draft's stored step, or step 1 when none was stored.
func (s *DefaultWizardSessionService) OpenFromDraft(draftID, dispatcherID string) (*models.WizardSession, error) {
	ctx := context.Background()
	draft, err := s.Drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("draft not found: %w", err)
	}

	step := draft.Step
	if step < 1 {
		step = 1
	}
	mode := draft.WizardMode
	if mode == "" {
		mode = models.WizardModeJob
	}

	doc := draft.Document
	RefreshDerived(&doc)

	now := time.Now()
	session := &models.WizardSession{
		SessionID:    uuid.New().String(),
		DispatcherID: dispatcherID,
		WizardMode:   mode,
		CurrentStep:  step,
		HighestStep:  step,
		Data:         doc,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("wizard session resumed from draft",
		zap.String("sessionId", session.SessionID), zap.String("draftId", draftID))
	return session, nil
}

// GetSession retrieves a session from Redis.
func (s *DefaultWizardSessionService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.loadSession(sessionID)
}

// UpdateData applies a field patch to the session's document, refreshes the
// derived fields and re-validates the current step.
func (s *DefaultWizardSessionService) UpdateData(sessionID string, patch DocumentPatch) (*models.WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	patch.Apply(&session.Data)
	session.Errors = ValidateStep(session, session.CurrentStep)

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// NextStep validates the current step and advances when it is clean;
// otherwise the session stays put with Errors populated.
func (s *DefaultWizardSessionService) NextStep(sessionID string) (*models.WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	Advance(session)
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// PreviousStep moves one step back without re-validation.
func (s *DefaultWizardSessionService) PreviousStep(sessionID string) (*models.WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	Retreat(session)
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GoToStep jumps to an already-reached step.
func (s *DefaultWizardSessionService) GoToStep(sessionID string, number int) (*models.WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := JumpTo(session, number); err != nil {
		return nil, err
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Review runs a fresh availability check and expands every service schedule
// for display. Checks carry a generation number; a result is applied to the
// session only while it is still the newest check issued, so a stale check
// racing a newer one can never clobber its report.
func (s *DefaultWizardSessionService) Review(ctx context.Context, sessionID string) (*ReviewSummary, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	generation := s.Checker.NextGeneration()
	session.CheckGeneration = generation
	if err := s.saveSession(session); err != nil {
		return nil, err
	}

	report := s.Checker.Check(ctx, session.Data, generation)

	// Reload before applying: the session may have changed while the check
	// ran, including a newer check having been issued.
	session, err = s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if report.Generation == session.CheckGeneration {
		session.Conflicts = report
		if err := s.saveSession(session); err != nil {
			return nil, err
		}
	}

	summary := &ReviewSummary{
		Session:   session,
		Conflicts: session.Conflicts,
	}

	if len(session.Data.Services) > 0 && session.Data.ScheduledDate != "" {
		window, werr := ServiceWindow(session.Data)
		if werr == nil {
			summary.Schedules = make(map[string]VisitSchedule, len(session.Data.Services))
			for _, sel := range session.Data.Services {
				schedule := RecalculateService(&sel, window)
				summary.Schedules[sel.ServiceID] = schedule
				summary.Total += sel.CalculatedCost
			}
		}
	}
	return summary, nil
}

// Submit runs the final-step validator, gates on conflicts and hands the
// document to the commit orchestrator. The session is cleared only on full
// success; after a partial failure it survives so the user can retry or
// reconcile from the returned result.
func (s *DefaultWizardSessionService) Submit(ctx context.Context, sessionID string) (*models.CreationResult, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	finalStep := FinalStepNumber(session.Data.JobType)
	if errs := ValidateStep(session, finalStep); len(errs) > 0 {
		session.Errors = errs
		if saveErr := s.saveSession(session); saveErr != nil {
			return nil, saveErr
		}
		return nil, NewValidationError(errs)
	}

	// Submission relies on the availability results gathered during review;
	// when none were gathered, run the check now.
	if session.Conflicts == nil {
		generation := s.Checker.NextGeneration()
		session.CheckGeneration = generation
		session.Conflicts = s.Checker.Check(ctx, session.Data, generation)
	}
	if session.HasConflicts() {
		if saveErr := s.saveSession(session); saveErr != nil {
			return nil, saveErr
		}
		return nil, &ConflictBlockedError{Report: session.Conflicts}
	}

	result, err := s.Orchestrator.Submit(ctx, session)
	if err != nil {
		// Partial commits keep the session; the result carries what exists.
		if saveErr := s.saveSession(session); saveErr != nil {
			utils.GetLogger().Error("failed to persist session after partial commit",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return result, err
	}

	s.deleteSession(sessionID)
	utils.GetLogger().Info("wizard session committed",
		zap.String("sessionId", sessionID),
		zap.Int("jobsCreated", result.JobsCreated))
	return result, nil
}

// CancelSession discards a session, optionally snapshotting it as a draft
// first (the exit-confirmation flow).
func (s *DefaultWizardSessionService) CancelSession(sessionID string, saveAsDraft bool, draftName string) error {
	if saveAsDraft {
		if _, err := s.SaveDraft(sessionID, draftName); err != nil {
			return err
		}
	}
	s.deleteSession(sessionID)
	return nil
}

func (s *DefaultWizardSessionService) saveSession(session *models.WizardSession) error {
	session.UpdatedAt = time.Now()
	return s.store().Save(session, s.sessionTTL())
}

func (s *DefaultWizardSessionService) loadSession(sessionID string) (*models.WizardSession, error) {
	if sessionID == "" {
		return nil, errors.New("wizard session not initialized")
	}
	return s.store().Load(sessionID)
}

func (s *DefaultWizardSessionService) deleteSession(sessionID string) {
	s.store().Delete(sessionID)
}
