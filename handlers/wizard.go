package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dispatchly/middleware"
	"dispatchly/models"
	"dispatchly/services/wizard"
	"dispatchly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the work-order wizard session lifecycle over HTTP.
type WizardHandler struct {
	Service wizard.WizardSessionService
	Logger  *zap.Logger
}

func NewWizardHandler(svc wizard.WizardSessionService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: svc, Logger: logger}
}

// OpenSession starts a new wizard session, either blank or resumed from a
// saved draft.
func (h *WizardHandler) OpenSession(c *gin.Context) {
	var input struct {
		Mode    string `json:"mode"`
		DraftID string `json:"draftId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	dispatcherID := middleware.DispatcherID(c)

	var (
		session *models.WizardSession
		err     error
	)
	if input.DraftID != "" {
		session, err = h.Service.OpenFromDraft(input.DraftID, dispatcherID)
	} else {
		session, err = h.Service.OpenSession(input.Mode, dispatcherID)
	}
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to open wizard session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current session state.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateData applies a partial document update to the session.
func (h *WizardHandler) UpdateData(c *gin.Context) {
	var patch wizard.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateData(c.Param("sessionID"), patch)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// NextStep validates the current step and advances when clean. The response
// always carries the session; step errors live in session.errors.
func (h *WizardHandler) NextStep(c *gin.Context) {
	session, err := h.Service.NextStep(c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PreviousStep moves one step back.
func (h *WizardHandler) PreviousStep(c *gin.Context) {
	session, err := h.Service.PreviousStep(c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GoToStep jumps directly to an already-visited step.
func (h *WizardHandler) GoToStep(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "step must be a number", "")
		return
	}

	session, err := h.Service.GoToStep(c.Param("sessionID"), number)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid step jump", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Review runs the availability check and returns the review summary.
func (h *WizardHandler) Review(c *gin.Context) {
	summary, err := h.Service.Review(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Submit commits the wizard document. Validation failures return 422,
// availability conflicts 409, and a partial commit 502 with the ids that were
// created before the failing step.
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		var validationErr *wizard.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "validation failed",
				"fields": validationErr.Fields,
			})
			return
		}

		var conflictErr *wizard.ConflictBlockedError
		if errors.As(err, &conflictErr) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "submission blocked by availability conflicts",
				"conflicts": conflictErr.Report,
			})
			return
		}

		var commitErr *wizard.CommitError
		if errors.As(err, &commitErr) {
			h.Logger.Error("wizard commit failed partway",
				zap.String("sessionId", c.Param("sessionID")),
				zap.String("failedStep", commitErr.Result.FailedStep),
				zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  "submission failed partway; created records are listed",
				"result": commitErr.Result,
			})
			return
		}

		utils.JSONError(c, http.StatusInternalServerError, "submission failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CancelSession discards the session, optionally saving it as a draft first.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	saveDraft := c.Query("saveDraft") == "true"
	name := c.Query("name")

	if err := h.Service.CancelSession(c.Param("sessionID"), saveDraft, name); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel wizard session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
