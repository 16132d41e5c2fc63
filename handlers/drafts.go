package handlers

import (
	"net/http"

	"dispatchly/middleware"
	"dispatchly/services/wizard"
	"dispatchly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftHandler exposes saved wizard drafts.
type DraftHandler struct {
	Service wizard.WizardSessionService
	Logger  *zap.Logger
}

func NewDraftHandler(svc wizard.WizardSessionService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{Service: svc, Logger: logger}
}

// SaveDraft snapshots a live session as a named draft without closing it.
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, err := h.Service.SaveDraft(c.Param("sessionID"), input.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"draftId": id})
}

// ListDrafts returns the caller's drafts, newest first.
func (h *DraftHandler) ListDrafts(c *gin.Context) {
	drafts, err := h.Service.ListDrafts(middleware.DispatcherID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list drafts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

// DeleteDraft removes a draft.
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	if err := h.Service.DeleteDraft(c.Param("draftID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
