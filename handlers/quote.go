package handlers

import (
	"net/http"

	quoteRepo "dispatchly/database/repository/quote"
	"dispatchly/services/notification"
	"dispatchly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves committed quotes and triggers their delivery.
type QuoteHandler struct {
	Repo     quoteRepo.QuoteRepository
	Delivery notification.QuoteDeliveryService
	Logger   *zap.Logger
}

func NewQuoteHandler(repo quoteRepo.QuoteRepository, delivery notification.QuoteDeliveryService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Repo: repo, Delivery: delivery, Logger: logger}
}

// GetQuote returns one quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.Repo.GetByID(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "quote not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// SendQuote enqueues delivery of a quote by email, sms or both.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var input struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Delivery.RequestDelivery(c.Request.Context(), c.Param("quoteID"), input.Method); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to request quote delivery", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
