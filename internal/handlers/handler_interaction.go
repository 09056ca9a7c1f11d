package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/dto"
	"github.com/SscSPs/coin_wallet_app/internal/middleware"
	"github.com/SscSPs/coin_wallet_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type interactionHandler struct {
	interactionService portssvc.InteractionSvc
	posthogClient      *utils.PosthogClientWrapper
}

func registerInteractionRoutes(rg *gin.RouterGroup, interactionService portssvc.InteractionSvc, posthogClient *utils.PosthogClientWrapper) {
	h := &interactionHandler{interactionService: interactionService, posthogClient: posthogClient}
	rg.POST("/interactions", h.recordInteraction)
}

// recordInteraction godoc
// @Summary Record a content interaction
// @Description Increments the view or contact counter of a piece of content and rewards the caller
// @Tags interactions
// @Accept  json
// @Produce  json
// @Param   interaction body dto.RecordInteractionRequest true "Interaction"
// @Success 201 {object} dto.RecordInteractionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Rejected by the database"
// @Failure 502 {object} map[string]string "Database unreachable"
// @Failure 503 {object} map[string]string "Rewards not configured"
// @Security BearerAuth
// @Router /api/v1/interactions [post]
func (h *interactionHandler) recordInteraction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordInteraction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.interactionService.RecordInteraction(c.Request.Context(), req.ToInteraction(userID))
	if err != nil {
		var providerErr *apperrors.ProviderError
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording interaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Interaction rewards not configured", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rewards are not available"})
		case errors.As(err, &providerErr):
			logger.Warn("Database rejected interaction", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": providerErr.Message})
		default:
			logger.Error("Failed to record interaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to record interaction"})
		}
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "interaction_recorded", map[string]any{
		"content_type": req.ContentType,
		"action":       req.Action,
	})

	c.JSON(http.StatusCreated, dto.RecordInteractionResponse{
		Recorded:    true,
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Action:      req.Action,
	})
}
