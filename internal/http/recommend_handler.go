package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liquor-bartender/internal/service"
)

// RecommendHandler expone los dos flujos de recomendación.
type RecommendHandler struct {
	logger    *zap.Logger
	bartender *service.Bartender
}

func NewRecommendHandler(logger *zap.Logger, bartender *service.Bartender) *RecommendHandler {
	return &RecommendHandler{logger: logger, bartender: bartender}
}

// Health maneja GET /healthz.
func (h *RecommendHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PersonalizedRecommendations maneja POST /personalized-recommendations.
func (h *RecommendHandler) PersonalizedRecommendations(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	result, err := h.bartender.RecommendForUser(c.Request.Context(), req.Username)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RoomRecommendations maneja POST /room-recommendations.
func (h *RecommendHandler) RoomRecommendations(c *gin.Context) {
	var req struct {
		Usernames []string `json:"usernames"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Usernames) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one username is required as a list"})
		return
	}

	result, err := h.bartender.RecommendForRoom(c.Request.Context(), req.Usernames)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeError mapea la taxonomía de errores del pipeline a payloads HTTP.
// Las fallas de fetch nunca llegan acá: se absorben con datos de respaldo.
func (h *RecommendHandler) writeError(c *gin.Context, err error) {
	var insufficient *service.InsufficientCandidatesError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      insufficient.Error(),
			"candidates": insufficient.Count,
		})
		return
	}

	h.logger.Error("recommendation pipeline failed", zap.Error(err))
	if errors.Is(err, service.ErrGenerativeStage) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation generation failed"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
