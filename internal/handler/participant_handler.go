package handler

import (
	"errors"
	"net/http"

	"swap-service/internal/domain"
	"swap-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
	logger             *zap.Logger
}

func NewParticipantHandler(participantService service.ParticipantService, logger *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		logger:             logger,
	}
}

// Leave godoc
// @Summary Leave a room (idempotent)
// @Tags participants
// @Param participantId path int true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Router /participants/{participantId}/leave [post]
func (h *ParticipantHandler) Leave(c *gin.Context) {
	participantID, ok := parseUintParam(c, "participantId")
	if !ok {
		return
	}

	if err := h.participantService.Leave(c.Request.Context(), participantID); err != nil {
		h.logger.Error("Failed to remove participant", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Left room",
	})
}

// SetReady godoc
// @Summary Update a participant's ready flag
// @Tags participants
// @Accept json
// @Param participantId path int true "Participant ID"
// @Param request body domain.SetReadyRequest true "Ready flag"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /participants/{participantId}/ready [put]
func (h *ParticipantHandler) SetReady(c *gin.Context) {
	participantID, ok := parseUintParam(c, "participantId")
	if !ok {
		return
	}

	var req domain.SetReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	err := h.participantService.SetReady(c.Request.Context(), participantID, *req.IsReady)
	h.respondUpdate(c, err, "Ready state updated")
}

// SetPlatform godoc
// @Summary Update a participant's current platform label
// @Tags participants
// @Accept json
// @Param participantId path int true "Participant ID"
// @Param request body domain.SetPlatformRequest true "Platform label"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /participants/{participantId}/platform [put]
func (h *ParticipantHandler) SetPlatform(c *gin.Context) {
	participantID, ok := parseUintParam(c, "participantId")
	if !ok {
		return
	}

	var req domain.SetPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	err := h.participantService.SetPlatform(c.Request.Context(), participantID, req.Platform)
	h.respondUpdate(c, err, "Platform updated")
}

func (h *ParticipantHandler) respondUpdate(c *gin.Context, err error, message string) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			// The participant already left; the client should return to the
			// entry screen.
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Participant not found"},
			})
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to update participant", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to update participant", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to update participant"},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
