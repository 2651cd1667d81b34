package handler

import (
	"errors"
	"net/http"

	"swap-service/internal/domain"
	"swap-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SwapHandler struct {
	swapService service.SwapService
	logger      *zap.Logger
}

func NewSwapHandler(swapService service.SwapService, logger *zap.Logger) *SwapHandler {
	return &SwapHandler{
		swapService: swapService,
		logger:      logger,
	}
}

// RecordSwap godoc
// @Summary Record a swap in the room's history
// @Tags swaps
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body domain.RecordSwapRequest true "Swap details"
// @Success 201 {object} domain.RecordSwapResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /rooms/{roomId}/swaps [post]
func (h *SwapHandler) RecordSwap(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}

	var req domain.RecordSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	response, err := h.swapService.RecordSwap(c.Request.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSwapType):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
			})
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Room not found"},
			})
		case errors.Is(err, service.ErrParticipantNotInRoom):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_IN_ROOM", "message": "Participant does not belong to this room"},
			})
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to record swap", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to record swap", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to record swap"},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    response,
	})
}

// History godoc
// @Summary Get a room's swap history, newest first
// @Tags swaps
// @Produce json
// @Param roomId path int true "Room ID"
// @Param limit query int false "Max entries (default 20, cap 100)"
// @Success 200 {array} domain.SwapResponse
// @Router /rooms/{roomId}/swaps [get]
func (h *SwapHandler) History(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	limit := parseIntQuery(c, "limit", 0)

	entries, err := h.swapService.History(c.Request.Context(), roomID, limit)
	if err != nil {
		h.logger.Error("Failed to get swap history", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
	})
}

// PickTarget godoc
// @Summary Pick a random swap target for the caller
// @Tags swaps
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body domain.PickTargetRequest true "Caller and current target"
// @Success 200 {object} domain.PickTargetResponse
// @Router /rooms/{roomId}/swaps/pick [post]
func (h *SwapHandler) PickTarget(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}

	var req domain.PickTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	candidate, err := h.swapService.PickRandom(c.Request.Context(), roomID, req.SelfID, req.CurrentTargetID)
	if err != nil {
		h.logger.Error("Failed to pick swap target", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
		})
		return
	}

	// A nil candidate is a normal outcome, not an error: in a two-member
	// room the caller excludes everyone.
	response := domain.PickTargetResponse{}
	if candidate != nil {
		p := candidate.ToResponse()
		response.Candidate = &p
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    response,
	})
}
