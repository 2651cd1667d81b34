package handler

import (
	"errors"
	"net/http"

	"swap-service/internal/domain"
	"swap-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoomHandler struct {
	roomService        service.RoomService
	participantService service.ParticipantService
	sessionService     service.SessionService
	logger             *zap.Logger
}

func NewRoomHandler(
	roomService service.RoomService,
	participantService service.ParticipantService,
	sessionService service.SessionService,
	logger *zap.Logger,
) *RoomHandler {
	return &RoomHandler{
		roomService:        roomService,
		participantService: participantService,
		sessionService:     sessionService,
		logger:             logger,
	}
}

// CreateRoom godoc
// @Summary Create a new room with the caller as host
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body domain.CreateRoomRequest true "Room details"
// @Success 201 {object} domain.CreateRoomResponse
// @Failure 400 {object} map[string]interface{}
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req domain.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMaxParticipants):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
			})
		case errors.Is(err, service.ErrCodeExhausted):
			h.logger.Error("Room code space exhausted", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "CODE_EXHAUSTED", "message": "Failed to allocate a room code"},
			})
		case errors.Is(err, service.ErrDuplicateCode):
			// Concurrent creator won the code; the client can simply retry.
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   gin.H{"code": "DUPLICATE_CODE", "message": "Room code collision, retry"},
			})
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to create room", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to create room", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to create room"},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    room,
	})
}

// JoinRoom godoc
// @Summary Join a room by its shareable code
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body domain.JoinRoomRequest true "Code and guest name"
// @Success 200 {object} domain.JoinRoomResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 410 {object} map[string]interface{}
// @Router /rooms/join [post]
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req domain.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	response, err := h.participantService.Join(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Room not found"},
			})
		case errors.Is(err, service.ErrRoomEnded):
			c.JSON(http.StatusGone, gin.H{
				"success": false,
				"error":   gin.H{"code": "ROOM_ENDED", "message": "Room has ended"},
			})
		case errors.Is(err, service.ErrRoomFull):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   gin.H{"code": "ROOM_FULL", "message": "Room is full"},
			})
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to join room", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to join room", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to join room"},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    response,
	})
}

// GetRoom godoc
// @Summary Get the polling snapshot for a room
// @Tags rooms
// @Produce json
// @Param roomId path int true "Room ID"
// @Param history query int false "Number of recent swaps to include"
// @Success 200 {object} domain.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{roomId} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	historyLimit := parseIntQuery(c, "history", 0)

	session, err := h.sessionService.GetSession(c.Request.Context(), roomID, historyLimit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Room not found"},
			})
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to get session snapshot", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to get session snapshot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to get room"},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
	})
}

// EndRoom godoc
// @Summary End a room (idempotent)
// @Tags rooms
// @Param roomId path int true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{roomId}/end [post]
func (h *RoomHandler) EndRoom(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}

	if err := h.roomService.EndRoom(c.Request.Context(), roomID); err != nil {
		h.logger.Error("Failed to end room", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room ended",
	})
}

// GetSummary godoc
// @Summary Get the session summary of a finished room
// @Tags rooms
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {object} domain.SummaryResponse
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{roomId}/summary [get]
func (h *RoomHandler) GetSummary(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}

	summary, err := h.roomService.GetSummary(c.Request.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSummaryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Session summary not found"},
			})
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to get session summary", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to get session summary", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to get summary"},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summary,
	})
}
