package handler

import (
	"errors"
	"net/http"

	"swap-service/internal/domain"
	"swap-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService service.MessageService
	logger         *zap.Logger
}

func NewMessageHandler(messageService service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// Send godoc
// @Summary Send a message into a room
// @Tags messages
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body domain.SendMessageRequest true "Message"
// @Success 201 {object} domain.SendMessageResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 410 {object} map[string]interface{}
// @Router /rooms/{roomId}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "BAD_REQUEST", "message": err.Error()},
		})
		return
	}

	response, err := h.messageService.Send(c.Request.Context(), roomID, &req)
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
		case errors.Is(err, service.ErrStorageUnavailable):
			h.logger.Error("Failed to send message", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
			})
		default:
			h.logger.Error("Failed to send message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to send message"},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    response,
	})
}

// List godoc
// @Summary List recent messages of a room, oldest first
// @Tags messages
// @Produce json
// @Param roomId path int true "Room ID"
// @Param limit query int false "Max messages (default 50, cap 200)"
// @Success 200 {array} domain.MessageResponse
// @Router /rooms/{roomId}/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	limit := parseIntQuery(c, "limit", 0)

	messages, err := h.messageService.List(c.Request.Context(), roomID, limit)
	if err != nil {
		h.logger.Error("Failed to list messages", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   gin.H{"code": "STORAGE_UNAVAILABLE", "message": "Storage unavailable"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    messages,
	})
}
