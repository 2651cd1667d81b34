package service

import (
	"context"
	"errors"
	"fmt"

	"swap-service/internal/domain"
	"swap-service/internal/metrics"
	"swap-service/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

type MessageService interface {
	Send(ctx context.Context, roomID uint, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error)
	// List returns the most recent messages in chronological order.
	List(ctx context.Context, roomID uint, limit int) ([]domain.MessageResponse, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	roomRepo    repository.RoomRepository
	logger      *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, roomRepo repository.RoomRepository, logger *zap.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

func (s *messageService) Send(ctx context.Context, roomID uint, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !room.IsActive {
		return nil, ErrRoomEnded
	}

	message := &domain.Message{
		RoomID:        roomID,
		ParticipantID: req.ParticipantID,
		SenderName:    req.SenderName,
		Content:       req.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	metrics.RecordMessageSent()
	return &domain.SendMessageResponse{MessageID: message.ID}, nil
}

func (s *messageService) List(ctx context.Context, roomID uint, limit int) ([]domain.MessageResponse, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}

	messages, err := s.messageRepo.ListByRoom(ctx, roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	responses := make([]domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}
