package repository

import (
	"context"
	"fmt"

	"swap-service/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// ListByRoom returns the most recent messages in chronological order.
	ListByRoom(ctx context.Context, roomID uint, limit int) ([]domain.Message, error)
	CountByRoom(ctx context.Context, roomID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("create message for room %d: %w", message.RoomID, err)
	}
	return nil
}

func (r *messageRepository) ListByRoom(ctx context.Context, roomID uint, limit int) ([]domain.Message, error) {
	// Newest window first, then reversed so clients render oldest-first.
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list messages of room %d: %w", roomID, err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("room_id = ?", roomID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count messages of room %d: %w", roomID, err)
	}
	return count, nil
}
