package repository

import (
	"context"
	"errors"
	"fmt"

	"swap-service/internal/domain"

	"gorm.io/gorm"
)

type SummaryRepository interface {
	Create(ctx context.Context, summary *domain.SessionSummary) error
	GetByRoom(ctx context.Context, roomID uint) (*domain.SessionSummary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, summary *domain.SessionSummary) error {
	if err := r.db.WithContext(ctx).Create(summary).Error; err != nil {
		return fmt.Errorf("create session summary for room %d: %w", summary.RoomID, err)
	}
	return nil
}

func (r *summaryRepository) GetByRoom(ctx context.Context, roomID uint) (*domain.SessionSummary, error) {
	var summary domain.SessionSummary
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session summary of room %d: %w", roomID, err)
	}
	return &summary, nil
}
