package repository

import (
	"context"
	"fmt"

	"swap-service/internal/domain"

	"gorm.io/gorm"
)

type SwapRepository interface {
	// Append inserts one immutable swap-history row.
	Append(ctx context.Context, entry *domain.SwapEntry) error
	// ListByRoom returns the most recent entries newest-first.
	ListByRoom(ctx context.Context, roomID uint, limit int) ([]domain.SwapEntry, error)
	CountByRoom(ctx context.Context, roomID uint) (int64, error)
}

type swapRepository struct {
	db *gorm.DB
}

func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Append(ctx context.Context, entry *domain.SwapEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append swap for room %d: %w", entry.RoomID, err)
	}
	return nil
}

func (r *swapRepository) ListByRoom(ctx context.Context, roomID uint, limit int) ([]domain.SwapEntry, error) {
	var entries []domain.SwapEntry
	// id DESC tiebreak keeps the ordering total when two swaps share a
	// created_at tick.
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list swaps of room %d: %w", roomID, err)
	}
	return entries, nil
}

func (r *swapRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SwapEntry{}).Where("room_id = ?", roomID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count swaps of room %d: %w", roomID, err)
	}
	return count, nil
}
