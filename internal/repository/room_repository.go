package repository

import (
	"context"
	"errors"
	"fmt"

	"swap-service/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository interface {
	// CreateWithHost inserts the room and its host participant in one
	// transaction and backfills room.HostID from the new participant id.
	// Returns ErrDuplicateCode when the room code loses a uniqueness race.
	CreateWithHost(ctx context.Context, room *domain.Room, host *domain.Participant) error
	GetByID(ctx context.Context, id uint) (*domain.Room, error)
	GetByCode(ctx context.Context, code string) (*domain.Room, error)
	// CodeExists checks the full historical code set, active or not.
	CodeExists(ctx context.Context, code string) (bool, error)
	// Deactivate flips IsActive to false. Returns true only for the call
	// that performed the transition, false when the room was already
	// ended or never existed.
	Deactivate(ctx context.Context, id uint) (bool, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) CreateWithHost(ctx context.Context, room *domain.Room, host *domain.Participant) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		host.RoomID = room.ID
		if err := tx.Create(host).Error; err != nil {
			return err
		}
		return tx.Model(room).Update("host_id", host.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCode
		}
		return fmt.Errorf("create room with host: %w", err)
	}
	room.HostID = host.ID
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room %d: %w", id, err)
	}
	return &room, nil
}

func (r *roomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room by code %q: %w", code, err)
	}
	return &room, nil
}

func (r *roomRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count rooms by code %q: %w", code, err)
	}
	return count > 0, nil
}

func (r *roomRepository) Deactivate(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return false, fmt.Errorf("deactivate room %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
