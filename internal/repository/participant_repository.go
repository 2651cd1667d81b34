package repository

import (
	"context"
	"errors"
	"fmt"

	"swap-service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepository interface {
	// JoinRoom admits a participant into the room with the given code.
	// The capacity check and insert run in one transaction with the room
	// row locked, so MaxParticipants is never exceeded under concurrent
	// joiners. Returns the room on success; ErrNotFound, ErrRoomEnded or
	// ErrRoomFull otherwise.
	JoinRoom(ctx context.Context, code string, participant *domain.Participant) (*domain.Room, error)
	GetByID(ctx context.Context, id uint) (*domain.Participant, error)
	ListByRoom(ctx context.Context, roomID uint) ([]domain.Participant, error)
	CountByRoom(ctx context.Context, roomID uint) (int64, error)
	// Delete hard-deletes the participant row. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, id uint) error
	SetReady(ctx context.Context, id uint, isReady bool) error
	SetPlatform(ctx context.Context, id uint, platform string) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) JoinRoom(ctx context.Context, code string, participant *domain.Participant) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("code = ?", code)
		// FOR UPDATE is postgres-only; sqlite serializes writers on its
		// own and rejects the clause.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		err := q.First(&room).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !room.IsActive {
			return ErrRoomEnded
		}

		var count int64
		if err := tx.Model(&domain.Participant{}).Where("room_id = ?", room.ID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.MaxParticipants) {
			return ErrRoomFull
		}

		participant.RoomID = room.ID
		return tx.Create(participant).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRoomEnded) || errors.Is(err, ErrRoomFull) {
			return nil, err
		}
		return nil, fmt.Errorf("join room %q: %w", code, err)
	}
	return &room, nil
}

func (r *participantRepository) GetByID(ctx context.Context, id uint) (*domain.Participant, error) {
	var participant domain.Participant
	err := r.db.WithContext(ctx).First(&participant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get participant %d: %w", id, err)
	}
	return &participant, nil
}

func (r *participantRepository) ListByRoom(ctx context.Context, roomID uint) ([]domain.Participant, error) {
	var participants []domain.Participant
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("list participants of room %d: %w", roomID, err)
	}
	return participants, nil
}

func (r *participantRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).Where("room_id = ?", roomID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count participants of room %d: %w", roomID, err)
	}
	return count, nil
}

func (r *participantRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&domain.Participant{}, id).Error
	if err != nil {
		return fmt.Errorf("delete participant %d: %w", id, err)
	}
	return nil
}

func (r *participantRepository) SetReady(ctx context.Context, id uint, isReady bool) error {
	return r.updateField(ctx, id, "is_ready", isReady)
}

func (r *participantRepository) SetPlatform(ctx context.Context, id uint, platform string) error {
	return r.updateField(ctx, id, "current_platform", platform)
}

func (r *participantRepository) updateField(ctx context.Context, id uint, column string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&domain.Participant{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("update participant %d %s: %w", id, column, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
