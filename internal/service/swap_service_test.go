package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swap-service/internal/domain"
	"swap-service/internal/repository"
)

func activeRoomByID(id uint) func(ctx context.Context, roomID uint) (*domain.Room, error) {
	return func(ctx context.Context, roomID uint) (*domain.Room, error) {
		if roomID != id {
			return nil, repository.ErrNotFound
		}
		return &domain.Room{ID: id, Code: "AB12CD", IsActive: true}, nil
	}
}

func TestSwapService_RecordSwap(t *testing.T) {
	ctx := context.Background()

	memberOfRoom7 := func(ctx context.Context, id uint) (*domain.Participant, error) {
		switch id {
		case 1, 2:
			return &domain.Participant{ID: id, RoomID: 7}, nil
		case 3:
			return &domain.Participant{ID: id, RoomID: 8}, nil
		default:
			return nil, repository.ErrNotFound
		}
	}

	t.Run("appends entry", func(t *testing.T) {
		var appended *domain.SwapEntry
		swapRepo := &MockSwapRepository{
			AppendFunc: func(ctx context.Context, entry *domain.SwapEntry) error {
				entry.ID = 11
				appended = entry
				return nil
			},
		}
		roomRepo := &MockRoomRepository{GetByIDFunc: activeRoomByID(7)}
		participantRepo := &MockParticipantRepository{GetByIDFunc: memberOfRoom7}
		svc := NewSwapService(swapRepo, roomRepo, participantRepo, zap.NewNop())

		resp, err := svc.RecordSwap(ctx, 7, &domain.RecordSwapRequest{
			FromParticipantID: 1,
			ToParticipantID:   2,
			SwapType:          domain.SwapTypeManual,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(11), resp.SwapID)
		assert.Equal(t, uint(7), appended.RoomID)
		assert.Equal(t, domain.SwapTypeManual, appended.SwapType)
	})

	t.Run("rejects unknown swap type", func(t *testing.T) {
		svc := NewSwapService(&MockSwapRepository{}, &MockRoomRepository{}, &MockParticipantRepository{}, zap.NewNop())

		_, err := svc.RecordSwap(ctx, 7, &domain.RecordSwapRequest{
			FromParticipantID: 1,
			ToParticipantID:   2,
			SwapType:          "shuffle",
		})
		assert.ErrorIs(t, err, ErrInvalidSwapType)
	})

	t.Run("unknown room", func(t *testing.T) {
		roomRepo := &MockRoomRepository{GetByIDFunc: activeRoomByID(7)}
		svc := NewSwapService(&MockSwapRepository{}, roomRepo, &MockParticipantRepository{}, zap.NewNop())

		_, err := svc.RecordSwap(ctx, 99, &domain.RecordSwapRequest{
			FromParticipantID: 1,
			ToParticipantID:   2,
			SwapType:          domain.SwapTypeManual,
		})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("rejects participants outside the room", func(t *testing.T) {
		roomRepo := &MockRoomRepository{GetByIDFunc: activeRoomByID(7)}
		participantRepo := &MockParticipantRepository{GetByIDFunc: memberOfRoom7}
		svc := NewSwapService(&MockSwapRepository{}, roomRepo, participantRepo, zap.NewNop())

		// Participant 3 belongs to another room, participant 99 does not exist.
		for _, to := range []uint{3, 99} {
			_, err := svc.RecordSwap(ctx, 7, &domain.RecordSwapRequest{
				FromParticipantID: 1,
				ToParticipantID:   to,
				SwapType:          domain.SwapTypeRandom,
			})
			assert.ErrorIs(t, err, ErrParticipantNotInRoom, "to=%d", to)
		}
	})
}

func TestSwapService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with default limit", func(t *testing.T) {
		now := time.Now()
		var gotLimit int
		swapRepo := &MockSwapRepository{
			ListByRoomFunc: func(ctx context.Context, roomID uint, limit int) ([]domain.SwapEntry, error) {
				gotLimit = limit
				return []domain.SwapEntry{
					{ID: 3, RoomID: roomID, SwapType: domain.SwapTypeRandom, CreatedAt: now},
					{ID: 2, RoomID: roomID, SwapType: domain.SwapTypeManual, CreatedAt: now.Add(-time.Minute)},
				}, nil
			},
		}
		svc := NewSwapService(swapRepo, &MockRoomRepository{}, &MockParticipantRepository{}, zap.NewNop())

		entries, err := svc.History(ctx, 7, 0)
		require.NoError(t, err)
		assert.Equal(t, defaultHistoryLimit, gotLimit)
		require.Len(t, entries, 2)
		assert.Equal(t, uint(3), entries[0].ID)
		assert.Equal(t, uint(2), entries[1].ID)
	})

	t.Run("caps oversized limits", func(t *testing.T) {
		var gotLimit int
		swapRepo := &MockSwapRepository{
			ListByRoomFunc: func(ctx context.Context, roomID uint, limit int) ([]domain.SwapEntry, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		svc := NewSwapService(swapRepo, &MockRoomRepository{}, &MockParticipantRepository{}, zap.NewNop())

		_, err := svc.History(ctx, 7, 5000)
		require.NoError(t, err)
		assert.Equal(t, maxHistoryLimit, gotLimit)
	})

	t.Run("unknown room yields empty history", func(t *testing.T) {
		svc := NewSwapService(&MockSwapRepository{}, &MockRoomRepository{}, &MockParticipantRepository{}, zap.NewNop())

		entries, err := svc.History(ctx, 99, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestSwapService_PickRandom(t *testing.T) {
	ctx := context.Background()

	participantRepo := &MockParticipantRepository{
		ListByRoomFunc: func(ctx context.Context, roomID uint) ([]domain.Participant, error) {
			return []domain.Participant{
				{ID: 1, RoomID: roomID},
				{ID: 2, RoomID: roomID},
				{ID: 3, RoomID: roomID},
			}, nil
		},
	}
	svc := NewSwapService(&MockSwapRepository{}, &MockRoomRepository{}, participantRepo, zap.NewNop())

	t.Run("only one eligible candidate", func(t *testing.T) {
		candidate, err := svc.PickRandom(ctx, 7, 1, 2)
		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Equal(t, uint(3), candidate.ID)
	})

	t.Run("no candidate in a pair", func(t *testing.T) {
		pairRepo := &MockParticipantRepository{
			ListByRoomFunc: func(ctx context.Context, roomID uint) ([]domain.Participant, error) {
				return []domain.Participant{{ID: 1, RoomID: roomID}, {ID: 2, RoomID: roomID}}, nil
			},
		}
		pairSvc := NewSwapService(&MockSwapRepository{}, &MockRoomRepository{}, pairRepo, zap.NewNop())

		candidate, err := pairSvc.PickRandom(ctx, 7, 1, 2)
		require.NoError(t, err)
		assert.Nil(t, candidate)
	})

	t.Run("wraps storage failures", func(t *testing.T) {
		failingRepo := &MockParticipantRepository{
			ListByRoomFunc: func(ctx context.Context, roomID uint) ([]domain.Participant, error) {
				return nil, errors.New("connection reset")
			},
		}
		failingSvc := NewSwapService(&MockSwapRepository{}, &MockRoomRepository{}, failingRepo, zap.NewNop())

		_, err := failingSvc.PickRandom(ctx, 7, 1, 0)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestPickRandomTarget(t *testing.T) {
	participants := []domain.Participant{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
	}

	t.Run("never picks self or current target", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			picked := PickRandomTarget(participants, 1, 2)
			require.NotNil(t, picked)
			assert.NotEqual(t, uint(1), picked.ID)
			assert.NotEqual(t, uint(2), picked.ID)
		}
	})

	t.Run("eventually covers all candidates", func(t *testing.T) {
		seen := make(map[uint]bool)
		for i := 0; i < 200; i++ {
			picked := PickRandomTarget(participants, 1, 0)
			require.NotNil(t, picked)
			seen[picked.ID] = true
		}
		assert.Equal(t, map[uint]bool{2: true, 3: true, 4: true}, seen)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, PickRandomTarget(nil, 1, 0))
	})

	t.Run("self is the only member", func(t *testing.T) {
		assert.Nil(t, PickRandomTarget([]domain.Participant{{ID: 1}}, 1, 0))
	})
}
