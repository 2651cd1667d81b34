package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"swap-service/internal/domain"
	"swap-service/internal/metrics"
	"swap-service/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type SwapService interface {
	// RecordSwap appends one immutable history entry. Both participants
	// must currently belong to the room.
	RecordSwap(ctx context.Context, roomID uint, req *domain.RecordSwapRequest) (*domain.RecordSwapResponse, error)
	// History returns the most recent entries newest-first, truncated to
	// limit (default 20, cap 100). An unknown room yields an empty list.
	History(ctx context.Context, roomID uint, limit int) ([]domain.SwapResponse, error)
	// PickRandom draws a candidate uniformly from the room's participants
	// excluding the caller and the current target. A nil candidate with a
	// nil error means no candidate remains, which is the normal outcome
	// in a two-member room.
	PickRandom(ctx context.Context, roomID, selfID, currentTargetID uint) (*domain.Participant, error)
}

type swapService struct {
	swapRepo        repository.SwapRepository
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	logger          *zap.Logger
}

func NewSwapService(
	swapRepo repository.SwapRepository,
	roomRepo repository.RoomRepository,
	participantRepo repository.ParticipantRepository,
	logger *zap.Logger,
) SwapService {
	return &swapService{
		swapRepo:        swapRepo,
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (s *swapService) RecordSwap(ctx context.Context, roomID uint, req *domain.RecordSwapRequest) (*domain.RecordSwapResponse, error) {
	if !req.SwapType.Valid() {
		return nil, ErrInvalidSwapType
	}

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	// Both ids must belong to the room right now. History may later
	// dangle when participants leave; admission-time membership is still
	// required.
	for _, id := range []uint{req.FromParticipantID, req.ToParticipantID} {
		participant, err := s.participantRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrParticipantNotInRoom
			}
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if participant.RoomID != roomID {
			return nil, ErrParticipantNotInRoom
		}
	}

	entry := &domain.SwapEntry{
		RoomID:            roomID,
		FromParticipantID: req.FromParticipantID,
		ToParticipantID:   req.ToParticipantID,
		SwapType:          req.SwapType,
	}
	if err := s.swapRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	metrics.RecordSwap(string(req.SwapType))
	s.logger.Info("Swap recorded",
		zap.Uint("room_id", roomID),
		zap.Uint("from", req.FromParticipantID),
		zap.Uint("to", req.ToParticipantID),
		zap.String("type", string(req.SwapType)),
	)

	return &domain.RecordSwapResponse{SwapID: entry.ID}, nil
}

func (s *swapService) History(ctx context.Context, roomID uint, limit int) ([]domain.SwapResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.swapRepo.ListByRoom(ctx, roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	responses := make([]domain.SwapResponse, len(entries))
	for i, e := range entries {
		responses[i] = e.ToResponse()
	}
	return responses, nil
}

func (s *swapService) PickRandom(ctx context.Context, roomID, selfID, currentTargetID uint) (*domain.Participant, error) {
	participants, err := s.participantRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return PickRandomTarget(participants, selfID, currentTargetID), nil
}

// PickRandomTarget draws uniformly from participants excluding selfID
// and currentTargetID. Returns nil when no candidate remains.
func PickRandomTarget(participants []domain.Participant, selfID, currentTargetID uint) *domain.Participant {
	candidates := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		if p.ID == selfID || p.ID == currentTargetID {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}
	picked := candidates[rand.IntN(len(candidates))]
	return &picked
}
