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

type ParticipantService interface {
	Join(ctx context.Context, req *domain.JoinRoomRequest) (*domain.JoinRoomResponse, error)
	// Leave removes the participant. Idempotent: leaving twice, or after
	// the room ended, is not an error.
	Leave(ctx context.Context, participantID uint) error
	SetReady(ctx context.Context, participantID uint, isReady bool) error
	SetPlatform(ctx context.Context, participantID uint, platform string) error
	// AllReady reports whether the room's participant set is non-empty
	// and every member is ready. The >=2 start threshold is the polling
	// surface's policy, not enforced here.
	AllReady(ctx context.Context, roomID uint) (bool, error)
}

type participantService struct {
	participantRepo repository.ParticipantRepository
	logger          *zap.Logger
}

func NewParticipantService(participantRepo repository.ParticipantRepository, logger *zap.Logger) ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (s *participantService) Join(ctx context.Context, req *domain.JoinRoomRequest) (*domain.JoinRoomResponse, error) {
	participant := &domain.Participant{
		GuestName: req.GuestName,
		IsHost:    false,
		IsReady:   false,
	}

	room, err := s.participantRepo.JoinRoom(ctx, req.Code, participant)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, repository.ErrRoomEnded):
			return nil, ErrRoomEnded
		case errors.Is(err, repository.ErrRoomFull):
			return nil, ErrRoomFull
		default:
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}

	metrics.RecordJoin()
	s.logger.Info("Participant joined",
		zap.Uint("room_id", room.ID),
		zap.Uint("participant_id", participant.ID),
	)

	return &domain.JoinRoomResponse{
		RoomID:        room.ID,
		ParticipantID: participant.ID,
		Room:          room.ToResponse(),
	}, nil
}

func (s *participantService) Leave(ctx context.Context, participantID uint) error {
	if err := s.participantRepo.Delete(ctx, participantID); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	s.logger.Info("Participant left", zap.Uint("participant_id", participantID))
	return nil
}

func (s *participantService) SetReady(ctx context.Context, participantID uint, isReady bool) error {
	if err := s.participantRepo.SetReady(ctx, participantID, isReady); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *participantService) SetPlatform(ctx context.Context, participantID uint, platform string) error {
	// Free-text label; the platform catalog lives in the client.
	if err := s.participantRepo.SetPlatform(ctx, participantID, platform); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *participantService) AllReady(ctx context.Context, roomID uint) (bool, error) {
	participants, err := s.participantRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return allReady(participants), nil
}

func allReady(participants []domain.Participant) bool {
	if len(participants) == 0 {
		return false
	}
	for _, p := range participants {
		if !p.IsReady {
			return false
		}
	}
	return true
}
