package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"swap-service/internal/domain"
	"swap-service/internal/metrics"
	"swap-service/internal/repository"
	"swap-service/internal/roomcode"

	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error)
	// EndRoom deactivates the room. Idempotent: ending an already-ended
	// or unknown room is a no-op success.
	EndRoom(ctx context.Context, roomID uint) error
	GetSummary(ctx context.Context, roomID uint) (*domain.SummaryResponse, error)
}

type roomService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	swapRepo        repository.SwapRepository
	messageRepo     repository.MessageRepository
	summaryRepo     repository.SummaryRepository
	logger          *zap.Logger
}

func NewRoomService(
	roomRepo repository.RoomRepository,
	participantRepo repository.ParticipantRepository,
	swapRepo repository.SwapRepository,
	messageRepo repository.MessageRepository,
	summaryRepo repository.SummaryRepository,
	logger *zap.Logger,
) RoomService {
	return &roomService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		swapRepo:        swapRepo,
		messageRepo:     messageRepo,
		summaryRepo:     summaryRepo,
		logger:          logger,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error) {
	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = domain.MaxRoomParticipants
	}
	if maxParticipants < domain.MinRoomParticipants || maxParticipants > domain.MaxRoomParticipants {
		return nil, ErrInvalidMaxParticipants
	}

	code, err := roomcode.EnsureUnique(ctx, s.roomRepo.CodeExists)
	if err != nil {
		if errors.Is(err, roomcode.ErrExhausted) {
			return nil, ErrCodeExhausted
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	room := &domain.Room{
		Code:            code,
		Name:            req.Name,
		MaxParticipants: maxParticipants,
		IsActive:        true,
	}
	host := &domain.Participant{
		GuestName: req.GuestName,
		IsHost:    true,
		IsReady:   false,
	}

	// Room and host participant are one logical write: the repository
	// runs both inserts in a single transaction, so a failed host insert
	// never leaves an orphaned room.
	if err := s.roomRepo.CreateWithHost(ctx, room, host); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			// Lost the check-then-insert race against a concurrent creator.
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	metrics.RecordRoomCreated()
	s.logger.Info("Room created",
		zap.Uint("room_id", room.ID),
		zap.String("code", room.Code),
		zap.Int("max_participants", room.MaxParticipants),
	)

	return &domain.CreateRoomResponse{
		RoomID:        room.ID,
		Code:          room.Code,
		ParticipantID: host.ID,
	}, nil
}

func (s *roomService) EndRoom(ctx context.Context, roomID uint) error {
	transitioned, err := s.roomRepo.Deactivate(ctx, roomID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !transitioned {
		// Already ended or never existed; both are a no-op success.
		return nil
	}

	metrics.RecordRoomEnded()
	s.logger.Info("Room ended", zap.Uint("room_id", roomID))

	// The summary is derived bookkeeping; a failure here must not undo
	// the already-committed end transition, so it is logged and dropped.
	if err := s.writeSummary(ctx, roomID); err != nil {
		s.logger.Error("Failed to write session summary",
			zap.Uint("room_id", roomID),
			zap.Error(err),
		)
	}
	return nil
}

func (s *roomService) writeSummary(ctx context.Context, roomID uint) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	participants, err := s.participantRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return err
	}
	totalSwaps, err := s.swapRepo.CountByRoom(ctx, roomID)
	if err != nil {
		return err
	}
	totalMessages, err := s.messageRepo.CountByRoom(ctx, roomID)
	if err != nil {
		return err
	}

	hostName := ""
	platformSet := make(map[string]struct{})
	platforms := make([]string, 0)
	for _, p := range participants {
		if p.IsHost {
			hostName = p.GuestName
		}
		if p.CurrentPlatform != nil && *p.CurrentPlatform != "" {
			if _, seen := platformSet[*p.CurrentPlatform]; !seen {
				platformSet[*p.CurrentPlatform] = struct{}{}
				platforms = append(platforms, *p.CurrentPlatform)
			}
		}
	}
	platformsJSON, err := json.Marshal(platforms)
	if err != nil {
		return err
	}

	endedAt := time.Now()
	summary := &domain.SessionSummary{
		RoomID:           roomID,
		HostName:         hostName,
		ParticipantCount: len(participants),
		TotalSwaps:       int(totalSwaps),
		TotalMessages:    int(totalMessages),
		DurationSeconds:  int(endedAt.Sub(room.CreatedAt).Seconds()),
		PlatformsUsed:    string(platformsJSON),
		StartedAt:        room.CreatedAt,
		EndedAt:          endedAt,
	}
	return s.summaryRepo.Create(ctx, summary)
}

func (s *roomService) GetSummary(ctx context.Context, roomID uint) (*domain.SummaryResponse, error) {
	summary, err := s.summaryRepo.GetByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	response := summary.ToResponse()
	return &response, nil
}
