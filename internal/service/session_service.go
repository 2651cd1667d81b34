package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"swap-service/internal/domain"
	"swap-service/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// snapshotTTL bounds how stale a cached snapshot can be. Clients poll on
// the order of 1-3 seconds, so a 1 s TTL never adds visible staleness.
const snapshotTTL = time.Second

// SessionService is the read-only aggregator polling clients consume:
// room + participants + bounded recent swap history in one snapshot.
type SessionService interface {
	GetSession(ctx context.Context, roomID uint, historyLimit int) (*domain.SessionResponse, error)
}

type sessionService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	swapRepo        repository.SwapRepository
	redisClient     *redis.Client
	logger          *zap.Logger
}

func NewSessionService(
	roomRepo repository.RoomRepository,
	participantRepo repository.ParticipantRepository,
	swapRepo repository.SwapRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) SessionService {
	return &sessionService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		swapRepo:        swapRepo,
		redisClient:     redisClient,
		logger:          logger,
	}
}

func (s *sessionService) GetSession(ctx context.Context, roomID uint, historyLimit int) (*domain.SessionResponse, error) {
	if historyLimit < 0 {
		historyLimit = 0
	}
	if historyLimit > maxHistoryLimit {
		historyLimit = maxHistoryLimit
	}

	cacheKey := fmt.Sprintf("session:%d:%d", roomID, historyLimit)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	participants, err := s.participantRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	response := &domain.SessionResponse{
		Room:             room.ToResponse(),
		Participants:     make([]domain.ParticipantResponse, len(participants)),
		ParticipantCount: len(participants),
		AllReady:         allReady(participants),
	}
	for i, p := range participants {
		response.Participants[i] = p.ToResponse()
	}
	// canStart is a convenience for the polling surface; the registry
	// itself never enforces the two-member threshold.
	response.CanStart = response.AllReady && response.ParticipantCount >= domain.MinRoomParticipants

	if historyLimit > 0 {
		entries, err := s.swapRepo.ListByRoom(ctx, roomID, historyLimit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		response.Swaps = make([]domain.SwapResponse, len(entries))
		for i, e := range entries {
			response.Swaps[i] = e.ToResponse()
		}
	}

	s.toCache(ctx, cacheKey, response)
	return response, nil
}

func (s *sessionService) fromCache(ctx context.Context, key string) *domain.SessionResponse {
	if s.redisClient == nil {
		return nil
	}
	data, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var response domain.SessionResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil
	}
	return &response
}

func (s *sessionService) toCache(ctx context.Context, key string, response *domain.SessionResponse) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, key, data, snapshotTTL).Err(); err != nil {
		s.logger.Debug("Snapshot cache write failed", zap.String("key", key), zap.Error(err))
	}
}
