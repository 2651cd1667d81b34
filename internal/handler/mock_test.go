package handler

import (
	"context"

	"swap-service/internal/domain"
)

// MockRoomService is a mock implementation of service.RoomService
type MockRoomService struct {
	CreateRoomFunc func(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error)
	EndRoomFunc    func(ctx context.Context, roomID uint) error
	GetSummaryFunc func(ctx context.Context, roomID uint) (*domain.SummaryResponse, error)
}

func (m *MockRoomService) CreateRoom(ctx context.Context, req *domain.CreateRoomRequest) (*domain.CreateRoomResponse, error) {
	if m.CreateRoomFunc != nil {
		return m.CreateRoomFunc(ctx, req)
	}
	return &domain.CreateRoomResponse{}, nil
}

func (m *MockRoomService) EndRoom(ctx context.Context, roomID uint) error {
	if m.EndRoomFunc != nil {
		return m.EndRoomFunc(ctx, roomID)
	}
	return nil
}

func (m *MockRoomService) GetSummary(ctx context.Context, roomID uint) (*domain.SummaryResponse, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, roomID)
	}
	return &domain.SummaryResponse{}, nil
}

// MockParticipantService is a mock implementation of service.ParticipantService
type MockParticipantService struct {
	JoinFunc        func(ctx context.Context, req *domain.JoinRoomRequest) (*domain.JoinRoomResponse, error)
	LeaveFunc       func(ctx context.Context, participantID uint) error
	SetReadyFunc    func(ctx context.Context, participantID uint, isReady bool) error
	SetPlatformFunc func(ctx context.Context, participantID uint, platform string) error
	AllReadyFunc    func(ctx context.Context, roomID uint) (bool, error)
}

func (m *MockParticipantService) Join(ctx context.Context, req *domain.JoinRoomRequest) (*domain.JoinRoomResponse, error) {
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, req)
	}
	return &domain.JoinRoomResponse{}, nil
}

func (m *MockParticipantService) Leave(ctx context.Context, participantID uint) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, participantID)
	}
	return nil
}

func (m *MockParticipantService) SetReady(ctx context.Context, participantID uint, isReady bool) error {
	if m.SetReadyFunc != nil {
		return m.SetReadyFunc(ctx, participantID, isReady)
	}
	return nil
}

func (m *MockParticipantService) SetPlatform(ctx context.Context, participantID uint, platform string) error {
	if m.SetPlatformFunc != nil {
		return m.SetPlatformFunc(ctx, participantID, platform)
	}
	return nil
}

func (m *MockParticipantService) AllReady(ctx context.Context, roomID uint) (bool, error) {
	if m.AllReadyFunc != nil {
		return m.AllReadyFunc(ctx, roomID)
	}
	return false, nil
}

// MockSessionService is a mock implementation of service.SessionService
type MockSessionService struct {
	GetSessionFunc func(ctx context.Context, roomID uint, historyLimit int) (*domain.SessionResponse, error)
}

func (m *MockSessionService) GetSession(ctx context.Context, roomID uint, historyLimit int) (*domain.SessionResponse, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, roomID, historyLimit)
	}
	return &domain.SessionResponse{}, nil
}

// MockSwapService is a mock implementation of service.SwapService
type MockSwapService struct {
	RecordSwapFunc func(ctx context.Context, roomID uint, req *domain.RecordSwapRequest) (*domain.RecordSwapResponse, error)
	HistoryFunc    func(ctx context.Context, roomID uint, limit int) ([]domain.SwapResponse, error)
	PickRandomFunc func(ctx context.Context, roomID, selfID, currentTargetID uint) (*domain.Participant, error)
}

func (m *MockSwapService) RecordSwap(ctx context.Context, roomID uint, req *domain.RecordSwapRequest) (*domain.RecordSwapResponse, error) {
	if m.RecordSwapFunc != nil {
		return m.RecordSwapFunc(ctx, roomID, req)
	}
	return &domain.RecordSwapResponse{}, nil
}

func (m *MockSwapService) History(ctx context.Context, roomID uint, limit int) ([]domain.SwapResponse, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, roomID, limit)
	}
	return nil, nil
}

func (m *MockSwapService) PickRandom(ctx context.Context, roomID, selfID, currentTargetID uint) (*domain.Participant, error) {
	if m.PickRandomFunc != nil {
		return m.PickRandomFunc(ctx, roomID, selfID, currentTargetID)
	}
	return nil, nil
}
