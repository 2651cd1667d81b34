package service

import (
	"context"

	"swap-service/internal/domain"
)

// MockRoomRepository is a mock implementation of repository.RoomRepository
type MockRoomRepository struct {
	CreateWithHostFunc func(ctx context.Context, room *domain.Room, host *domain.Participant) error
	GetByIDFunc        func(ctx context.Context, id uint) (*domain.Room, error)
	GetByCodeFunc      func(ctx context.Context, code string) (*domain.Room, error)
	CodeExistsFunc     func(ctx context.Context, code string) (bool, error)
	DeactivateFunc     func(ctx context.Context, id uint) (bool, error)
}

func (m *MockRoomRepository) CreateWithHost(ctx context.Context, room *domain.Room, host *domain.Participant) error {
	if m.CreateWithHostFunc != nil {
		return m.CreateWithHostFunc(ctx, room, host)
	}
	return nil
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id uint) (*domain.Room, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRoomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockRoomRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.CodeExistsFunc != nil {
		return m.CodeExistsFunc(ctx, code)
	}
	return false, nil
}

func (m *MockRoomRepository) Deactivate(ctx context.Context, id uint) (bool, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return true, nil
}

// MockParticipantRepository is a mock implementation of repository.ParticipantRepository
type MockParticipantRepository struct {
	JoinRoomFunc    func(ctx context.Context, code string, participant *domain.Participant) (*domain.Room, error)
	GetByIDFunc     func(ctx context.Context, id uint) (*domain.Participant, error)
	ListByRoomFunc  func(ctx context.Context, roomID uint) ([]domain.Participant, error)
	CountByRoomFunc func(ctx context.Context, roomID uint) (int64, error)
	DeleteFunc      func(ctx context.Context, id uint) error
	SetReadyFunc    func(ctx context.Context, id uint, isReady bool) error
	SetPlatformFunc func(ctx context.Context, id uint, platform string) error
}

func (m *MockParticipantRepository) JoinRoom(ctx context.Context, code string, participant *domain.Participant) (*domain.Room, error) {
	if m.JoinRoomFunc != nil {
		return m.JoinRoomFunc(ctx, code, participant)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetByID(ctx context.Context, id uint) (*domain.Participant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) ListByRoom(ctx context.Context, roomID uint) ([]domain.Participant, error) {
	if m.ListByRoomFunc != nil {
		return m.ListByRoomFunc(ctx, roomID)
	}
	return nil, nil
}

func (m *MockParticipantRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	if m.CountByRoomFunc != nil {
		return m.CountByRoomFunc(ctx, roomID)
	}
	return 0, nil
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockParticipantRepository) SetReady(ctx context.Context, id uint, isReady bool) error {
	if m.SetReadyFunc != nil {
		return m.SetReadyFunc(ctx, id, isReady)
	}
	return nil
}

func (m *MockParticipantRepository) SetPlatform(ctx context.Context, id uint, platform string) error {
	if m.SetPlatformFunc != nil {
		return m.SetPlatformFunc(ctx, id, platform)
	}
	return nil
}

// MockSwapRepository is a mock implementation of repository.SwapRepository
type MockSwapRepository struct {
	AppendFunc      func(ctx context.Context, entry *domain.SwapEntry) error
	ListByRoomFunc  func(ctx context.Context, roomID uint, limit int) ([]domain.SwapEntry, error)
	CountByRoomFunc func(ctx context.Context, roomID uint) (int64, error)
}

func (m *MockSwapRepository) Append(ctx context.Context, entry *domain.SwapEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *MockSwapRepository) ListByRoom(ctx context.Context, roomID uint, limit int) ([]domain.SwapEntry, error) {
	if m.ListByRoomFunc != nil {
		return m.ListByRoomFunc(ctx, roomID, limit)
	}
	return nil, nil
}

func (m *MockSwapRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	if m.CountByRoomFunc != nil {
		return m.CountByRoomFunc(ctx, roomID)
	}
	return 0, nil
}

// MockMessageRepository is a mock implementation of repository.MessageRepository
type MockMessageRepository struct {
	CreateFunc      func(ctx context.Context, message *domain.Message) error
	ListByRoomFunc  func(ctx context.Context, roomID uint, limit int) ([]domain.Message, error)
	CountByRoomFunc func(ctx context.Context, roomID uint) (int64, error)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockMessageRepository) ListByRoom(ctx context.Context, roomID uint, limit int) ([]domain.Message, error) {
	if m.ListByRoomFunc != nil {
		return m.ListByRoomFunc(ctx, roomID, limit)
	}
	return nil, nil
}

func (m *MockMessageRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	if m.CountByRoomFunc != nil {
		return m.CountByRoomFunc(ctx, roomID)
	}
	return 0, nil
}

// MockSummaryRepository is a mock implementation of repository.SummaryRepository
type MockSummaryRepository struct {
	CreateFunc    func(ctx context.Context, summary *domain.SessionSummary) error
	GetByRoomFunc func(ctx context.Context, roomID uint) (*domain.SessionSummary, error)
}

func (m *MockSummaryRepository) Create(ctx context.Context, summary *domain.SessionSummary) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, summary)
	}
	return nil
}

func (m *MockSummaryRepository) GetByRoom(ctx context.Context, roomID uint) (*domain.SessionSummary, error) {
	if m.GetByRoomFunc != nil {
		return m.GetByRoomFunc(ctx, roomID)
	}
	return nil, nil
}
