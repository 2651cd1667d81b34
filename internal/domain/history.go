package domain

import (
	"time"
)

type SwapType string

const (
	SwapTypeManual SwapType = "manual"
	SwapTypeRandom SwapType = "random"
)

func (t SwapType) Valid() bool {
	return t == SwapTypeManual || t == SwapTypeRandom
}

// SwapEntry is one append-only swap-history record. Entries are never
// updated or deleted and may outlive the participants they reference,
// so readers must tolerate dangling participant ids.
type SwapEntry struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	RoomID            uint      `gorm:"index;not null" json:"roomId"`
	FromParticipantID uint      `gorm:"not null" json:"fromParticipantId"`
	ToParticipantID   uint      `gorm:"not null" json:"toParticipantId"`
	SwapType          SwapType  `gorm:"size:10;not null" json:"swapType"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Message is an in-room chat message. SenderName is a stored label so
// the message stays renderable after the sender leaves.
type Message struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoomID        uint      `gorm:"index;not null" json:"roomId"`
	ParticipantID uint      `gorm:"not null" json:"participantId"`
	SenderName    string    `gorm:"size:50;not null" json:"senderName"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SessionSummary captures aggregate statistics for a finished room,
// written once when the room ends.
type SessionSummary struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RoomID           uint      `gorm:"index;not null" json:"roomId"`
	HostName         string    `gorm:"size:50" json:"hostName"`
	ParticipantCount int       `gorm:"not null" json:"participantCount"`
	TotalSwaps       int       `gorm:"default:0;not null" json:"totalSwaps"`
	TotalMessages    int       `gorm:"default:0;not null" json:"totalMessages"`
	DurationSeconds  int       `gorm:"not null" json:"durationSeconds"`
	PlatformsUsed    string    `gorm:"type:text" json:"platformsUsed"`
	StartedAt        time.Time `json:"startedAt"`
	EndedAt          time.Time `json:"endedAt"`
}

// DTOs
type RecordSwapRequest struct {
	FromParticipantID uint     `json:"fromParticipantId" binding:"required"`
	ToParticipantID   uint     `json:"toParticipantId" binding:"required"`
	SwapType          SwapType `json:"swapType" binding:"required"`
}

type RecordSwapResponse struct {
	SwapID uint `json:"swapId"`
}

type SwapResponse struct {
	ID                uint      `json:"id"`
	RoomID            uint      `json:"roomId"`
	FromParticipantID uint      `json:"fromParticipantId"`
	ToParticipantID   uint      `json:"toParticipantId"`
	SwapType          SwapType  `json:"swapType"`
	CreatedAt         time.Time `json:"createdAt"`
}

type PickTargetRequest struct {
	SelfID          uint `json:"selfId" binding:"required"`
	CurrentTargetID uint `json:"currentTargetId"`
}

type PickTargetResponse struct {
	Candidate *ParticipantResponse `json:"candidate"`
}

type SendMessageRequest struct {
	ParticipantID uint   `json:"participantId" binding:"required"`
	SenderName    string `json:"senderName" binding:"required,max=50"`
	Content       string `json:"content" binding:"required,max=500"`
}

type SendMessageResponse struct {
	MessageID uint `json:"messageId"`
}

type MessageResponse struct {
	ID            uint      `json:"id"`
	RoomID        uint      `json:"roomId"`
	ParticipantID uint      `json:"participantId"`
	SenderName    string    `json:"senderName"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SummaryResponse struct {
	ID               uint      `json:"id"`
	RoomID           uint      `json:"roomId"`
	HostName         string    `json:"hostName"`
	ParticipantCount int       `json:"participantCount"`
	TotalSwaps       int       `json:"totalSwaps"`
	TotalMessages    int       `json:"totalMessages"`
	DurationSeconds  int       `json:"durationSeconds"`
	PlatformsUsed    string    `json:"platformsUsed"`
	StartedAt        time.Time `json:"startedAt"`
	EndedAt          time.Time `json:"endedAt"`
}

func (e *SwapEntry) ToResponse() SwapResponse {
	return SwapResponse{
		ID:                e.ID,
		RoomID:            e.RoomID,
		FromParticipantID: e.FromParticipantID,
		ToParticipantID:   e.ToParticipantID,
		SwapType:          e.SwapType,
		CreatedAt:         e.CreatedAt,
	}
}

func (m *Message) ToResponse() MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		RoomID:        m.RoomID,
		ParticipantID: m.ParticipantID,
		SenderName:    m.SenderName,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
	}
}

func (s *SessionSummary) ToResponse() SummaryResponse {
	return SummaryResponse{
		ID:               s.ID,
		RoomID:           s.RoomID,
		HostName:         s.HostName,
		ParticipantCount: s.ParticipantCount,
		TotalSwaps:       s.TotalSwaps,
		TotalMessages:    s.TotalMessages,
		DurationSeconds:  s.DurationSeconds,
		PlatformsUsed:    s.PlatformsUsed,
		StartedAt:        s.StartedAt,
		EndedAt:          s.EndedAt,
	}
}
