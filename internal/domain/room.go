package domain

import (
	"time"
)

const (
	MinRoomParticipants = 2
	MaxRoomParticipants = 8

	// RoomCodeLength is the length of the human-shareable room code.
	RoomCodeLength = 6
)

// Room represents a screen-swap room. Rows are never deleted, so the
// unique index on Code holds across every room ever created, and
// IsActive=false is a terminal state.
type Room struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"size:6;uniqueIndex;not null" json:"code"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	HostID          uint      `json:"hostId"`
	MaxParticipants int       `gorm:"default:8;not null" json:"maxParticipants"`
	IsActive        bool      `gorm:"default:true;not null" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	Participants []Participant `gorm:"foreignKey:RoomID" json:"participants,omitempty"`
}

// Participant represents one member of a room. A participant belongs to
// exactly one room for its lifetime and is hard-deleted on leave.
type Participant struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RoomID          uint      `gorm:"index;not null" json:"roomId"`
	UserID          *uint     `json:"userId,omitempty"`
	GuestName       string    `gorm:"size:50" json:"guestName"`
	IsReady         bool      `gorm:"default:false;not null" json:"isReady"`
	IsHost          bool      `gorm:"default:false;not null" json:"isHost"`
	CurrentPlatform *string   `gorm:"size:50" json:"currentPlatform,omitempty"`
	JoinedAt        time.Time `gorm:"autoCreateTime" json:"joinedAt"`
	LastActiveAt    time.Time `gorm:"autoUpdateTime" json:"lastActiveAt"`
}

// DTOs
type CreateRoomRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	GuestName       string `json:"guestName" binding:"required,max=50"`
	MaxParticipants int    `json:"maxParticipants"`
}

type CreateRoomResponse struct {
	RoomID        uint   `json:"roomId"`
	Code          string `json:"code"`
	ParticipantID uint   `json:"participantId"`
}

type JoinRoomRequest struct {
	Code      string `json:"code" binding:"required,len=6"`
	GuestName string `json:"guestName" binding:"required,max=50"`
}

type JoinRoomResponse struct {
	RoomID        uint         `json:"roomId"`
	ParticipantID uint         `json:"participantId"`
	Room          RoomResponse `json:"room"`
}

type RoomResponse struct {
	ID              uint      `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	HostID          uint      `json:"hostId"`
	MaxParticipants int       `json:"maxParticipants"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ParticipantResponse struct {
	ID              uint      `json:"id"`
	RoomID          uint      `json:"roomId"`
	UserID          *uint     `json:"userId,omitempty"`
	GuestName       string    `json:"guestName"`
	IsReady         bool      `json:"isReady"`
	IsHost          bool      `json:"isHost"`
	CurrentPlatform *string   `json:"currentPlatform,omitempty"`
	JoinedAt        time.Time `json:"joinedAt"`
}

// SessionResponse is the aggregator read model consumed by polling
// clients: one consistent snapshot of room + participants + recent swaps.
type SessionResponse struct {
	Room             RoomResponse          `json:"room"`
	Participants     []ParticipantResponse `json:"participants"`
	ParticipantCount int                   `json:"participantCount"`
	AllReady         bool                  `json:"allReady"`
	CanStart         bool                  `json:"canStart"`
	Swaps            []SwapResponse        `json:"swaps,omitempty"`
}

type SetReadyRequest struct {
	IsReady *bool `json:"isReady" binding:"required"`
}

type SetPlatformRequest struct {
	Platform string `json:"platform" binding:"required,max=50"`
}

func (r *Room) ToResponse() RoomResponse {
	return RoomResponse{
		ID:              r.ID,
		Code:            r.Code,
		Name:            r.Name,
		HostID:          r.HostID,
		MaxParticipants: r.MaxParticipants,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (p *Participant) ToResponse() ParticipantResponse {
	return ParticipantResponse{
		ID:              p.ID,
		RoomID:          p.RoomID,
		UserID:          p.UserID,
		GuestName:       p.GuestName,
		IsReady:         p.IsReady,
		IsHost:          p.IsHost,
		CurrentPlatform: p.CurrentPlatform,
		JoinedAt:        p.JoinedAt,
	}
}
