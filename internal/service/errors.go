package service

import "errors"

var (
	ErrRoomNotFound           = errors.New("room not found")
	ErrRoomEnded              = errors.New("room is no longer active")
	ErrRoomFull               = errors.New("room is full")
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrParticipantNotInRoom   = errors.New("participant does not belong to this room")
	ErrInvalidMaxParticipants = errors.New("max participants must be between 2 and 8")
	ErrInvalidSwapType        = errors.New("swap type must be manual or random")
	ErrCodeExhausted          = errors.New("failed to allocate a unique room code")
	ErrDuplicateCode          = errors.New("room code already taken")
	ErrSummaryNotFound        = errors.New("session summary not found")

	// ErrStorageUnavailable wraps infrastructure failures so callers never
	// mistake a store outage for a missing entity.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
