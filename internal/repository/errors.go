package repository

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateCode means a room insert lost the code-uniqueness race.
	ErrDuplicateCode = errors.New("repository: duplicate room code")
	// ErrRoomEnded means the target room is no longer active.
	ErrRoomEnded = errors.New("repository: room ended")
	// ErrRoomFull means the room is at its participant capacity.
	ErrRoomFull = errors.New("repository: room full")
)
