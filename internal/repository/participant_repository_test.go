package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"swap-service/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Room{},
		&domain.Participant{},
		&domain.SwapEntry{},
		&domain.Message{},
		&domain.SessionSummary{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func createTestRoom(t *testing.T, db *gorm.DB, code string, maxParticipants int, isActive bool) *domain.Room {
	t.Helper()
	room := &domain.Room{
		Code:            code,
		Name:            "test room",
		MaxParticipants: maxParticipants,
		IsActive:        isActive,
	}
	require.NoError(t, db.Create(room).Error)
	// IsActive carries `gorm:"default:true"`, so Create omits the
	// zero-value false; persist inactivity with an explicit update.
	if !isActive {
		require.NoError(t, db.Model(room).Update("is_active", false).Error)
	}
	return room
}

func TestParticipantRepository_JoinRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to capacity and rejects the overflow join", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewParticipantRepository(db)
		room := createTestRoom(t, db, "AB12CD", 3, true)

		// Fill the room to one below capacity.
		for i := 0; i < room.MaxParticipants-1; i++ {
			_, err := repo.JoinRoom(ctx, "AB12CD", &domain.Participant{
				GuestName: fmt.Sprintf("guest-%d", i),
			})
			require.NoError(t, err)
		}

		// The join from max-1 to max succeeds.
		joined, err := repo.JoinRoom(ctx, "AB12CD", &domain.Participant{GuestName: "last-in"})
		require.NoError(t, err)
		assert.Equal(t, room.ID, joined.ID)

		// The join at max is rejected and leaves no row behind.
		_, err = repo.JoinRoom(ctx, "AB12CD", &domain.Participant{GuestName: "too-late"})
		assert.ErrorIs(t, err, ErrRoomFull)

		count, err := repo.CountByRoom(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(room.MaxParticipants), count)
	})

	t.Run("leave reopens a full room", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewParticipantRepository(db)
		room := createTestRoom(t, db, "EF34GH", 2, true)

		first := &domain.Participant{GuestName: "alice"}
		_, err := repo.JoinRoom(ctx, "EF34GH", first)
		require.NoError(t, err)
		_, err = repo.JoinRoom(ctx, "EF34GH", &domain.Participant{GuestName: "bob"})
		require.NoError(t, err)

		_, err = repo.JoinRoom(ctx, "EF34GH", &domain.Participant{GuestName: "carol"})
		require.ErrorIs(t, err, ErrRoomFull)

		require.NoError(t, repo.Delete(ctx, first.ID))

		_, err = repo.JoinRoom(ctx, "EF34GH", &domain.Participant{GuestName: "carol"})
		require.NoError(t, err)

		count, err := repo.CountByRoom(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("unknown code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewParticipantRepository(db)

		_, err := repo.JoinRoom(ctx, "ZZZZZZ", &domain.Participant{GuestName: "alice"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ended room", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewParticipantRepository(db)
		createTestRoom(t, db, "IJ56KL", 4, false)

		_, err := repo.JoinRoom(ctx, "IJ56KL", &domain.Participant{GuestName: "alice"})
		assert.ErrorIs(t, err, ErrRoomEnded)
	})
}

func TestParticipantRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewParticipantRepository(db)
	createTestRoom(t, db, "MN78OP", 4, true)

	p := &domain.Participant{GuestName: "alice"}
	_, err := repo.JoinRoom(ctx, "MN78OP", p)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))
	// Deleting the same row again is not an error.
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParticipantRepository_SetReady(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewParticipantRepository(db)
	createTestRoom(t, db, "QR90ST", 4, true)

	p := &domain.Participant{GuestName: "alice"}
	_, err := repo.JoinRoom(ctx, "QR90ST", p)
	require.NoError(t, err)

	require.NoError(t, repo.SetReady(ctx, p.ID, true))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsReady)

	assert.ErrorIs(t, repo.SetReady(ctx, 9999, true), ErrNotFound)
}
