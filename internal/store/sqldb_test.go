package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"roombook/internal/database"
	"roombook/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLRoomStore(t *testing.T) {
	runRoomStoreTests(t, func(t *testing.T) store.RoomStore {
		return store.NewSQLRoomStore(openTestDB(t))
	})
}

func TestSQLUserStore(t *testing.T) {
	runUserStoreTests(t, func(t *testing.T) store.UserStore {
		return store.NewSQLUserStore(openTestDB(t))
	})
}

func TestSQLRoomStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.Open("sqlite", path)
	require.NoError(t, err)
	created, err := store.NewSQLRoomStore(db).CreateRoom(ctx, "Lab", 15, true)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = database.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	got, err := store.NewSQLRoomStore(db).GetRoom(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}
