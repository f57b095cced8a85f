package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"roombook/internal/store"
)

// runRoomStoreTests exercises the RoomStore contract shared by every
// backend: id assignment, insertion order, round-trips, partial updates and
// not-found outcomes.
func runRoomStoreTests(t *testing.T, newStore func(t *testing.T) store.RoomStore) {
	ctx := context.Background()

	t.Run("create assigns id and round-trips", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateRoom(ctx, "Lab", 15, false)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "Lab", created.Name)
		require.Equal(t, 15, created.Capacity)
		require.False(t, created.Occupied)

		got, err := s.GetRoom(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created, got)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		s := newStore(t)

		first, err := s.CreateRoom(ctx, "Alpha", 5, false)
		require.NoError(t, err)
		second, err := s.CreateRoom(ctx, "Beta", 10, true)
		require.NoError(t, err)
		third, err := s.CreateRoom(ctx, "Gamma", 20, false)
		require.NoError(t, err)

		rooms, err := s.ListRooms(ctx)
		require.NoError(t, err)
		require.Len(t, rooms, 3)
		require.Equal(t, []string{first.ID, second.ID, third.ID},
			[]string{rooms[0].ID, rooms[1].ID, rooms[2].ID})
	})

	t.Run("list does not alias store state", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateRoom(ctx, "Alpha", 5, false)
		require.NoError(t, err)

		rooms, err := s.ListRooms(ctx)
		require.NoError(t, err)
		rooms[0].Name = "mutated"
		rooms[0].Occupied = true

		got, err := s.GetRoom(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Alpha", got.Name)
		require.False(t, got.Occupied)
	})

	t.Run("update occupancy is idempotent", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateRoom(ctx, "Lab", 15, false)
		require.NoError(t, err)

		occupied := true
		for i := 0; i < 2; i++ {
			updated, err := s.UpdateRoom(ctx, created.ID, store.RoomUpdate{Occupied: &occupied})
			require.NoError(t, err)
			require.True(t, updated.Occupied)
		}

		got, err := s.GetRoom(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, got.Occupied)
		require.Equal(t, created.Name, got.Name)
		require.Equal(t, created.Capacity, got.Capacity)
	})

	t.Run("get and update unknown id", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetRoom(ctx, "missing")
		require.ErrorIs(t, err, store.ErrRoomNotFound)

		occupied := true
		_, err = s.UpdateRoom(ctx, "missing", store.RoomUpdate{Occupied: &occupied})
		require.ErrorIs(t, err, store.ErrRoomNotFound)
	})

	t.Run("delete removes the room", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateRoom(ctx, "Lab", 15, false)
		require.NoError(t, err)

		require.NoError(t, s.DeleteRoom(ctx, created.ID))
		_, err = s.GetRoom(ctx, created.ID)
		require.ErrorIs(t, err, store.ErrRoomNotFound)

		require.ErrorIs(t, s.DeleteRoom(ctx, created.ID), store.ErrRoomNotFound)
	})
}

// runUserStoreTests exercises the UserStore contract: unique emails,
// password-excluding projections and enumeration-safe login failures.
func runUserStoreTests(t *testing.T, newStore func(t *testing.T) store.UserStore) {
	ctx := context.Background()

	t.Run("register and login", func(t *testing.T) {
		s := newStore(t)

		user, err := s.Register(ctx, "user@example.com", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "user@example.com", user.Email)

		logged, err := s.Login(ctx, "user@example.com", "secret")
		require.NoError(t, err)
		require.Equal(t, user, logged)
	})

	t.Run("duplicate email does not clobber the original", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Register(ctx, "user@example.com", "original")
		require.NoError(t, err)

		_, err = s.Register(ctx, "user@example.com", "other")
		require.ErrorIs(t, err, store.ErrEmailExists)

		_, err = s.Login(ctx, "user@example.com", "original")
		require.NoError(t, err)
		_, err = s.Login(ctx, "user@example.com", "other")
		require.ErrorIs(t, err, store.ErrInvalidCredentials)
	})

	t.Run("login failures are indistinguishable", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Register(ctx, "user@example.com", "secret")
		require.NoError(t, err)

		_, wrongPassword := s.Login(ctx, "user@example.com", "nope")
		_, unknownEmail := s.Login(ctx, "ghost@example.com", "secret")
		require.ErrorIs(t, wrongPassword, store.ErrInvalidCredentials)
		require.ErrorIs(t, unknownEmail, store.ErrInvalidCredentials)
	})
}
