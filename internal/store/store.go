// Package store defines the persistence port for rooms and users and its
// backends. Handlers depend only on the RoomStore and UserStore interfaces
// so any backend can be swapped in, including an in-memory one for tests.
package store

import (
	"context"
	"errors"

	"roombook/internal/models"
)

var (
	// ErrRoomNotFound is returned for lookups and mutations on an unknown
	// room id.
	ErrRoomNotFound = errors.New("room not found")

	// ErrEmailExists is returned by Register when the email is taken.
	ErrEmailExists = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned by Login on any mismatch. The store
	// never reveals whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RoomUpdate carries the fields of a partial room update. Nil fields are
// left untouched; only Occupied is exercised by the HTTP surface.
type RoomUpdate struct {
	Name     *string
	Capacity *int
	Occupied *bool
}

// RoomStore owns the room collection. ListRooms returns rooms in insertion
// order and must never alias internal state. Every mutation is durable
// before the call returns.
type RoomStore interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id string) (models.Room, error)
	CreateRoom(ctx context.Context, name string, capacity int, occupied bool) (models.Room, error)
	UpdateRoom(ctx context.Context, id string, upd RoomUpdate) (models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// UserStore owns the user collection. Both methods return the public
// projection only; the stored password never leaves the store.
type UserStore interface {
	Register(ctx context.Context, email, password string) (models.UserResponse, error)
	Login(ctx context.Context, email, password string) (models.UserResponse, error)
}

func (u RoomUpdate) apply(room *models.Room) {
	if u.Name != nil {
		room.Name = *u.Name
	}
	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}
	if u.Occupied != nil {
		room.Occupied = *u.Occupied
	}
}
