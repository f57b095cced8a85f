package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"roombook/internal/models"
)

// MemoryRoomStore keeps rooms in a mutex-guarded slice, preserving
// insertion order. It is the default backend and the one tests use.
type MemoryRoomStore struct {
	mu    sync.Mutex
	rooms []models.Room
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{}
}

func (s *MemoryRoomStore) ListRooms(_ context.Context) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *MemoryRoomStore) GetRoom(_ context.Context, id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, room := range s.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

func (s *MemoryRoomStore) CreateRoom(_ context.Context, name string, capacity int, occupied bool) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := models.Room{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: capacity,
		Occupied: occupied,
	}
	s.rooms = append(s.rooms, room)
	return room, nil
}

func (s *MemoryRoomStore) UpdateRoom(_ context.Context, id string, upd RoomUpdate) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			upd.apply(&s.rooms[i])
			return s.rooms[i], nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

func (s *MemoryRoomStore) DeleteRoom(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRoomNotFound
}

// MemoryUserStore keeps users in a mutex-guarded slice. Registration
// enforces email uniqueness; login is a plain equality check.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Register(_ context.Context, email, password string) (models.UserResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.UserResponse{}, ErrEmailExists
		}
	}
	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: password,
	}
	s.users = append(s.users, user)
	return user.Response(), nil
}

func (s *MemoryUserStore) Login(_ context.Context, email, password string) (models.UserResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u.Response(), nil
		}
	}
	return models.UserResponse{}, ErrInvalidCredentials
}
