package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"roombook/internal/models"
)

// FileRoomStore persists the room collection as a single JSON array at a
// fixed path. The whole file is rewritten and flushed on every mutation, so
// a mutation is durable by the time the call returns. Users are not file
// backed; pair this with a MemoryUserStore.
type FileRoomStore struct {
	mu    sync.Mutex
	path  string
	rooms []models.Room
}

// NewFileRoomStore loads the room array from path, or starts empty when the
// file does not exist yet. The parent directory is created if needed.
func NewFileRoomStore(path string) (*FileRoomStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &FileRoomStore{path: path}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &s.rooms); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// flush rewrites the whole file and fsyncs it. Callers hold s.mu.
func (s *FileRoomStore) flush() error {
	b, err := json.MarshalIndent(s.rooms, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *FileRoomStore) ListRooms(_ context.Context) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *FileRoomStore) GetRoom(_ context.Context, id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, room := range s.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

func (s *FileRoomStore) CreateRoom(_ context.Context, name string, capacity int, occupied bool) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := models.Room{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: capacity,
		Occupied: occupied,
	}
	s.rooms = append(s.rooms, room)
	if err := s.flush(); err != nil {
		s.rooms = s.rooms[:len(s.rooms)-1]
		return models.Room{}, fmt.Errorf("persist room: %w", err)
	}
	return room, nil
}

func (s *FileRoomStore) UpdateRoom(_ context.Context, id string, upd RoomUpdate) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		prev := s.rooms[i]
		upd.apply(&s.rooms[i])
		if err := s.flush(); err != nil {
			s.rooms[i] = prev
			return models.Room{}, fmt.Errorf("persist room: %w", err)
		}
		return s.rooms[i], nil
	}
	return models.Room{}, ErrRoomNotFound
}

func (s *FileRoomStore) DeleteRoom(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id {
			continue
		}
		prev := make([]models.Room, len(s.rooms))
		copy(prev, s.rooms)
		s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
		if err := s.flush(); err != nil {
			s.rooms = prev
			return fmt.Errorf("persist rooms: %w", err)
		}
		return nil
	}
	return ErrRoomNotFound
}
