package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"roombook/internal/models"
)

// SQLRoomStore persists rooms through database/sql. It works against any
// registered driver with a compatible schema; mysql and sqlite are wired in
// internal/database.
type SQLRoomStore struct {
	DB *sql.DB
}

func NewSQLRoomStore(db *sql.DB) *SQLRoomStore {
	return &SQLRoomStore{DB: db}
}

func (s *SQLRoomStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, capacity, occupied FROM rooms ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var r models.Room
		if err := rows.Scan(&r.ID, &r.Name, &r.Capacity, &r.Occupied); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

func (s *SQLRoomStore) GetRoom(ctx context.Context, id string) (models.Room, error) {
	var r models.Room
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, capacity, occupied FROM rooms WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &r.Capacity, &r.Occupied)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return models.Room{}, err
	}
	return r, nil
}

func (s *SQLRoomStore) CreateRoom(ctx context.Context, name string, capacity int, occupied bool) (models.Room, error) {
	room := models.Room{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: capacity,
		Occupied: occupied,
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO rooms (id, name, capacity, occupied, created_at) VALUES (?, ?, ?, ?, ?)`,
		room.ID, room.Name, room.Capacity, room.Occupied, time.Now().UnixNano())
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *SQLRoomStore) UpdateRoom(ctx context.Context, id string, upd RoomUpdate) (models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	upd.apply(&room)

	_, err = s.DB.ExecContext(ctx,
		`UPDATE rooms SET name = ?, capacity = ?, occupied = ? WHERE id = ?`,
		room.Name, room.Capacity, room.Occupied, id)
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *SQLRoomStore) DeleteRoom(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SQLUserStore persists users through database/sql. The unique index on
// email backs up the pre-insert existence check.
type SQLUserStore struct {
	DB *sql.DB
}

func NewSQLUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{DB: db}
}

func (s *SQLUserStore) Register(ctx context.Context, email, password string) (models.UserResponse, error) {
	var existing string
	err := s.DB.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ?`, email).Scan(&existing)
	if err == nil {
		return models.UserResponse{}, ErrEmailExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.UserResponse{}, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: password,
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, password, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Email, user.Password, time.Now().UnixNano())
	if err != nil {
		return models.UserResponse{}, err
	}
	return user.Response(), nil
}

func (s *SQLUserStore) Login(ctx context.Context, email, password string) (models.UserResponse, error) {
	var user models.User
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, email, password FROM users WHERE email = ?`, email).
		Scan(&user.ID, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.UserResponse{}, err
	}
	if user.Password != password {
		return models.UserResponse{}, ErrInvalidCredentials
	}
	return user.Response(), nil
}
