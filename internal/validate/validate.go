// Package validate holds the pure field checks run by the HTTP handlers
// before any store mutation. Each function returns nil for valid input or
// an error whose message is safe to echo to the client.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength = 50
	MinCapacity   = 1
	MaxCapacity   = 100
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	errNameRequired     = errors.New("name is required")
	errNameTooLong      = errors.New("name must be 50 characters or fewer")
	errCapacityRequired = errors.New("capacity is required")
	errCapacityTooLow   = errors.New("capacity must be at least 1")
	errCapacityTooHigh  = errors.New("capacity must be at most 100")
	errEmailInvalid     = errors.New("invalid email format")
)

// RoomName rejects empty or whitespace-only names and names longer than 50
// characters.
func RoomName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errNameTooLong
	}
	return nil
}

// Capacity rejects a missing (zero) capacity and anything outside 1-100.
func Capacity(capacity int) error {
	if capacity == 0 {
		return errCapacityRequired
	}
	if capacity < MinCapacity {
		return errCapacityTooLow
	}
	if capacity > MaxCapacity {
		return errCapacityTooHigh
	}
	return nil
}

// Email checks the basic local@domain.tld shape.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return errEmailInvalid
	}
	return nil
}
