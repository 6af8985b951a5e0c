package usecase

import "github.com/google/uuid"

// IDGenerator returns a fresh unique identifier.
type IDGenerator func() string

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
