package repository

import "github.com/google/uuid"

// IDGenerator produces identifiers for new records
type IDGenerator func() string

// NewTimeOrderedID returns a UUIDv7, which sorts by creation time.
func NewTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
