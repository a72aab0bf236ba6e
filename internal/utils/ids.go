package utils

import (
	"github.com/google/uuid"
)

// NewRandomID returns a new random request / client id.
func NewRandomID() string {
	return uuid.New().String()
}

// IsValidID returns if the given string could have come from NewRandomID.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
