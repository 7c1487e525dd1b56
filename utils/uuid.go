package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh opaque identifier for any entity
func GenerateID() string {
	return uuid.NewString()
}
