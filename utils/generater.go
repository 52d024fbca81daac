package utils

import (
	"github.com/google/uuid"
)

// NewReferenceID generates the external reference stamped on equipment
// requests.
func NewReferenceID() string {
	return uuid.NewString()
}
