package id

import "github.com/google/uuid"

// New returns a unique opaque identifier for questions, sessions,
// and results.
func New() string {
	return uuid.NewString()
}
