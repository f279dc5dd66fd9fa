package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for transactions and sessions.
// UUIDv7 is preferred for its time-ordered layout; v4 is the fallback
// when the system entropy source misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
