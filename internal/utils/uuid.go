package utils

import "github.com/google/uuid"

// UUIDGenerator produces string UUIDs for desks, items and pending-recovery
// records. Prefers time-ordered V7 so that freshly inserted rows sort by
// creation time; falls back to V4 if V7 generation fails.
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
