package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for new records.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues version 7 UUIDs so ids sort roughly by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}

// Valid reports whether raw parses as a UUID.
func Valid(raw string) bool {
	return uuid.Validate(raw) == nil
}
