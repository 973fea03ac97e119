package utils

import "github.com/google/uuid"

// UUIDGenerator mints identifiers for persons, vault entries, terms, and
// documents. UUIDv7 keeps ids time-sortable; on the rare NewV7 failure it
// falls back to a random v4.
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
