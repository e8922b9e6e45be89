package utils

import "github.com/google/uuid"

// UUIDGenerator issues record ids. Version 7 ids sort by creation time,
// which keeps freshly inserted rows clustered in the primary key index.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new v7 UUID string, falling back to v4 if the
// monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID. Path parameters that fail this
// check cannot match any stored record.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
