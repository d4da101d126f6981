package crypto

import "github.com/google/uuid"

// IDGenerator produces opaque unique ids; the session manager uses it
// for token jti claims.
type IDGenerator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID never fails for UUIDs; the error return keeps the interface
// open for generators backed by an entropy source that can.
func (g *UUIDGenerator) NewID() (string, error) {
	return uuid.NewString(), nil
}
