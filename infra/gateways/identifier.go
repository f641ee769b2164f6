package gateways

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// HexGenerator produces 32 hex chars from 16 random bytes.
type HexGenerator struct{}

func NewHexGenerator() *HexGenerator {
	return &HexGenerator{}
}

func (g *HexGenerator) Generate() string {
	b := make([]byte, 16)
	// crypto/rand.Read never fails; it aborts the process instead.
	rand.Read(b)
	return hex.EncodeToString(b)
}
