package repository

import (
	"math/rand"
	"time"
)

// IDGenerator produces surrogate identifiers for newly inserted rows.
// Injected so tests can supply deterministic ids and production can swap
// in a sequence-backed generator without touching the repository.
type IDGenerator interface {
	NextID() int64
}

type clockRandomGenerator struct{}

// NewIDGenerator returns the default generator: wall-clock milliseconds
// shifted by three digits plus a random offset in [0,1000).
func NewIDGenerator() IDGenerator {
	return clockRandomGenerator{}
}

func (clockRandomGenerator) NextID() int64 {
	return time.Now().UnixMilli()*1000 + rand.Int63n(1000)
}
