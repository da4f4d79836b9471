package random

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for point draws and avatar picks.
// Tests substitute a deterministic implementation.
type Rand interface {
	Intn(n int) int
}

func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
