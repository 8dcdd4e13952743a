// Package randutil derives reproducible random sources for dealing hands.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words come from the one seed so a logged seed replays a run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed when it is non-zero and otherwise derives one from now.
// Callers log the result so an unseeded run can be repeated.
func Seed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	s := int64(mix(uint64(now.UnixNano())) >> 1)
	if s == 0 {
		s = 1
	}
	return s
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
