package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomBuffer generates a byte buffer of the given size using
// the given RNG.
func (r *RNG) GenerateRandomBuffer(size int) []byte {
	buf := make([]byte, size)
	_, _ = r.rand.Read(buf)

	return buf
}

// GenerateRandomBuffers generates num byte buffers of the given size
// using the given RNG.
func (r *RNG) GenerateRandomBuffers(num int, size int) [][]byte {
	buffers := make([][]byte, num)
	for i := range buffers {
		buffers[i] = r.GenerateRandomBuffer(size)
	}

	return buffers
}
