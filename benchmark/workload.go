package benchmark

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// alphanumerics is the 62-symbol alphabet keys and values are drawn from.
const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewWorkerRand returns the random source for one worker. With baseSeed 0
// each worker gets an independent crypto/rand seed; with a nonzero baseSeed
// worker i draws from the stream baseSeed+i, so runs are reproducible.
func NewWorkerRand(baseSeed int64, workerID int) *rand.Rand {
	if baseSeed == 0 {
		var b [8]byte
		if _, err := cryptorand.Read(b[:]); err == nil {
			return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
		// crypto/rand should never fail; fall through to a worker-distinct seed
		baseSeed = 1
	}
	return rand.New(rand.NewSource(baseSeed + int64(workerID)))
}

// RandomAlphanumeric draws a uniform random string of the given length from
// the alphanumeric alphabet. Collisions across calls are possible and fine.
func RandomAlphanumeric(rng *rand.Rand, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphanumerics[rng.Intn(len(alphanumerics))]
	}
	return string(buf)
}
