package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// SeededRandom implements Random with a deterministic PCG generator
// Two instances built from the same seed produce the same sequence.
type SeededRandom struct {
	seed uint64
	rng  *mathrand.Rand
}

// NewSeeded creates a SeededRandom for the given seed
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{
		seed: seed,
		rng:  mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed this generator was built from
func (r *SeededRandom) Seed() uint64 {
	return r.seed
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String generates a pseudo-random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// Shuffle permutes n elements in place with a Fisher-Yates pass driven by r
// swap is called with the indices to exchange, as with sort.Slice.
func Shuffle(r Random, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		if j != i {
			swap(i, j)
		}
	}
}

func randomString(r Random, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
