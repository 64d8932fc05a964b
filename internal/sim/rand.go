package sim

import "math/rand"

// Rand is the randomness source used by spawning and block rewards.
// *rand.Rand satisfies it; tests may supply scripted values.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a whole-pixel value in [min, max].
func between(r Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + float64(r.Intn(int(max-min)+1))
}

// jitter returns a signed offset uniform in [-j, j).
func jitter(r Rand, j float64) float64 {
	if j <= 0 {
		return 0
	}
	return (r.Float64()*2 - 1) * j
}

func chance(r Rand, p float64) bool {
	return r.Float64() < p
}
