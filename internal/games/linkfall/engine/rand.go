package engine

// Rand is the source of randomness used for spawning and target sampling.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}
