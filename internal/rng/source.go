package rng

//go:generate mockgen -destination=mock/mock_source.go -package=mockrng -source=source.go

// Source provides uniform random integers for tie-breaking between
// equally valid AI choices. This is an interface so tests can inject
// deterministic implementations.
type Source interface {
	// Intn returns a uniform random int in [0, n). It panics if n <= 0,
	// matching math/rand semantics.
	Intn(n int) int
}
