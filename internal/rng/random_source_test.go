package rng_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/scripted-ai/internal/rng"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	first := rng.NewSeededSource(42)
	second := rng.NewSeededSource(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, first.Intn(10), second.Intn(10))
	}
}

func TestIntnStaysInBounds(t *testing.T) {
	source := rng.NewRandomSource()

	for i := 0; i < 1000; i++ {
		n := source.Intn(4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
	}
}

func TestSourceIsSafeForConcurrentUse(t *testing.T) {
	source := rng.NewSeededSource(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = source.Intn(7)
			}
		}()
	}
	wg.Wait()
}
