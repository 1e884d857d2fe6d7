package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordpass/pkg/random"
)

// recordingSource hands out a fixed batch and counts calls.
type recordingSource struct {
	batch []float64
	calls int
	asked []int
}

func (s *recordingSource) Draw(n int) ([]float64, error) {
	s.calls++
	s.asked = append(s.asked, n)
	return s.batch, nil
}

func TestCacheNext(t *testing.T) {
	t.Parallel()

	t.Run("consumes values first-in-first-out", func(t *testing.T) {
		src := &recordingSource{batch: []float64{0.1, 0.2, 0.3}}
		cache := random.NewCache(src)
		cache.SetBatchSize(3)

		for _, want := range []float64{0.1, 0.2, 0.3} {
			got, err := cache.Next()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		assert.Equal(t, 1, src.calls)
	})

	t.Run("refills with the configured batch size", func(t *testing.T) {
		src := &recordingSource{batch: []float64{0.5}}
		cache := random.NewCache(src)
		cache.SetBatchSize(9)

		_, err := cache.Next()
		require.NoError(t, err)
		assert.Equal(t, []int{9}, src.asked)

		// The source returned fewer than asked; the next draw refills again.
		_, err = cache.Next()
		require.NoError(t, err)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("empty batch is fatal", func(t *testing.T) {
		cache := random.NewCache(&recordingSource{batch: nil})
		_, err := cache.Next()
		require.ErrorIs(t, err, random.ErrNoValues)
	})

	t.Run("any out-of-range value rejects the whole batch", func(t *testing.T) {
		cache := random.NewCache(&recordingSource{batch: []float64{0.4, 1.5, 0.2}})
		_, err := cache.Next()
		require.ErrorIs(t, err, random.ErrOutOfRange)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("negative values are rejected", func(t *testing.T) {
		cache := random.NewCache(&recordingSource{batch: []float64{-0.1}})
		_, err := cache.Next()
		require.ErrorIs(t, err, random.ErrOutOfRange)
	})

	t.Run("missing source is fatal", func(t *testing.T) {
		cache := random.NewCache(nil)
		_, err := cache.Next()
		require.ErrorIs(t, err, random.ErrNoSource)
	})

	t.Run("replacing the source clears buffered values", func(t *testing.T) {
		cache := random.NewCache(&recordingSource{batch: []float64{0.1, 0.2}})
		cache.SetBatchSize(2)
		_, err := cache.Next()
		require.NoError(t, err)
		require.Equal(t, 1, cache.Len())

		cache.SetSource(&recordingSource{batch: []float64{0.9}})
		assert.Equal(t, 0, cache.Len())

		got, err := cache.Next()
		require.NoError(t, err)
		assert.Equal(t, 0.9, got)
	})
}

func TestBoundedInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		f     float64
		bound int
		want  int
	}{
		{"zero maps to zero", 0.0, 10, 0},
		{"top of range", 0.9999999, 10, 9},
		{"floor then modulo", 0.5, 3, 2}, // floor(500000) mod 3
		{"bound one always zero", 0.75, 1, 0},
		{"small fractions resolve by the millionth", 0.0000035, 10, 3},
		{"non-positive bound yields zero", 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, random.BoundedInt(tt.f, tt.bound))
		})
	}
}
