package random

import (
	"fmt"
	"math"
)

// Source supplies batches of random floats in [0,1]. A Draw may return more
// or fewer values than requested, but never zero. Implementations may block
// (e.g. a network-backed source); the cache treats Draw as an opaque
// synchronous call.
type Source interface {
	Draw(n int) ([]float64, error)
}

// Cache is a FIFO buffer of random floats owned by a single generator
// instance. It is not safe for concurrent use; the owning generator
// serializes access.
type Cache struct {
	src   Source
	queue []float64
	batch int
}

// NewCache returns an empty cache over src. The batch size defaults to 1
// until SetBatchSize is called.
func NewCache(src Source) *Cache {
	return &Cache{src: src, batch: 1}
}

// SetBatchSize sets how many values are requested from the source per
// refill. The owning generator sizes this to the number of draws one
// password consumes.
func (c *Cache) SetBatchSize(n int) {
	if n > 0 {
		c.batch = n
	}
}

// SetSource replaces the random source and clears any buffered values.
func (c *Cache) SetSource(src Source) {
	c.src = src
	c.queue = nil
}

// Clear drops all buffered values.
func (c *Cache) Clear() {
	c.queue = nil
}

// Len returns the number of buffered values.
func (c *Cache) Len() int {
	return len(c.queue)
}

// Next pops the oldest buffered value, refilling from the source first if
// the buffer is empty. Values are consumed strictly in the order the source
// returned them.
func (c *Cache) Next() (float64, error) {
	if len(c.queue) == 0 {
		if err := c.refill(); err != nil {
			return 0, err
		}
	}
	v := c.queue[0]
	c.queue = c.queue[1:]
	return v, nil
}

func (c *Cache) refill() error {
	if c.src == nil {
		return ErrNoSource
	}
	values, err := c.src.Draw(c.batch)
	if err != nil {
		return fmt.Errorf("random source draw failed: %w", err)
	}
	if len(values) == 0 {
		return ErrNoValues
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %v", ErrOutOfRange, v)
		}
	}
	c.queue = append(c.queue, values...)
	return nil
}

// BoundedInt converts a random float in [0,1] into an integer in [0,bound)
// as floor(f*1_000_000) mod bound. Bounds that do not evenly divide
// 1,000,000 bias the result very slightly toward lower values; see the
// package documentation.
func BoundedInt(f float64, bound int) int {
	if bound <= 0 {
		return 0
	}
	return int(math.Floor(f*1_000_000)) % bound
}
