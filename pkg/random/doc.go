// Package random buffers floating-point values from an external random
// source and converts them into bounded integers for password assembly.
//
// The Cache is a FIFO queue of floats in [0,1). When empty it requests a
// batch from its Source sized to the number of draws one password needs, so
// a network-backed source is hit once per password rather than once per
// draw. Every batch is checked before use: a source that returns zero values
// or any value outside [0,1] fails the whole batch.
//
// BoundedInt derives an integer in [0,bound) as floor(f*1_000_000) mod
// bound. Whenever bound does not evenly divide 1,000,000 this makes lower
// values very slightly more likely than higher ones; the formula is kept for
// compatibility with existing generators and their test vectors, and the
// bias is documented rather than silently corrected.
package random
