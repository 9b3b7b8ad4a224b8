package dft

import (
	"math/bits"
	"sync"

	"github.com/agbru/decicalc/internal/complexnum"
)

// maxPooledClass bounds pooled sequences to 2^20 elements (16 MiB each).
const maxPooledClass = 20

// sequencePools holds scratch sequences by power-of-two size class:
// sequencePools[c] serves sequences of length 1<<c.
var sequencePools [maxPooledClass + 1]sync.Pool

// sizeClass returns the pool index for a power-of-two length, or -1 when the
// length is too large to pool.
func sizeClass(n int) int {
	c := bits.Len(uint(n)) - 1
	if c < 0 || c > maxPooledClass {
		return -1
	}
	return c
}

// acquireSequence returns a zeroed sequence of length n, a power of two.
func acquireSequence(n int) []complexnum.Complex {
	c := sizeClass(n)
	if c < 0 {
		return make([]complexnum.Complex, n)
	}
	if p, ok := sequencePools[c].Get().(*[]complexnum.Complex); ok {
		s := *p
		clear(s)
		return s
	}
	return make([]complexnum.Complex, n)
}

// releaseSequence returns s to its pool. s must not be used afterwards.
func releaseSequence(s []complexnum.Complex) {
	if !isPowerOfTwo(len(s)) {
		return
	}
	c := sizeClass(len(s))
	if c < 0 {
		return
	}
	sequencePools[c].Put(&s)
}
