package scene

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"trskit/internal/mathutil"
	"trskit/internal/trs"
)

// MatrixCache is a concurrency-safe cache of local T·R·S matrices keyed by the
// bit pattern of the transform.
type MatrixCache[T mathutil.Float] struct {
	mu    sync.RWMutex
	items map[uint64]cacheEntry[T]

	hits   atomic.Uint64
	misses atomic.Uint64
}

type cacheEntry[T mathutil.Float] struct {
	key trs.Transform[T] // guards against hash collisions
	m   mathutil.Matrix4[T]
}

// NewMatrixCache creates an empty cache.
func NewMatrixCache[T mathutil.Float]() *MatrixCache[T] {
	return &MatrixCache[T]{items: make(map[uint64]cacheEntry[T])}
}

// rawBytes views the transform as its in-memory bytes.
func rawBytes[T mathutil.Float](x *trs.Transform[T]) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(x)), unsafe.Sizeof(*x))
}

func sameBits[T mathutil.Float](a, b *trs.Transform[T]) bool {
	return string(rawBytes(a)) == string(rawBytes(b))
}

// Matrix returns x.Matrix(), computing it at most once per distinct bit
// pattern.
func (c *MatrixCache[T]) Matrix(x trs.Transform[T]) mathutil.Matrix4[T] {
	h := xxhash.Sum64(rawBytes(&x))

	// Fast path: read lock
	c.mu.RLock()
	if e, ok := c.items[h]; ok && sameBits(&e.key, &x) {
		c.mu.RUnlock()
		c.hits.Add(1)
		return e.m
	}
	c.mu.RUnlock()

	m := x.Matrix()
	c.misses.Add(1)

	// Write lock with double-check; a colliding entry is left in place.
	c.mu.Lock()
	if _, ok := c.items[h]; !ok {
		c.items[h] = cacheEntry[T]{key: x, m: m}
	}
	c.mu.Unlock()

	return m
}

// Len returns the number of cached matrices.
func (c *MatrixCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns the hit and miss counts since creation or the last Reset.
func (c *MatrixCache[T]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset drops every cached matrix.
func (c *MatrixCache[T]) Reset() {
	c.mu.Lock()
	c.items = make(map[uint64]cacheEntry[T])
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}
