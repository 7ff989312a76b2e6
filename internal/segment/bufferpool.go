package segment

import "sync"

// bufferPool reuses sieve byte slices across segments within a single
// Processor, matching spec.md §5's "the caller owns the sieve buffer; the
// core borrows it mutably for the duration of a single call" -- here the
// Processor is that caller, and it is also the buffer's one owner, so
// pooling is safe without any cross-processor sharing.
type bufferPool struct {
	pool sync.Pool
}

func (b *bufferPool) get(size int) []byte {
	v := b.pool.Get()
	if v == nil {
		return make([]byte, size)
	}
	buf := v.([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

func (b *bufferPool) put(buf []byte) {
	b.pool.Put(buf)
}
