package petal

import "sync/atomic"

// AtomicFilter is a lock-free thread-safe bloom filter. Every bit is an
// independently atomic cell, so Set and Test never block and complete in
// time proportional to the number of hash functions.
//
// There is no linearization point across the k bits of one insertion: a
// Test racing a Set for the same element may observe some but not all of
// its bits and correctly return false until the writer's last store lands.
// Once that Set call has returned, every subsequent Test observes the
// element. Bit stores are idempotent and monotone (true never reverts
// outside Reset), so concurrent writers cannot corrupt each other.
//
// Cells are stored one per atomic.Bool rather than packed into words. That
// costs eight times the memory of a packed bitset but makes every store a
// plain atomic write, with no read-modify-write contention between items
// that share a word.
type AtomicFilter struct {
	bits   []atomic.Bool
	size   uint64
	k      uint64
	hasher IndexHasher
}

// NewAtomic creates a lock-free filter with the default DigestHasher. See
// New for parameter constraints.
func NewAtomic(size, numHashes uint64) (*AtomicFilter, error) {
	return NewAtomicWithHasher(size, numHashes, DigestHasher{})
}

// NewAtomicWithHasher is NewAtomic with an explicit hashing strategy.
func NewAtomicWithHasher(size, numHashes uint64, hasher IndexHasher) (*AtomicFilter, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	return &AtomicFilter{
		bits:   make([]atomic.Bool, size),
		size:   size,
		k:      numHashes,
		hasher: hasher,
	}, nil
}

// Set records item by atomically setting each of its k bit positions. The
// error is always nil; it exists to satisfy Store.
func (f *AtomicFilter) Set(item []byte) error {
	for i := uint64(0); i < f.k; i++ {
		f.bits[f.hasher.Index(item, i, f.size)].Store(true)
	}
	return nil
}

// Test reports whether item might have been recorded, loading each position
// atomically and short-circuiting on the first unset bit. Safe to call
// concurrently with Set; see the type documentation for the visibility
// guarantee on in-flight insertions.
func (f *AtomicFilter) Test(item []byte) bool {
	for i := uint64(0); i < f.k; i++ {
		if !f.bits[f.hasher.Index(item, i, f.size)].Load() {
			return false
		}
	}
	return true
}

// Reset atomically stores false into every cell. The error is always nil.
// A Reset racing concurrent Set or Test calls guarantees nothing beyond
// per-bit atomicity: an overlapping insertion may survive partially.
func (f *AtomicFilter) Reset() error {
	for i := range f.bits {
		f.bits[i].Store(false)
	}
	return nil
}

// Size returns the bit array length.
func (f *AtomicFilter) Size() uint64 {
	return f.size
}

// K returns the number of positions probed per item.
func (f *AtomicFilter) K() uint64 {
	return f.k
}

// FillRatio returns the proportion of bits set at the instant each cell is
// loaded. Concurrent mutation makes the result approximate.
func (f *AtomicFilter) FillRatio() float64 {
	var set uint64
	for i := range f.bits {
		if f.bits[i].Load() {
			set++
		}
	}
	return float64(set) / float64(f.size)
}
