// Package petal provides bloom filter implementations on a concurrency
// spectrum, from single-owner to lock-free.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are
// possible, but false negatives are not – if the filter says an element is
// not present, it definitely is not. If it says an element might be present,
// it could be a false positive.
//
// # Variants
//
// Three stores share one hashing scheme and one external contract; they
// differ only in synchronization discipline:
//
// [Filter] is the exclusive-mutation building block. It has no concurrency
// control at all: callers must serialize access themselves, or wrap it in
// one of the concurrent variants below.
//
// [LockedFilter] wraps a Filter behind a sync.RWMutex: many concurrent
// readers or one writer, never both. Operations are linearizable with
// respect to lock acquisition order – any Test that begins after a Set for
// the same element released the write lock observes that element as present.
//
// [AtomicFilter] is lock-free. Every bit is an independently atomic cell, so
// Set and Test never block. There is no linearization point across the k
// bits of one insertion: a Test racing a Set for the same element may return
// false until the writer's last bit lands, and is guaranteed true once that
// Set call has returned. Bit writes are idempotent and monotone (true never
// reverts outside Reset), so write-write races are commutative and safe.
//
// LockedFilter and AtomicFilter both satisfy [Store], so callers can swap
// one for the other without code changes.
//
// # Hashing
//
// All variants derive k bit positions per element through an [IndexHasher].
// The default, [DigestHasher], simulates k independent hash functions with a
// single SHA-256 digest and domain separation: the position for hash number
// i is the first eight bytes of SHA-256(item || LE64(i)), read little-endian
// and reduced modulo the filter size. [XXH3Hasher] and [Murmur3Hasher] are
// faster non-cryptographic strategies using the hash index as a seed.
//
// A filter with numHashes == 0 checks no positions, so every Test vacuously
// returns true. This degenerate configuration is accepted at construction;
// size == 0 is not, and fails with [ErrZeroSize] before any position can be
// computed.
//
// # Memory layout
//
// Bits are stored one per cell ([]bool, or []atomic.Bool in the lock-free
// variant) rather than packed into words. This spends eight times the memory
// of a packed bitset in exchange for per-bit atomic stores with no
// read-modify-write contention on shared words.
//
// # Lock poisoning
//
// A custom IndexHasher that panics mid-Set leaves a partial insertion behind
// the write lock. LockedFilter marks itself poisoned in that case: further
// Set calls fail with [ErrPoisoned], while Test deliberately reads through –
// bits are monotone-true, so the worst outcome of a torn write is a false
// negative for the torn element itself, never a corrupt positive. Reset
// clears the poisoned state along with the bits.
//
// # Sizing
//
// Callers choose size and numHashes for their expected element count and
// target false-positive rate; this package computes no sizing advice.
package petal
