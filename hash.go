package petal

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// IndexHasher derives bit positions for filter items. Index returns the
// position for hash number i, in [0, size). Implementations must be
// deterministic for a given (item, i, size) and safe for concurrent use.
//
// This is the extension point for alternative hashing strategies; the
// filters default to DigestHasher.
type IndexHasher interface {
	Index(item []byte, i, size uint64) uint64
}

// DigestHasher simulates k independent hash functions with a single SHA-256
// digest and domain separation: each hash number salts the input, so
// distinct i values produce near-independent index distributions without k
// distinct hash implementations.
type DigestHasher struct{}

// Index computes SHA-256(item || LE64(i)) and reduces the first eight bytes,
// read as a little-endian uint64, modulo size.
func (DigestHasher) Index(item []byte, i, size uint64) uint64 {
	var salt [8]byte
	binary.LittleEndian.PutUint64(salt[:], i)

	h := sha256.New()
	h.Write(item)
	h.Write(salt[:])

	var sum [sha256.Size]byte
	digest := h.Sum(sum[:0])

	return binary.LittleEndian.Uint64(digest[:8]) % size
}

// XXH3Hasher derives positions from seeded xxh3 hashes. Much faster than
// DigestHasher, with no collision-resistance guarantee against adversarial
// items.
type XXH3Hasher struct{}

// Index returns xxh3(item) seeded with the hash number, reduced modulo size.
func (XXH3Hasher) Index(item []byte, i, size uint64) uint64 {
	return xxh3.HashSeed(item, i) % size
}

// Murmur3Hasher derives positions from seeded murmur3 hashes.
type Murmur3Hasher struct{}

// Index returns murmur3(item) seeded with the hash number, reduced modulo
// size. Murmur3 seeds are 32-bit; hash numbers above 2^32 wrap, which is
// harmless since practical k values are tiny.
func (Murmur3Hasher) Index(item []byte, i, size uint64) uint64 {
	return murmur3.Sum64WithSeed(item, uint32(i)) % size
}
