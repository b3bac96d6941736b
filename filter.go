package petal

// Filter is a non-thread-safe bloom filter over a fixed-length bit array.
// It is the exclusive-mutation building block: Set and Reset require that
// the caller holds unique access, Test requires that no mutation is in
// flight. Wrap it in LockedFilter, or use AtomicFilter, for shared access.
type Filter struct {
	bits   []bool // one cell per bit
	size   uint64
	k      uint64
	hasher IndexHasher
}

// New creates a filter with a bit array of size cells, all unset, probing
// numHashes positions per item with the default DigestHasher.
//
// size must be greater than zero. numHashes == 0 is accepted: such a filter
// checks no positions and every Test vacuously returns true.
func New(size, numHashes uint64) (*Filter, error) {
	return NewWithHasher(size, numHashes, DigestHasher{})
}

// NewWithHasher is New with an explicit hashing strategy.
func NewWithHasher(size, numHashes uint64, hasher IndexHasher) (*Filter, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	return &Filter{
		bits:   make([]bool, size),
		size:   size,
		k:      numHashes,
		hasher: hasher,
	}, nil
}

// Set records item by setting each of its k bit positions. The caller must
// hold exclusive access.
func (f *Filter) Set(item []byte) {
	for i := uint64(0); i < f.k; i++ {
		f.bits[f.hasher.Index(item, i, f.size)] = true
	}
}

// Test reports whether item might have been recorded. A false result is
// definitive; a true result may be a false positive. Read-only: safe to
// call from multiple goroutines as long as no Set or Reset is in flight.
func (f *Filter) Test(item []byte) bool {
	for i := uint64(0); i < f.k; i++ {
		if !f.bits[f.hasher.Index(item, i, f.size)] {
			return false
		}
	}
	return true
}

// Reset returns every bit to zero. The caller must hold exclusive access.
func (f *Filter) Reset() {
	clear(f.bits)
}

// Size returns the bit array length.
func (f *Filter) Size() uint64 {
	return f.size
}

// K returns the number of positions probed per item.
func (f *Filter) K() uint64 {
	return f.k
}

// FillRatio returns the proportion of bits currently set.
func (f *Filter) FillRatio() float64 {
	var set uint64
	for _, b := range f.bits {
		if b {
			set++
		}
	}
	return float64(set) / float64(f.size)
}
