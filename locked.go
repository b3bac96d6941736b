package petal

import "sync"

// LockedFilter is a thread-safe bloom filter serializing access to an inner
// Filter with a reader/writer lock: many concurrent Tests, or one Set/Reset,
// never both. Set calls are fully ordered against each other and against
// every Test, so any Test that begins after a Set released the write lock
// observes the inserted element.
type LockedFilter struct {
	mu       sync.RWMutex
	inner    *Filter
	poisoned bool // a Set panicked mid-update; guarded by mu
}

// NewLocked creates a locked filter with the default DigestHasher. See New
// for parameter constraints.
func NewLocked(size, numHashes uint64) (*LockedFilter, error) {
	return NewLockedWithHasher(size, numHashes, DigestHasher{})
}

// NewLockedWithHasher is NewLocked with an explicit hashing strategy.
func NewLockedWithHasher(size, numHashes uint64, hasher IndexHasher) (*LockedFilter, error) {
	inner, err := NewWithHasher(size, numHashes, hasher)
	if err != nil {
		return nil, err
	}
	return &LockedFilter{inner: inner}, nil
}

// Set records item under the write lock. It returns ErrPoisoned if a
// previous Set panicked while holding the lock (the realistic vector is a
// panicking custom IndexHasher), since the bit array may then hold a partial
// insertion. If the inner update panics, the filter is marked poisoned
// before the panic propagates; the lock itself is released on every path.
func (f *LockedFilter) Set(item []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.poisoned {
		return ErrPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			f.poisoned = true
			panic(r)
		}
	}()
	f.inner.Set(item)
	return nil
}

// Test reports whether item might have been recorded, under the read lock.
//
// Test reads through a poisoned filter rather than failing: bits only ever
// go from unset to set outside Reset, so the worst a torn insertion can
// cause is a false negative for the torn element itself. Callers that need
// strictness can check Poisoned.
func (f *LockedFilter) Test(item []byte) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.inner.Test(item)
}

// Reset returns every bit to zero under the write lock and clears the
// poisoned state: an all-false array is a known-good starting point
// regardless of what a panicked writer left behind.
func (f *LockedFilter) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inner.Reset()
	f.poisoned = false
	return nil
}

// Poisoned reports whether a previous Set panicked mid-update.
func (f *LockedFilter) Poisoned() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.poisoned
}

// Size returns the bit array length.
func (f *LockedFilter) Size() uint64 {
	return f.inner.Size()
}

// K returns the number of positions probed per item.
func (f *LockedFilter) K() uint64 {
	return f.inner.K()
}

// FillRatio returns the proportion of bits currently set, under the read
// lock.
func (f *LockedFilter) FillRatio() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.inner.FillRatio()
}
