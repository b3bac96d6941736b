package petal

import "errors"

var (
	// ErrZeroSize is returned when a filter is constructed with a
	// zero-length bit array.
	ErrZeroSize = errors.New("petal: filter size must be greater than zero")

	// ErrPoisoned is returned by LockedFilter.Set after a previous Set
	// panicked while holding the write lock, leaving a possibly partial
	// insertion behind.
	ErrPoisoned = errors.New("petal: filter poisoned by a panicked writer")
)

// Store is the contract shared by the concurrent filter variants. Both
// LockedFilter and AtomicFilter implement it, so callers can trade the
// strictly ordered locked store for the lock-free one (or back) without
// code changes.
//
// Set records an item. Test reports whether an item might have been
// recorded; false means definitely not. Reset returns every bit to zero.
// Only LockedFilter can actually fail: AtomicFilter's error results are
// always nil.
type Store interface {
	Set(item []byte) error
	Test(item []byte) bool
	Reset() error
}

var (
	_ Store = (*LockedFilter)(nil)
	_ Store = (*AtomicFilter)(nil)
)
