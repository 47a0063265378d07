package dataset

import "sync/atomic"

// Store owns the active snapshot. Reload builds a new snapshot and swaps a
// single pointer, so queries in flight keep reading the snapshot they
// started with and no locking is needed on the read path.
type Store struct {
	loader *Loader
	snap   atomic.Pointer[Snapshot]
}

// NewStore creates a store serving an empty snapshot until the first Reload
func NewStore(loader *Loader) *Store {
	s := &Store{loader: loader}
	s.snap.Store(NewSnapshot())
	return s
}

// Snapshot returns the currently active snapshot
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Reload rebuilds the snapshot from the archive. On failure the previous
// snapshot stays active and is returned alongside the error.
func (s *Store) Reload() (*Snapshot, error) {
	snap, err := s.loader.Load()
	if err != nil {
		return s.snap.Load(), err
	}
	s.snap.Store(snap)
	return snap, nil
}
