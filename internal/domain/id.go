package domain

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a board, list or task. Zero is never allocated.
type ID uint64

// String renders the id in base 10.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether the id was allocated.
func (id ID) Valid() bool {
	return id != 0
}

// Sequence allocates ids for every entity kind from one monotonic counter, so a
// board, a list and a task can never share an id.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence returns a sequence whose first allocation is start (or 1 when start is 0).
func NewSequence(start ID) *Sequence {
	s := &Sequence{}
	if start > 0 {
		s.last.Store(uint64(start) - 1)
	}
	return s
}

// Next returns the next id.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}

// Peek returns the id the next call to Next will return.
func (s *Sequence) Peek() ID {
	return ID(s.last.Load() + 1)
}
