// Package region models each display region as an owned slot with a single writer.
//
// Every request aimed at a region takes a ticket from the slot. Tickets increase
// monotonically per slot, and Paint only accepts a value whose ticket is newer than
// the last painted one, so a slow response can never overwrite a newer one.
package region

// Slot holds the current contents of one display region.
type Slot[T any] struct {
	issued   uint64
	painted  uint64
	resolved uint64
	loaded   bool
	value    T
}

// Request issues the next ticket for this region.
func (s *Slot[T]) Request() uint64 {
	s.issued++
	return s.issued
}

// Paint replaces the region contents when ticket is newer than the last painted
// ticket. It reports whether the value was applied.
func (s *Slot[T]) Paint(ticket uint64, value T) bool {
	s.resolve(ticket)
	if ticket == 0 || ticket <= s.painted {
		return false
	}
	s.painted = ticket
	s.value = value
	s.loaded = true
	return true
}

// Fail records that the request behind ticket finished without data.
// The region keeps its prior contents.
func (s *Slot[T]) Fail(ticket uint64) {
	s.resolve(ticket)
}

// Value returns the last painted contents.
func (s *Slot[T]) Value() T {
	return s.value
}

// Loaded reports whether anything has been painted yet.
func (s *Slot[T]) Loaded() bool {
	return s.loaded
}

// Pending reports whether the newest issued request is still outstanding.
func (s *Slot[T]) Pending() bool {
	return s.issued > s.resolved
}

// Stale reports whether ticket has been superseded by a later request.
func (s *Slot[T]) Stale(ticket uint64) bool {
	return ticket < s.issued
}

func (s *Slot[T]) resolve(ticket uint64) {
	if ticket > s.resolved {
		s.resolved = ticket
	}
}
