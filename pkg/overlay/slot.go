// Package overlay coordinates the mutually exclusive modals of a screen region and
// paints the active one over the base view.
package overlay

// Slot holds the single visible overlay of one screen region. The zero value of T
// means nothing is shown. A second level exists only for pickers opened on top of a
// form: host is the form that regains focus when the picker goes away.
type Slot[T comparable] struct {
	host   T
	active T
}

// Active returns the visible overlay.
func (s *Slot[T]) Active() T {
	return s.active
}

// Host returns the overlay that Back will return to, if any.
func (s *Slot[T]) Host() T {
	return s.host
}

// Is reports whether o is the visible overlay.
func (s *Slot[T]) Is(o T) bool {
	return s.active == o
}

// IsOpen reports whether any overlay is visible.
func (s *Slot[T]) IsOpen() bool {
	var none T
	return s.active != none
}

// Open shows o in place of whatever was visible. The last call wins.
func (s *Slot[T]) Open(o T) {
	var none T
	s.host = none
	s.active = o
}

// Push shows o on top of the visible overlay, remembering it as the host.
func (s *Slot[T]) Push(o T) {
	var none T
	if s.active == none || s.active == o {
		s.Open(o)
		return
	}
	s.host = s.active
	s.active = o
}

// Back returns to the host overlay, or closes the region when there is none. It
// returns the overlay that became visible.
func (s *Slot[T]) Back() T {
	var none T
	s.active = s.host
	s.host = none
	return s.active
}

// Close hides everything in the region and returns what was visible.
func (s *Slot[T]) Close() T {
	var none T
	prev := s.active
	s.host = none
	s.active = none
	return prev
}
