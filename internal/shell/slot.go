package shell

// Slot holds at most one value for the lifetime of the process. It does not
// own the value: the toolkit keeps the window alive, the slot only remembers
// which one is the main window.
type Slot[T any] struct {
	value T
	set   bool
}

// Set panics if a value is already stored, since that means a second main
// window was built.
func (s *Slot[T]) Set(value T) {
	if s.set {
		panic("shell: window already set")
	}

	s.value = value
	s.set = true
}

func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}
