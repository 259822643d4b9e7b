package vssetup

// Apartment is a single-threaded COM apartment bound to the calling
// goroutine's OS thread. Objects created inside it must be used and closed
// from the same goroutine, before the apartment is closed.
type Apartment struct {
	closed bool
	uninit func()
}

// Close leaves the apartment. Calling Close more than once is safe.
func (a *Apartment) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.closed = true
	if a.uninit != nil {
		a.uninit()
	}
	return nil
}
