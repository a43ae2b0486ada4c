package actor

import "sync"

// Signal broadcasts wakeups to any number of goroutines. Zero value is
// ready to use.
//
// Waiters must obtain C() while holding the same lock that guards the state
// they are waiting on, and Notify must be called after that state changed.
// This way no wakeup is ever lost.
type Signal struct {
	lock sync.Mutex
	c    chan struct{}
}

// C returns channel which will be closed on next Notify.
func (s *Signal) C() <-chan struct{} {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.c == nil {
		s.c = make(chan struct{})
	}

	return s.c
}

// Notify wakes every goroutine waiting on previously obtained C().
func (s *Signal) Notify() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.c != nil {
		close(s.c)
		s.c = nil
	}
}
