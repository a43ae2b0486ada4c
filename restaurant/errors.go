package restaurant

import "errors"

var (
	// ErrClosed is returned when restaurant has been closed.
	ErrClosed = errors.New("restaurant closed")

	// ErrInvalidConfig is returned by New when options describe
	// restaurant which can not serve anybody.
	ErrInvalidConfig = errors.New("invalid restaurant configuration")

	// ErrWaiterNotCalled is returned when work is given to waiter
	// which was not acquired first.
	ErrWaiterNotCalled = errors.New("waiter was not called")

	// ErrAlreadyServed is returned when customer is served second time.
	ErrAlreadyServed = errors.New("customer already served")
)
