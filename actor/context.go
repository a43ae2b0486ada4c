package actor

import (
	gocontext "context"
	"errors"
	"sync"
	"time"
)

// Context is provided to Worker so they can listen and respond
// on stop signal sent from Actor.
type Context = gocontext.Context

// ErrStopped is the error returned by Context.Err when the Actor is stopped.
var ErrStopped = errors.New("actor stopped")

//nolint:gochecknoglobals
var (
	contextStarted = newContext()

	contextEnded = func() *context {
		c := newContext()
		c.end()

		return c
	}()
)

// ContextStarted returns Context representing started state for Actor.
// It is typically used in tests for passing to Worker.DoWork() function.
func ContextStarted() Context {
	return contextStarted
}

// ContextEnded returns Context representing ended state for Actor.
// It is typically used in tests for passing to Worker.DoWork() function.
func ContextEnded() Context {
	return contextEnded
}

// context ends exactly once, when its actor is stopped or
// its worker has returned WorkerEnd.
type context struct {
	endOnce sync.Once
	doneC   chan struct{}
}

func newContext() *context {
	return &context{
		doneC: make(chan struct{}),
	}
}

func (c *context) end() {
	c.endOnce.Do(func() { close(c.doneC) })
}

func (c *context) Deadline() (time.Time, bool) {
	return time.Time{}, false
}

func (c *context) Done() <-chan struct{} {
	return c.doneC
}

func (c *context) Err() error {
	select {
	case <-c.doneC:
		return ErrStopped
	default:
		return nil
	}
}

func (*context) Value(any) any {
	return nil
}

func (c *context) String() string {
	return "actor.Context"
}
