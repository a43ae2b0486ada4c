package restaurant

import (
	"fmt"
	"sync"

	"github.com/ixilminiussi/multithreading-learning/actor"
)

// waiterPool owns state of every waiter. State and available count are
// guarded by the same lock, so count always equals number of free waiters
// and one waiter can never be claimed twice.
type waiterPool struct {
	lock      sync.Mutex
	waiters   []*Waiter
	states    map[*Waiter]WaiterState
	available int
	closed    bool

	// freed is notified whenever waiter becomes free or pool is closed.
	freed actor.Signal
}

func newWaiterPool() *waiterPool {
	return &waiterPool{
		states: make(map[*Waiter]WaiterState),
	}
}

func (p *waiterPool) add(w *Waiter) {
	p.lock.Lock()
	p.waiters = append(p.waiters, w)
	p.states[w] = WaiterFree
	p.available++
	p.lock.Unlock()

	p.freed.Notify()
}

// acquire blocks until some waiter is free, then claims first free waiter
// in order they were added.
func (p *waiterPool) acquire(ctx actor.Context) (*Waiter, error) {
	for {
		p.lock.Lock()

		if p.closed {
			p.lock.Unlock()
			return nil, ErrClosed
		}

		for _, w := range p.waiters {
			if p.states[w] == WaiterFree {
				p.states[w] = WaiterCalled
				p.available--
				p.lock.Unlock()

				return w, nil
			}
		}

		freedC := p.freed.C()
		p.lock.Unlock()

		select {
		case <-freedC:
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire waiter: %w", ctx.Err())
		}
	}
}

// transition moves waiter from one state to another. It fails if waiter
// is not in expected state.
func (p *waiterPool) transition(w *Waiter, from, to WaiterState) error {
	p.lock.Lock()

	if state := p.states[w]; state != from {
		p.lock.Unlock()
		return fmt.Errorf("waiter %d is %v, expected %v: %w", w.ID, state, from, ErrWaiterNotCalled)
	}

	p.states[w] = to

	if from == WaiterFree {
		p.available--
	}

	if to == WaiterFree {
		p.available++
	}

	p.lock.Unlock()

	if to == WaiterFree {
		p.freed.Notify()
	}

	return nil
}

func (p *waiterPool) state(w *Waiter) WaiterState {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.states[w]
}

func (p *waiterPool) availableCount() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.available
}

// idle reports whether every waiter is free.
func (p *waiterPool) idle() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.available == len(p.waiters)
}

// consistent reports whether available count matches number of free waiters.
func (p *waiterPool) consistent() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	free := 0

	for _, state := range p.states {
		if state == WaiterFree {
			free++
		}
	}

	return free == p.available
}

// changed returns channel closed on next waiter release.
func (p *waiterPool) changed() <-chan struct{} {
	return p.freed.C()
}

func (p *waiterPool) close() {
	p.lock.Lock()
	p.closed = true
	p.lock.Unlock()

	p.freed.Notify()
}
