package actor

import (
	"errors"
	"fmt"
	"sync"
)

// ErrMailboxClosed is returned by Send after Mailbox has been closed, and by
// Receive once closed Mailbox has no more messages.
var ErrMailboxClosed = errors.New("mailbox closed")

// Mailbox is interface for message transport mechanism between Actors.
type Mailbox[T any] interface {
	MailboxSender[T]
	MailboxReceiver[T]

	// Len returns number of messages waiting in Mailbox.
	Len() int

	// Close prevents any further Send. Receivers will still get
	// messages queued before Close.
	Close()
}

// MailboxSender is interface for sender bits of Mailbox.
type MailboxSender[T any] interface {
	// Send message via mailbox.
	Send(ctx Context, msg T) error
}

// MailboxReceiver is interface for receiver bits of Mailbox.
type MailboxReceiver[T any] interface {
	// Receive blocks until message is available, Mailbox is closed
	// and drained, or ctx has ended.
	Receive(ctx Context) (T, error)
}

// NewMailbox returns new local Mailbox implementation.
// Writing to the Mailbox will never block, all messages are going to be queued
// and any number of receivers will get each message exactly once, in FIFO order.
func NewMailbox[T any](opt ...MailboxOption) Mailbox[T] {
	options := newOptions(opt).Mailbox

	return &mailbox[T]{
		queue:   newQueue[T](options.MinCapacity),
		notifyC: make(chan struct{}, 1),
		closedC: make(chan struct{}),
	}
}

type mailbox[T any] struct {
	lock   sync.Mutex
	queue  *queue[T]
	closed bool

	// notifyC holds at most one pending wakeup for one blocked receiver.
	notifyC chan struct{}
	closedC chan struct{}
}

func (m *mailbox[T]) Send(ctx Context, msg T) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Mailbox.Send canceled: %w", err)
	}

	m.lock.Lock()
	if m.closed {
		m.lock.Unlock()
		return ErrMailboxClosed
	}

	m.queue.PushBack(msg)
	m.lock.Unlock()

	m.notify()

	return nil
}

func (m *mailbox[T]) Receive(ctx Context) (T, error) {
	var zero T

	for {
		m.lock.Lock()

		if !m.queue.IsEmpty() {
			msg := m.queue.PopFront()
			more := !m.queue.IsEmpty()
			m.lock.Unlock()

			// other receivers may be blocked while messages remain
			if more {
				m.notify()
			}

			return msg, nil
		}

		closed := m.closed
		m.lock.Unlock()

		if closed {
			return zero, ErrMailboxClosed
		}

		select {
		case <-m.notifyC:
		case <-m.closedC:
		case <-ctx.Done():
			return zero, fmt.Errorf("Mailbox.Receive canceled: %w", ctx.Err())
		}
	}
}

func (m *mailbox[T]) Len() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.queue.Size()
}

func (m *mailbox[T]) Close() {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.closed {
		return
	}

	m.closed = true
	close(m.closedC)
}

func (m *mailbox[T]) notify() {
	select {
	case m.notifyC <- struct{}{}:
	default:
	}
}
