package restaurant

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCustomers = 10
	DefaultCooks     = 4
	DefaultWaiters   = 3

	defaultStatusInterval = time.Second
)

// Timings holds how long every simulated activity takes.
type Timings struct {
	Carry   time.Duration // waiter walking between hall and kitchen
	Prepare time.Duration // cook preparing meal
	Mix     time.Duration // chief mixing meal
	Eat     time.Duration // customer eating meal
}

// DefaultTimings returns Timings used when OptTimings is not supplied.
func DefaultTimings() Timings {
	return Timings{
		Carry:   time.Millisecond * 200,
		Prepare: time.Millisecond * 400,
		Mix:     time.Millisecond * 100,
		Eat:     time.Millisecond * 100,
	}
}

// Option configures Restaurant.
type Option func(o *options)

// OptCustomers sets number of customers created by Initialize.
func OptCustomers(count int) Option {
	return func(o *options) {
		o.Customers = count
	}
}

// OptCooks sets number of cooks working in the kitchen.
func OptCooks(count int) Option {
	return func(o *options) {
		o.Cooks = count
	}
}

// OptWaiters sets number of waiters.
func OptWaiters(count int) Option {
	return func(o *options) {
		o.Waiters = count
	}
}

// OptTimings sets duration of simulated activities.
func OptTimings(t Timings) Option {
	return func(o *options) {
		o.Timings = t
	}
}

// OptLogger sets logger used by every role.
func OptLogger(l *logrus.Logger) Option {
	return func(o *options) {
		o.Logger = l
	}
}

// OptObserver sets function which is called for every Event. Function is
// called from goroutines of roles and must be safe for concurrent use.
func OptObserver(fn func(Event)) Option {
	return func(o *options) {
		o.Observer = fn
	}
}

// OptSeed makes ingredient selection deterministic.
func OptSeed(seed uint64) Option {
	return func(o *options) {
		o.Seed = &seed
	}
}

// OptStatusInterval sets how often Close reports progress while
// it waits for restaurant to drain.
func OptStatusInterval(d time.Duration) Option {
	return func(o *options) {
		o.StatusInterval = d
	}
}

type options struct {
	Customers      int
	Cooks          int
	Waiters        int
	Timings        Timings
	Logger         *logrus.Logger
	Observer       func(Event)
	Seed           *uint64
	StatusInterval time.Duration
}

func newOptions(opts []Option) options {
	o := options{
		Customers:      DefaultCustomers,
		Cooks:          DefaultCooks,
		Waiters:        DefaultWaiters,
		Timings:        DefaultTimings(),
		StatusInterval: defaultStatusInterval,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.Logger == nil {
		o.Logger = NewLogger()
	}

	return o
}

func (o options) validate() error {
	switch {
	case o.Customers < 0:
		return fmt.Errorf("%w: negative customers count %d", ErrInvalidConfig, o.Customers)
	case o.Cooks < 1:
		return fmt.Errorf("%w: at least one cook is needed, got %d", ErrInvalidConfig, o.Cooks)
	case o.Waiters < 1:
		return fmt.Errorf("%w: at least one waiter is needed, got %d", ErrInvalidConfig, o.Waiters)
	case o.StatusInterval <= 0:
		return fmt.Errorf("%w: status interval must be positive", ErrInvalidConfig)
	}

	return nil
}

// NewLogger returns logger writing timestamped lines to stderr.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	return l
}
