package actor

// OptOnStart adds function to Actor which will be executed
// before first worker's iteration.
// If Worker implements StartableWorker interface then function
// will be called after calling respective method on this interface.
// This functions is executed in actor's goroutine.
func OptOnStart(f func(Context)) Option {
	return func(o *options) {
		o.Actor.OnStartFunc = f
	}
}

// OptOnStop adds function to Actor which will be executed
// after last worker's iteration.
// If Worker implements StoppableWorker interface then function
// will be called after calling respective method on this interface.
// This functions is executed in actor's goroutine.
func OptOnStop(f func()) Option {
	return func(o *options) {
		o.Actor.OnStopFunc = f
	}
}

// OptMinCapacity sets the base capacity of Mailbox queue. Queue will
// never shrink below this capacity.
func OptMinCapacity(minCapacity int) MailboxOption {
	return func(o *options) {
		o.Mailbox.MinCapacity = minCapacity
	}
}

type (
	option func(o *options)

	Option        option
	MailboxOption option
)

type options struct {
	Actor   optionsActor
	Mailbox optionsMailbox
}

type optionsActor struct {
	OnStartFunc func(Context)
	OnStopFunc  func()
}

type optionsMailbox struct {
	MinCapacity int
}

func newOptions[T ~func(o *options)](opts []T) options {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	return *o
}
