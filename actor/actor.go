package actor

import (
	"sync"
)

// Actor is computational entity that executes Worker in individual goroutine.
type Actor interface {
	// Start spawns new goroutine and begins Worker execution.
	//
	// Execution will last until Stop() method is called or Worker returned
	// status indicating that Worker has ended (there is no more work).
	Start()

	// Stop sends signal to Worker to stop execution. Method will block
	// until Worker finishes.
	Stop()

	// Join blocks until Worker finishes on its own, without sending
	// stop signal. Join returns immediately if Actor was never started.
	Join()
}

// WorkerStatus is returned by Worker's DoWork function indicating if Actor should
// continue executing Worker.
type WorkerStatus int8

const (
	WorkerContinue WorkerStatus = 1
	WorkerEnd      WorkerStatus = 2
)

// Worker is entity which encapsulates Actor's executable logic.
type Worker interface {
	// DoWork function is encapsulating single executable unit of work for this Worker.
	//
	// Context is provided so Worker can listen and respond on stop signal sent from Actor.
	//
	// WorkerStatus is returned indicating if Actor should continue executing this Worker.
	DoWork(c Context) WorkerStatus
}

// StartableWorker defines optional OnStart callback which Actor calls
// in its goroutine before first DoWork iteration.
type StartableWorker interface {
	OnStart(c Context)
}

// StoppableWorker defines optional OnStop callback which Actor calls
// in its goroutine after last DoWork iteration.
type StoppableWorker interface {
	OnStop()
}

// WorkerFunc is signature of Worker's DoWork function.
type WorkerFunc = func(c Context) WorkerStatus

// NewWorker returns basic Worker implementation which delegates
// DoWork to supplied WorkerFunc.
func NewWorker(fn WorkerFunc) Worker {
	return &worker{fn}
}

type worker struct {
	fn WorkerFunc
}

func (w *worker) DoWork(c Context) WorkerStatus {
	return w.fn(c)
}

// New returns new Actor with specified Worker and Options.
func New(w Worker, opt ...Option) Actor {
	return &actor{
		worker:  w,
		options: newOptions(opt).Actor,
	}
}

type actor struct {
	worker  Worker
	options optionsActor

	lock    sync.Mutex
	running bool
	ctx     *context
	endedC  chan struct{}
}

func (a *actor) Start() {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.running {
		return
	}

	a.running = true
	a.ctx = newContext()
	a.endedC = make(chan struct{})

	go a.doWork(a.ctx, a.endedC)
}

func (a *actor) Stop() {
	a.lock.Lock()
	if !a.running {
		a.lock.Unlock()
		return
	}

	ctx, endedC := a.ctx, a.endedC
	a.lock.Unlock()

	ctx.end()
	<-endedC
}

func (a *actor) Join() {
	a.lock.Lock()
	endedC := a.endedC
	a.lock.Unlock()

	if endedC != nil {
		<-endedC
	}
}

// doWork executes Worker of this Actor until
// Actor or Worker has signaled to stop.
func (a *actor) doWork(ctx *context, endedC chan struct{}) {
	a.onStart(ctx)

	for status := WorkerContinue; status == WorkerContinue; {
		status = a.worker.DoWork(ctx)
	}

	ctx.end()

	a.onStop()

	a.lock.Lock()
	a.running = false
	close(endedC)
	a.lock.Unlock()
}

func (a *actor) onStart(ctx Context) {
	if w, ok := a.worker.(StartableWorker); ok {
		w.OnStart(ctx)
	}

	if fn := a.options.OnStartFunc; fn != nil {
		fn(ctx)
	}
}

func (a *actor) onStop() {
	if w, ok := a.worker.(StoppableWorker); ok {
		w.OnStop()
	}

	if fn := a.options.OnStopFunc; fn != nil {
		fn()
	}
}
