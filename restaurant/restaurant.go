package restaurant

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ixilminiussi/multithreading-learning/actor"
)

// Restaurant owns every role working in it, the queues between them and
// the waiter pool. Roles find and acquire each other only through it.
type Restaurant struct {
	options options
	log     *logrus.Entry

	randLock sync.Mutex
	rand     *rand.Rand

	customersLock sync.Mutex
	customers     []*Customer
	customerLeft  actor.Signal

	waiters []*Waiter
	chief   *Chief

	// actors are joined in this order on Close
	customerActors actor.Actor
	cookActors     actor.Actor
	waiterActors   actor.Actor
	chiefActor     actor.Actor

	kitchen actor.Mailbox[Meal]
	pool    *waiterPool

	// closeLock serializes Close calls and keeps Initialize from
	// starting actors once shutdown was raised.
	closeLock sync.Mutex
	initOnce  sync.Once
	initErr   error
	started   bool
	closedC   chan struct{}

	nextCustomerID atomic.Uint64
}

// New returns restaurant which is ready to be initialized.
func New(opts ...Option) (*Restaurant, error) {
	o := newOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	r := &Restaurant{
		options: o,
		kitchen: actor.NewMailbox[Meal](actor.OptMinCapacity(o.Customers)),
		pool:    newWaiterPool(),
		closedC: make(chan struct{}),
	}

	r.log = r.roleLogger(RoleRestaurant, 0)
	r.chief = newChief(r)

	if o.Seed != nil {
		r.rand = rand.New(rand.NewPCG(*o.Seed, *o.Seed)) //nolint:gosec // simulation
	}

	return r, nil
}

// Initialize creates every customer, cook and waiter, then starts them all
// together with the chief. Roles do not depend on order in which they start.
// Calling Initialize again is a no-op; on closed restaurant it returns ErrClosed.
func (r *Restaurant) Initialize() error {
	r.initOnce.Do(func() {
		r.closeLock.Lock()
		defer r.closeLock.Unlock()

		if r.isClosed() {
			r.initErr = fmt.Errorf("initialize restaurant: %w", ErrClosed)
			return
		}

		customerActors := make([]actor.Actor, 0, r.options.Customers)
		for range r.options.Customers {
			customerActors = append(customerActors, actor.New(r.addCustomer()))
		}

		cookActors := make([]actor.Actor, 0, r.options.Cooks)
		for i := range r.options.Cooks {
			cookActors = append(cookActors, actor.New(newCook(r, uint64(i))))
		}

		waiterActors := make([]actor.Actor, 0, r.options.Waiters)
		for i := range r.options.Waiters {
			w := newWaiter(r, uint64(i))
			r.waiters = append(r.waiters, w)
			r.pool.add(w)
			waiterActors = append(waiterActors, actor.New(w))
		}

		r.customerActors = actor.Combine(customerActors...)
		r.cookActors = actor.Combine(cookActors...)
		r.waiterActors = actor.Combine(waiterActors...)
		r.chiefActor = actor.New(r.chief)

		r.started = true

		r.customerActors.Start()
		r.cookActors.Start()
		r.waiterActors.Start()
		r.chiefActor.Start()
	})

	return r.initErr
}

// AcquireWaiter blocks until some waiter is free and claims it for caller.
// Claimed waiter is in WaiterCalled state and must be given work with
// GiveOrder or HandOver.
func (r *Restaurant) AcquireWaiter(ctx actor.Context) (*Waiter, error) {
	if r.isClosed() {
		return nil, ErrClosed
	}

	return r.pool.acquire(ctx)
}

// Close waits until every customer has left, both queues are empty and every
// waiter is free. Only then it signals shutdown to all roles and waits for
// customers, cooks, waiters and chief to finish, in that order.
//
// If ctx ends first, Close returns its error and restaurant keeps running.
// Concurrent calls wait for each other; ErrClosed is returned only once
// restaurant has really been closed.
func (r *Restaurant) Close(ctx actor.Context) error {
	r.closeLock.Lock()
	defer r.closeLock.Unlock()

	if r.isClosed() {
		return ErrClosed
	}

	if err := r.waitDrained(ctx); err != nil {
		return fmt.Errorf("close restaurant: %w", err)
	}

	r.log.Info("closing...")

	close(r.closedC)
	r.kitchen.Close()
	r.chief.queue.Close()
	r.pool.close()

	if !r.started {
		return nil
	}

	r.customerActors.Join()
	r.log.Info("customers are gone")

	r.cookActors.Join()
	r.log.Info("cooks have left")

	r.waiterActors.Join()
	r.log.Info("waiters are gone")

	r.chiefActor.Join()
	r.log.Info("chief has left")

	return nil
}

func (r *Restaurant) waitDrained(ctx actor.Context) error {
	ticker := actor.NewTicker(r.options.StatusInterval)
	ticker.Start()

	defer ticker.Stop()

	for {
		// channels are obtained before checking state so that
		// no change between check and wait is missed
		customerLeftC := r.customerLeft.C()
		waiterFreedC := r.pool.changed()

		if r.drained() {
			return nil
		}

		select {
		case <-customerLeftC:
		case <-waiterFreedC:
		case <-ticker.C():
			r.log.WithFields(logrus.Fields{
				"customers":         r.Customers(),
				"available_waiters": r.AvailableWaiters(),
				"kitchen_queue":     r.KitchenQueueLen(),
				"chief_queue":       r.ChiefQueueLen(),
			}).Info("waiting for restaurant to empty")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// drained reports whether restaurant can be closed without
// interrupting any order.
func (r *Restaurant) drained() bool {
	return r.Customers() == 0 &&
		r.KitchenQueueLen() == 0 &&
		r.ChiefQueueLen() == 0 &&
		r.pool.idle()
}

func (r *Restaurant) isClosed() bool {
	select {
	case <-r.closedC:
		return true
	default:
		return false
	}
}

// Customers returns number of customers still in restaurant.
func (r *Restaurant) Customers() int {
	r.customersLock.Lock()
	defer r.customersLock.Unlock()

	return len(r.customers)
}

// AvailableWaiters returns number of free waiters.
func (r *Restaurant) AvailableWaiters() int {
	return r.pool.availableCount()
}

// KitchenQueueLen returns number of orders waiting for cooks.
func (r *Restaurant) KitchenQueueLen() int {
	return r.kitchen.Len()
}

// ChiefQueueLen returns number of meals waiting for chief.
func (r *Restaurant) ChiefQueueLen() int {
	return r.chief.queue.Len()
}

func (r *Restaurant) addCustomer() *Customer {
	c := newCustomer(r, r.nextCustomerID.Add(1)-1)

	r.customersLock.Lock()
	r.customers = append(r.customers, c)
	count := len(r.customers)
	r.customersLock.Unlock()

	r.log.Infof("%d customers now.", count)

	return c
}

func (r *Restaurant) removeCustomer(c *Customer) {
	r.customersLock.Lock()
	r.customers = slices.DeleteFunc(r.customers, func(other *Customer) bool {
		return other == c
	})
	count := len(r.customers)
	r.customersLock.Unlock()

	r.customerLeft.Notify()

	r.log.Infof("%d customers now.", count)
}

// pickIngredients returns first ingredients of shuffled menu, so one meal
// never has the same ingredient twice.
func (r *Restaurant) pickIngredients() [MealSize]Ingredient {
	all := Ingredients()
	swap := func(i, j int) { all[i], all[j] = all[j], all[i] }

	if r.rand != nil {
		r.randLock.Lock()
		r.rand.Shuffle(len(all), swap)
		r.randLock.Unlock()
	} else {
		rand.Shuffle(len(all), swap)
	}

	var picked [MealSize]Ingredient
	copy(picked[:], all)

	return picked
}
