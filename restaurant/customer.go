package restaurant

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ixilminiussi/multithreading-learning/actor"
)

type customerPhase uint8

const (
	phaseOrdering customerPhase = iota
	phaseWaiting
	phaseEating
	phaseLeaving
)

// Customer orders one meal, waits until it is served, eats it and leaves.
type Customer struct {
	ID uint64

	r   *Restaurant
	log *logrus.Entry

	phase   customerPhase
	served  atomic.Bool
	meal    atomic.Pointer[Meal]
	servedC chan Meal
}

func newCustomer(r *Restaurant, id uint64) *Customer {
	return &Customer{
		ID:      id,
		r:       r,
		log:     r.roleLogger(RoleCustomer, id),
		servedC: make(chan Meal, 1),
	}
}

// IsServed reports whether waiter has brought meal to this customer.
func (c *Customer) IsServed() bool {
	return c.served.Load()
}

// Meal returns meal customer was served with.
func (c *Customer) Meal() (Meal, bool) {
	if m := c.meal.Load(); m != nil {
		return *m, true
	}

	return Meal{}, false
}

// Serve is called by Waiter bringing prepared meal. It is safe to call
// from any goroutine, but customer can be served only once.
func (c *Customer) Serve(meal Meal) error {
	if !c.served.CompareAndSwap(false, true) {
		return fmt.Errorf("customer %d: %w", c.ID, ErrAlreadyServed)
	}

	c.meal.Store(&meal)
	c.log.Infof("served %v", meal)
	c.r.observe(StageServed, meal, RoleCustomer, c.ID)

	c.servedC <- meal

	return nil
}

func (c *Customer) DoWork(ctx actor.Context) actor.WorkerStatus {
	switch c.phase {
	case phaseOrdering:
		if err := c.order(ctx); err != nil {
			c.log.WithError(err).Warn("could not order")
			c.exit()

			return actor.WorkerEnd
		}

		c.phase = phaseWaiting

	case phaseWaiting:
		select {
		case <-c.servedC:
			c.phase = phaseEating
		case <-ctx.Done():
			return actor.WorkerEnd
		case <-c.r.closedC:
			return actor.WorkerEnd
		}

	case phaseEating:
		c.eat()
		c.phase = phaseLeaving

	case phaseLeaving:
		c.exit()
		return actor.WorkerEnd
	}

	return actor.WorkerContinue
}

func (c *Customer) order(ctx actor.Context) error {
	meal := Meal{
		Ingredients: c.r.pickIngredients(),
		Customer:    c,
	}

	c.log.Info("waiting to order")

	w, err := c.r.AcquireWaiter(ctx)
	if err != nil {
		return err
	}

	c.log.Infof("ordered %v from waiter %d", meal, w.ID)
	c.r.observe(StageOrdered, meal, RoleCustomer, c.ID)

	return w.GiveOrder(meal)
}

func (c *Customer) eat() {
	meal, _ := c.Meal()
	c.log.Infof("eating meal %v", meal)

	time.Sleep(c.r.options.Timings.Eat)

	c.r.observe(StageEaten, meal, RoleCustomer, c.ID)
}

func (c *Customer) exit() {
	meal, served := c.Meal()
	if served {
		c.log.Info("leaves restaurant happily")
	} else {
		c.log.Warn("leaves restaurant hungry")
	}

	c.r.observe(StageExited, meal, RoleCustomer, c.ID)
	c.r.removeCustomer(c)
}
