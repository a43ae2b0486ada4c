package restaurant

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ixilminiussi/multithreading-learning/actor"
)

// WaiterState is state of Waiter. Waiter is available only while Free.
type WaiterState uint8

const (
	WaiterFree      WaiterState = iota // idle, can be acquired
	WaiterCalled                       // acquired, waiting to be given work
	WaiterToKitchen                    // carrying order to kitchen
	WaiterToClient                     // carrying meal to customer
)

func (s WaiterState) String() string {
	switch s {
	case WaiterFree:
		return "FREE"
	case WaiterCalled:
		return "CALLED"
	case WaiterToKitchen:
		return "TO_KITCHEN"
	case WaiterToClient:
		return "TO_CLIENT"
	}

	return fmt.Sprintf("WaiterState(%d)", uint8(s))
}

// Waiter carries orders to the kitchen and prepared meals to customers.
type Waiter struct {
	ID uint64

	r   *Restaurant
	log *logrus.Entry

	// inboxC holds the single meal waiter is carrying.
	inboxC chan delivery
}

type delivery struct {
	meal Meal
	to   WaiterState
}

func newWaiter(r *Restaurant, id uint64) *Waiter {
	return &Waiter{
		ID:     id,
		r:      r,
		log:    r.roleLogger(RoleWaiter, id),
		inboxC: make(chan delivery, 1),
	}
}

// State returns current state of waiter.
func (w *Waiter) State() WaiterState {
	return w.r.pool.state(w)
}

// GiveOrder is called by Customer who acquired this waiter. Waiter will
// take the order to the kitchen.
func (w *Waiter) GiveOrder(meal Meal) error {
	if err := w.r.pool.transition(w, WaiterCalled, WaiterToKitchen); err != nil {
		return fmt.Errorf("give order: %w", err)
	}

	w.log.Infof("received meal order from customer %d : %v", meal.customerID(), meal)
	w.inboxC <- delivery{meal: meal, to: WaiterToKitchen}

	return nil
}

// HandOver is called by Chief who acquired this waiter. Waiter will
// bring prepared meal to the customer who ordered it.
func (w *Waiter) HandOver(meal Meal) error {
	if err := w.r.pool.transition(w, WaiterCalled, WaiterToClient); err != nil {
		return fmt.Errorf("hand over: %w", err)
	}

	w.log.Infof("received prepared meal from chief to customer %d : %v", meal.customerID(), meal)
	w.inboxC <- delivery{meal: meal, to: WaiterToClient}

	return nil
}

func (w *Waiter) DoWork(c actor.Context) actor.WorkerStatus {
	select {
	case <-c.Done():
		return actor.WorkerEnd

	case <-w.r.closedC:
		return actor.WorkerEnd

	case d := <-w.inboxC:
		switch d.to {
		case WaiterToKitchen:
			w.toKitchen(c, d.meal)
		case WaiterToClient:
			w.toClient(d.meal)
		case WaiterFree, WaiterCalled:
			w.log.Errorf("can not deliver meal %v while %v", d.meal, d.to)
		}

		if err := w.r.pool.transition(w, d.to, WaiterFree); err != nil {
			w.log.WithError(err).Error("could not become free")
		}

		return actor.WorkerContinue
	}
}

func (w *Waiter) toKitchen(c actor.Context, meal Meal) {
	time.Sleep(w.r.options.Timings.Carry)

	w.r.observe(StageQueued, meal, RoleWaiter, w.ID)

	if err := w.r.kitchen.Send(c, meal); err != nil {
		w.log.WithError(err).Errorf("could not add meal %v to kitchen queue", meal)
		return
	}

	w.log.Infof("added meal %v to kitchen queue", meal)
}

func (w *Waiter) toClient(meal Meal) {
	w.log.Infof("bringing meal to customer %d...", meal.customerID())

	time.Sleep(w.r.options.Timings.Carry)

	if err := meal.Customer.Serve(meal); err != nil {
		w.log.WithError(err).Errorf("could not serve customer %d", meal.customerID())
	}
}

func (w *Waiter) OnStart(actor.Context) {
	w.log.Debug("starts shift")
}

func (w *Waiter) OnStop() {
	w.log.Debug("ends shift")
}
