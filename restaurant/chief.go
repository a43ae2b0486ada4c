package restaurant

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ixilminiussi/multithreading-learning/actor"
)

// Chief finishes meals prepared by cooks and sends them out with waiters.
type Chief struct {
	r   *Restaurant
	log *logrus.Entry

	// queue is fed by every cook and drained only by chief.
	queue actor.Mailbox[Meal]
}

func newChief(r *Restaurant) *Chief {
	return &Chief{
		r:     r,
		log:   r.roleLogger(RoleChief, 0),
		queue: actor.NewMailbox[Meal](actor.OptMinCapacity(r.options.Customers)),
	}
}

func (ch *Chief) DoWork(c actor.Context) actor.WorkerStatus {
	meal, err := ch.queue.Receive(c)
	if err != nil {
		if !errors.Is(err, actor.ErrMailboxClosed) && !errors.Is(err, actor.ErrStopped) {
			ch.log.WithError(err).Error("could not take meal from chief queue")
		}

		return actor.WorkerEnd
	}

	ch.mix(meal)

	w, err := ch.r.AcquireWaiter(c)
	if err != nil {
		ch.log.WithError(err).Errorf("no waiter to hand over meal %v", meal)
		return actor.WorkerEnd
	}

	ch.log.Infof("handed over meal %v to waiter %d", meal, w.ID)
	ch.r.observe(StageHandedOver, meal, RoleChief, 0)

	if err := w.HandOver(meal); err != nil {
		ch.log.WithError(err).Errorf("could not hand over meal %v", meal)
	}

	return actor.WorkerContinue
}

func (ch *Chief) mix(meal Meal) {
	ch.log.Infof("%v mixing...", meal)

	time.Sleep(ch.r.options.Timings.Mix)

	ch.log.Infof("%v mixed!", meal)
	ch.r.observe(StageMixed, meal, RoleChief, 0)
}
