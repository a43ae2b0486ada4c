package restaurant

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ixilminiussi/multithreading-learning/actor"
)

// Cook takes orders from kitchen queue and prepares them for chief.
type Cook struct {
	ID uint64

	r   *Restaurant
	log *logrus.Entry
}

func newCook(r *Restaurant, id uint64) *Cook {
	return &Cook{
		ID:  id,
		r:   r,
		log: r.roleLogger(RoleCook, id),
	}
}

func (k *Cook) DoWork(c actor.Context) actor.WorkerStatus {
	meal, err := k.r.kitchen.Receive(c)
	if err != nil {
		if !errors.Is(err, actor.ErrMailboxClosed) && !errors.Is(err, actor.ErrStopped) {
			k.log.WithError(err).Error("could not take order from kitchen queue")
		}

		return actor.WorkerEnd
	}

	k.prepare(meal)

	k.r.observe(StagePrepared, meal, RoleCook, k.ID)

	if err := k.r.chief.queue.Send(c, meal); err != nil {
		k.log.WithError(err).Errorf("could not hand meal %v to chief", meal)
		return actor.WorkerEnd
	}

	return actor.WorkerContinue
}

func (k *Cook) prepare(meal Meal) {
	k.log.Infof("preparing meal... %v", meal)

	time.Sleep(k.r.options.Timings.Prepare)

	k.log.Infof("meal %v prepared!", meal)
}
