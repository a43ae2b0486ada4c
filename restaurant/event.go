package restaurant

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Stage is a step of Meal's way through the restaurant.
type Stage uint8

const (
	StageOrdered    Stage = iota + 1 // customer gave order to waiter
	StageQueued                      // waiter put order in kitchen queue
	StagePrepared                    // cook handed meal to chief
	StageMixed                       // chief finished meal
	StageHandedOver                  // chief gave meal to waiter
	StageServed                      // waiter served customer
	StageEaten                       // customer ate meal
	StageExited                      // customer left restaurant
)

func (s Stage) String() string {
	switch s {
	case StageOrdered:
		return "ordered"
	case StageQueued:
		return "queued"
	case StagePrepared:
		return "prepared"
	case StageMixed:
		return "mixed"
	case StageHandedOver:
		return "handed over"
	case StageServed:
		return "served"
	case StageEaten:
		return "eaten"
	case StageExited:
		return "exited"
	}

	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// Role names kind of actor working in restaurant.
type Role string

const (
	RoleRestaurant Role = "restaurant"
	RoleCustomer   Role = "customer"
	RoleWaiter     Role = "waiter"
	RoleCook       Role = "cook"
	RoleChief      Role = "chief"
)

// Event is reported to observer every time Meal reaches next Stage.
type Event struct {
	Stage Stage
	Meal  Meal
	Role  Role
	ID    uint64
}

func (r *Restaurant) observe(stage Stage, meal Meal, role Role, id uint64) {
	if fn := r.options.Observer; fn != nil {
		fn(Event{
			Stage: stage,
			Meal:  meal,
			Role:  role,
			ID:    id,
		})
	}
}

func (r *Restaurant) roleLogger(role Role, id uint64) *logrus.Entry {
	fields := logrus.Fields{"role": role}
	if role != RoleChief && role != RoleRestaurant {
		fields["id"] = id
	}

	return r.options.Logger.WithFields(fields)
}
