package restaurant

// WaitersConsistent reports whether available count equals number of free waiters.
func (r *Restaurant) WaitersConsistent() bool {
	return r.pool.consistent()
}

func (r *Restaurant) ReleaseWaiter(w *Waiter) error {
	return r.pool.transition(w, WaiterCalled, WaiterFree)
}

func (r *Restaurant) Waiters() []*Waiter {
	return r.waiters
}

func (r *Restaurant) NewCustomer() *Customer {
	return newCustomer(r, r.nextCustomerID.Add(1)-1)
}

func (r *Restaurant) PickIngredients() [MealSize]Ingredient {
	return r.pickIngredients()
}

func (r *Restaurant) NewCook(id uint64) *Cook {
	return newCook(r, id)
}

func (r *Restaurant) NewWaiter(id uint64) *Waiter {
	return newWaiter(r, id)
}

func (r *Restaurant) Chief() *Chief {
	return r.chief
}
