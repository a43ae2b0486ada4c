package actor

// Combine returns single Actor that combines all specified actors into one.
//
// Calling Start, Stop or Join on combined Actor will invoke respective
// function on all underlying Actors, in the order they were supplied.
func Combine(actors ...Actor) Actor {
	return &combinedActor{actors: actors}
}

type combinedActor struct {
	actors []Actor
}

func (a *combinedActor) Start() {
	for _, actor := range a.actors {
		actor.Start()
	}
}

func (a *combinedActor) Stop() {
	for _, actor := range a.actors {
		actor.Stop()
	}
}

func (a *combinedActor) Join() {
	for _, actor := range a.actors {
		actor.Join()
	}
}
