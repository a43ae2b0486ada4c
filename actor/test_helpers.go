package actor

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// joinTimeout bounds how long AssertJoinAfterStop waits for Join.
const joinTimeout = time.Second * 5

// TestSuite runs every lifecycle assertion against actors made by fact.
// Each subtest gets its own actor.
//
//nolint:tparallel // this is helper to test case (lint fake positive)
func TestSuite(t *testing.T, fact func() Actor) {
	t.Helper()

	t.Run("start stop", func(t *testing.T) {
		t.Parallel()

		AssertStartStopAtRandom(t, fact())
	})

	t.Run("worker end signal", func(t *testing.T) {
		t.Parallel()

		AssertWorkerEndSig(t, fact())
	})

	t.Run("join after stop", func(t *testing.T) {
		t.Parallel()

		AssertJoinAfterStop(t, fact())
	})
}

// AssertStartStopAtRandom starts and stops actor in random order, which
// will catch potential panic or race between Start, Stop and running worker.
func AssertStartStopAtRandom(t *testing.T, a Actor) {
	t.Helper()

	assert.NotNil(t, a)

	for range 1000 {
		if rand.IntN(2) == 0 { //nolint:gosec // weak random is fine
			a.Start()
		} else {
			a.Stop()
		}
	}

	a.Stop()
}

// AssertWorkerEndSig asserts that worker returns WorkerEnd when its context
// has already ended. aw is either Worker or Actor created with New.
func AssertWorkerEndSig(t *testing.T, aw any) {
	t.Helper()

	var w Worker

	switch v := aw.(type) {
	case *actor:
		w = v.worker
	case Worker:
		w = v
	default:
		t.Skipf("%T is neither worker nor actor", aw)
	}

	if !assert.NotNil(t, w) {
		return
	}

	status := w.DoWork(ContextEnded())
	assert.Equal(t, WorkerEnd, status, "worker should end when context has ended")
}

// AssertJoinAfterStop asserts that goroutine blocked in Join is released
// once actor is stopped from another goroutine.
func AssertJoinAfterStop(t *testing.T, a Actor) {
	t.Helper()

	a.Start()

	joinedC := make(chan struct{})

	go func() {
		a.Join()
		close(joinedC)
	}()

	a.Stop()

	select {
	case <-joinedC:
	case <-time.After(joinTimeout):
		assert.FailNow(t, "join should return after actor is stopped")
	}
}
