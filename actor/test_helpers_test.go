package actor_test

import (
	"testing"

	. "github.com/ixilminiussi/multithreading-learning/actor"
)

func Test_Suite(t *testing.T) {
	t.Parallel()

	// Test when actor is created with default constructor (New)
	TestSuite(t, func() Actor { return New(newWorker()) })

	// Test when actors are combined
	TestSuite(t, func() Actor {
		return Combine(New(newWorker()), New(newWorker()))
	})
}

func Test_AssertWorkerEndSig(t *testing.T) {
	t.Parallel()

	// Test with worker
	AssertWorkerEndSig(t, newWorker())

	// Test with actor
	AssertWorkerEndSig(t, New(newWorker()))
}
