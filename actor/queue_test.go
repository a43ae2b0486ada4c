package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ixilminiussi/multithreading-learning/actor"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	q := NewQueue[int](0)

	assert.Equal(t, 0, q.Size())
	assert.True(t, q.IsEmpty())

	// Push 1
	q.PushBack(1)
	assert.Equal(t, 1, q.Size())
	assert.False(t, q.IsEmpty())

	// Push 2
	q.PushBack(2)
	assert.Equal(t, 2, q.Size())

	// Push 3
	q.PushBack(3)
	assert.Equal(t, 3, q.Size())
	assert.False(t, q.IsEmpty())

	// PopFront (expect 1)
	assert.Equal(t, 1, q.PopFront())
	assert.Equal(t, 2, q.Size())

	// PopFront (expect 2)
	assert.Equal(t, 2, q.PopFront())
	assert.Equal(t, 1, q.Size())

	// PopFront (expect 3)
	assert.Equal(t, 3, q.PopFront())
	assert.Equal(t, 0, q.Size())
	assert.True(t, q.IsEmpty())
}

func TestQueue_MinCapacity(t *testing.T) {
	t.Parallel()

	// Queue never shrinks below MinQueueCapacity
	q := NewQueue[int](0)
	for i := range MinQueueCapacity * 4 {
		q.PushBack(i)
	}

	for range MinQueueCapacity * 4 {
		q.PopFront()
	}

	assert.GreaterOrEqual(t, q.Cap(), MinQueueCapacity)

	// Larger minimum is respected
	q = NewQueue[int](MinQueueCapacity * 2)
	q.PushBack(1)
	assert.GreaterOrEqual(t, q.Cap(), MinQueueCapacity*2)
}
