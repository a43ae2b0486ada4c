package actor

import (
	"github.com/gammazero/deque"
)

const minQueueCapacity = 64

type queue[T any] struct {
	q deque.Deque[T]
}

func newQueue[T any](minimum int) *queue[T] {
	if minimum < minQueueCapacity {
		minimum = minQueueCapacity
	}

	q := &queue[T]{}
	q.q.SetBaseCap(minimum)

	return q
}

func (q *queue[T]) PushBack(val T) {
	q.q.PushBack(val)
}

func (q *queue[T]) PopFront() T {
	return q.q.PopFront()
}

func (q *queue[T]) Size() int {
	return q.q.Len()
}

func (q *queue[T]) IsEmpty() bool {
	return q.q.Len() == 0
}
