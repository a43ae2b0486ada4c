package actor

const (
	MinQueueCapacity = minQueueCapacity
)

func NewContext() *context {
	return newContext()
}

func (c *context) End() {
	c.end()
}

func NewOptions[T ~func(o *options)](opts ...T) options {
	return newOptions(opts)
}

func NewZeroOptions() options {
	return options{}
}

func NewQueue[T any](minimum int) *queue[T] {
	return newQueue[T](minimum)
}

func (q *queue[T]) Cap() int {
	return q.q.Cap()
}
