package utils

type number interface {
	~int | ~int64 | ~uint | ~uint64
}

// Counter accumulates a value; a child counter also feeds its parent.
type Counter[T number] struct {
	parent *Counter[T]
	value  T
}

func (c *Counter[T]) Add(delta T) {
	if c.parent != nil {
		c.parent.Add(delta)
	}

	c.value += delta
}

func (c *Counter[T]) Value() T {
	return c.value
}

func (c *Counter[T]) MakeChild() *Counter[T] {
	return &Counter[T]{parent: c}
}

func NewCounter[T number]() *Counter[T] {
	return &Counter[T]{}
}
