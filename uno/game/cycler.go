package game

type direction int

const (
	clockwise        direction = 1
	counterClockwise direction = -1
)

// Cycler walks a fixed ring of seats in either direction. Before the first
// Next the last seat is current, so the first Next lands on seat zero.
type Cycler[T any] struct {
	seats     []T
	current   int
	direction direction
}

func NewCycler[T any](seats []T) *Cycler[T] {
	return &Cycler[T]{
		seats:     seats,
		current:   len(seats) - 1,
		direction: clockwise,
	}
}

func (c *Cycler[T]) Current() T {
	return c.seats[c.current]
}

// ForEach visits seats in seating order regardless of direction.
func (c *Cycler[T]) ForEach(function func(T)) {
	for _, seat := range c.seats {
		function(seat)
	}
}

func (c *Cycler[T]) Next() T {
	c.current = c.step(1)
	return c.seats[c.current]
}

// Peek returns the seat Next would move to, without moving.
func (c *Cycler[T]) Peek() T {
	return c.seats[c.step(1)]
}

func (c *Cycler[T]) Len() int {
	return len(c.seats)
}

func (c *Cycler[T]) Reverse() {
	c.direction = -c.direction
}

func (c *Cycler[T]) step(seats int) int {
	n := len(c.seats)
	return (c.current + seats*int(c.direction) + n) % n
}
