package game

// Direction of play around the table.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Cycler tracks the active position among size seats and the direction of play.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: Forward,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

// Next moves one seat in the current direction, wrapping around, and returns the new position.
func (c *Cycler) Next() int {
	if c.size == 0 {
		return 0
	}
	c.current = ((c.current+int(c.direction))%c.size + c.size) % c.size
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Forward:
		c.direction = Backward
	case Backward:
		c.direction = Forward
	}
}

func (c *Cycler) set(current int, direction Direction) {
	c.current = current
	if direction == Backward {
		c.direction = Backward
	} else {
		c.direction = Forward
	}
}
