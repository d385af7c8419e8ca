package shared

import (
	"fmt"
	"math/rand/v2"
)

// Seat is a fixed table position. Turn order runs clockwise Bottom, Left, Top, Right.
type Seat int

const (
	Bottom Seat = iota
	Left
	Top
	Right
)

// NumSeats is the number of positions at the table.
const NumSeats = 4

// Seats returns every seat in turn order starting at Bottom.
func Seats() []Seat {
	return []Seat{Bottom, Left, Top, Right}
}

// Next returns the seat to the left; Right wraps to Bottom.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Adjacent reports whether two seats sit next to each other.
func (s Seat) Adjacent(o Seat) bool {
	return s.Next() == o || o.Next() == s
}

func (s Seat) String() string {
	switch s {
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Seat(%d)", int(s))
}

// RandomSeat picks a seat uniformly.
func RandomSeat(rng *rand.Rand) Seat {
	return Seat(rng.IntN(NumSeats))
}
