package shared

import (
	"log"

	"github.com/google/uuid"
)

// Team represents a partnership of two non-adjacent seats.
type Team struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Seats     [2]Seat `json:"seats"`
	GameScore int     `json:"game_score"` // Points toward the winning score
	HandScore int     `json:"hand_score"` // Tricks taken in the current hand
}

// NewTeam creates a new team seated at a and b.
// It generates a unique UUID for the team ID.
func NewTeam(name string, a, b Seat) *Team {
	if a == b || a.Adjacent(b) {
		log.Panicf("Error: Team %q seats %s and %s are not partners.", name, a, b)
	}
	return &Team{
		ID:    uuid.NewString(),
		Name:  name,
		Seats: [2]Seat{a, b},
	}
}

// Has reports whether seat belongs to the team.
func (t *Team) Has(seat Seat) bool {
	return t.Seats[0] == seat || t.Seats[1] == seat
}

// ResetHand clears the per-hand score at the start of a hand.
func (t *Team) ResetHand() {
	t.HandScore = 0
}

// AddTrick credits the team with one trick in the current hand.
func (t *Team) AddTrick() {
	t.HandScore++
}

// AdvanceGameScore adds the hand's points to the game score and clears the hand score.
func (t *Team) AdvanceGameScore(points int) {
	t.GameScore += points
	t.HandScore = 0
}

// Won reports whether the team has reached the winning score.
func (t *Team) Won(target int) bool {
	return t.GameScore >= target
}
