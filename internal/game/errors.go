package game

import (
	"errors"
	"fmt"

	"euchre-game/internal/shared"
)

// Rejection reasons for invalid user actions. The game is left unchanged.
var (
	ErrWrongState     = errors.New("action not allowed now")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrMustFollowSuit = errors.New("must follow the lead suit")
	ErrSuitTurnedDown = errors.New("suit was turned down this hand")
	ErrInvalidSuit    = errors.New("invalid suit")
	ErrDealerMustCall = errors.New("dealer must name trump")
	ErrNotDealer      = errors.New("only the dealer may discard")
	ErrGameOver       = errors.New("game is already over")
)

// ActionError reports a rejected action and why.
type ActionError struct {
	Op   string
	Seat shared.Seat
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s by %s: %v", e.Op, e.Seat, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

func reject(op string, seat shared.Seat, err error) error {
	return &ActionError{Op: op, Seat: seat, Err: err}
}
