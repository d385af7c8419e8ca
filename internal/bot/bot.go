package bot

import (
	"euchre-game/internal/game"
	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"
)

// Brain picks a move for a computer seat.
type Brain interface {
	Decide(g *game.Game, seat shared.Seat) protocol.Command
}

// callThreshold is the number of trump (bowers included) a bot wants before calling.
const callThreshold = 3

// aloneThreshold is the trump count at which a bot plays without its partner.
const aloneThreshold = 5

// StandardBot counts trump to call and plays the cheapest card that wins.
type StandardBot struct{}

var standard Brain = StandardBot{}

// Decide returns the standard bot's move for seat.
func Decide(g *game.Game, seat shared.Seat) protocol.Command {
	return standard.Decide(g, seat)
}

// Decide returns a legal command for seat. When the engine is not waiting on seat
// the bot asks for a tick instead.
func (StandardBot) Decide(g *game.Game, seat shared.Seat) protocol.Command {
	if !g.AwaitingAction() || g.CurrentSeat() != seat {
		return protocol.Command{Type: protocol.CmdTick, Seat: seat}
	}

	hand := g.Player(seat).Hand
	switch g.State() {
	case game.CallingPickup:
		return orderOrPass(g, seat, hand)
	case game.CallingHighSuit:
		return nameOrPass(g, seat, hand)
	case game.DealerDiscarding:
		return protocol.Command{Type: protocol.CmdDiscard, Seat: seat, Card: discard(hand, g.Trump())}
	case game.PlayingHand:
		return protocol.Command{Type: protocol.CmdPlay, Seat: seat, Card: choosePlay(g, seat)}
	}
	return protocol.Command{Type: protocol.CmdTick, Seat: seat}
}

func orderOrPass(g *game.Game, seat shared.Seat, hand []shared.Card) protocol.Command {
	up, _ := g.UpCard()
	count := trumpCount(hand, up.Suit)
	if seat == g.Dealer() {
		count++ // the up card joins the dealer's hand
	}
	if count < callThreshold {
		return protocol.Command{Type: protocol.CmdPass, Seat: seat}
	}
	return protocol.Command{Type: protocol.CmdOrderUp, Seat: seat, Alone: count >= aloneThreshold}
}

func nameOrPass(g *game.Game, seat shared.Seat, hand []shared.Card) protocol.Command {
	best, bestCount := shared.SuitNone, -1
	for _, s := range shared.Suits() {
		if s == g.TurnedDown() {
			continue
		}
		if n := trumpCount(hand, s); n > bestCount {
			best, bestCount = s, n
		}
	}

	forced := g.StickTheDealer() && seat == g.Dealer()
	if bestCount < callThreshold && !forced {
		return protocol.Command{Type: protocol.CmdPass, Seat: seat}
	}
	return protocol.Command{Type: protocol.CmdCallSuit, Seat: seat, Suit: best, Alone: bestCount >= aloneThreshold}
}

// trumpCount counts cards that would be trump if suit were called.
func trumpCount(hand []shared.Card, suit shared.Suit) int {
	n := 0
	for _, c := range hand {
		if c.EffectiveSuit(suit) == suit {
			n++
		}
	}
	return n
}

// discard picks the lowest non-trump card, or the lowest trump when the hand is all trump.
func discard(hand []shared.Card, trump shared.Suit) shared.Card {
	var pick shared.Card
	found := false
	for _, c := range hand {
		if c.EffectiveSuit(trump) == trump {
			continue
		}
		if !found || c.Rank(trump, shared.SuitNone) < pick.Rank(trump, shared.SuitNone) {
			pick, found = c, true
		}
	}
	if found {
		return pick
	}
	return lowest(hand, trump, trump)
}

func choosePlay(g *game.Game, seat shared.Seat) shared.Card {
	trump := g.Trump()
	legal := g.LegalPlays(seat)
	trick := g.Trick()

	if len(trick.Cards) == 0 {
		return highestLead(legal, trump)
	}

	lead := trick.LeadSuit
	winning := trick.Winner(trump).Card.Rank(trump, lead)

	var winners []shared.Card
	for _, c := range legal {
		if c.Rank(trump, lead) > winning {
			winners = append(winners, c)
		}
	}
	if len(winners) > 0 {
		return lowest(winners, trump, lead)
	}
	return lowest(legal, trump, lead)
}

// highestLead ranks each card as if it set the lead suit.
func highestLead(cards []shared.Card, trump shared.Suit) shared.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank(trump, c.EffectiveSuit(trump)) > best.Rank(trump, best.EffectiveSuit(trump)) {
			best = c
		}
	}
	return best
}

func lowest(cards []shared.Card, trump, lead shared.Suit) shared.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Rank(trump, lead) < low.Rank(trump, lead) {
			low = c
		}
	}
	return low
}
