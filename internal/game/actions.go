package game

import (
	"fmt"
	"log"

	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"
)

// Every action validates fully before mutating anything, so a rejected action
// leaves the game exactly as it was.

// checkTurn validates the lifecycle stage and that seat is the one to act.
func (g *Game) checkTurn(op string, seat shared.Seat, want GameState) error {
	if g.state == GameOver {
		return reject(op, seat, ErrGameOver)
	}
	if g.state != want || !g.AwaitingAction() {
		return reject(op, seat, ErrWrongState)
	}
	if seat != g.currentPlayer {
		return reject(op, seat, ErrNotYourTurn)
	}
	return nil
}

// OrderUp accepts the up card as trump. The dealer picks it up and must then discard,
// unless the dealer is sitting out behind a lone partner.
func (g *Game) OrderUp(seat shared.Seat, alone bool) error {
	if err := g.checkTurn("order_up", seat, CallingPickup); err != nil {
		return err
	}

	g.setTrump(seat, g.upCard.Suit, alone, 1)

	if g.sittingOut(g.dealer) {
		g.startPlay()
		return nil
	}

	// The up card is the top of the kitty.
	g.seat(g.dealer).AddCards(g.deck.Deal(1)...)
	g.upCardShown = false
	g.currentPlayer = g.dealer
	g.state = DealerDiscarding
	log.Printf("Game %s: %s picks up %s.", g.ID, g.seat(g.dealer).Name, g.upCard)
	return nil
}

// Pass declines to order up (first round) or to name a suit (second round).
func (g *Game) Pass(seat shared.Seat) error {
	want := CallingHighSuit
	if g.state == CallingPickup {
		want = CallingPickup
	}
	if err := g.checkTurn("pass", seat, want); err != nil {
		return err
	}
	if g.state == CallingHighSuit && g.stickTheDealer && seat == g.dealer {
		return reject("pass", seat, ErrDealerMustCall)
	}

	g.passes++
	g.currentPlayer = g.currentPlayer.Next()
	log.Printf("Game %s: %s (%s) passes.", g.ID, g.seat(seat).Name, seat)
	return nil
}

// Discard buries one card from the dealer's hand after a pickup.
func (g *Game) Discard(seat shared.Seat, card shared.Card) error {
	if err := g.checkTurn("discard", seat, DealerDiscarding); err != nil {
		return err
	}
	if seat != g.dealer {
		return reject("discard", seat, ErrNotDealer)
	}
	p := g.seat(seat)
	if !p.HasCard(card) {
		return reject("discard", seat, ErrCardNotInHand)
	}

	p.RemoveCard(card)
	g.deck.Bury(card)
	log.Printf("Game %s: %s discards.", g.ID, p.Name)
	g.startPlay()
	return nil
}

// CallSuit names trump in the second round. The turned-down suit may not be named.
func (g *Game) CallSuit(seat shared.Seat, suit shared.Suit, alone bool) error {
	if err := g.checkTurn("call_suit", seat, CallingHighSuit); err != nil {
		return err
	}
	if !validSuit(suit) {
		return reject("call_suit", seat, ErrInvalidSuit)
	}
	if suit == g.turnedDown {
		return reject("call_suit", seat, ErrSuitTurnedDown)
	}

	g.setTrump(seat, suit, alone, 2)
	g.startPlay()
	return nil
}

func validSuit(suit shared.Suit) bool {
	for _, s := range shared.Suits() {
		if s == suit {
			return true
		}
	}
	return false
}

// PlayCard plays a card from seat's hand to the current trick.
func (g *Game) PlayCard(seat shared.Seat, card shared.Card) error {
	if err := g.checkTurn("play_card", seat, PlayingHand); err != nil {
		return err
	}
	p := g.seat(seat)
	if !p.HasCard(card) {
		return reject("play_card", seat, ErrCardNotInHand)
	}
	lead := g.trick.LeadSuit
	if lead != shared.SuitNone && card.EffectiveSuit(g.trump) != lead && p.HasSuit(lead, g.trump) {
		return reject("play_card", seat, ErrMustFollowSuit)
	}

	p.RemoveCard(card)
	g.trick.Add(card, seat, g.trump)
	log.Printf("Game %s: %s (%s) played %s", g.ID, p.Name, seat, card)
	g.emit(protocol.EventCardPlayed, protocol.CardPlayedPayload{Seat: seat, Card: card})

	if !g.trickComplete() {
		g.currentPlayer = g.nextActive(seat)
	}
	return nil
}

// Apply routes a command to the matching action. Tick commands advance the engine.
func (g *Game) Apply(seat shared.Seat, cmd protocol.Command) error {
	switch cmd.Type {
	case protocol.CmdOrderUp:
		return g.OrderUp(seat, cmd.Alone)
	case protocol.CmdPass:
		return g.Pass(seat)
	case protocol.CmdDiscard:
		return g.Discard(seat, cmd.Card)
	case protocol.CmdCallSuit:
		return g.CallSuit(seat, cmd.Suit, cmd.Alone)
	case protocol.CmdPlay:
		return g.PlayCard(seat, cmd.Card)
	case protocol.CmdTick:
		g.Tick()
		return nil
	}
	return fmt.Errorf("game: command %q is not a game action", cmd.Type)
}
