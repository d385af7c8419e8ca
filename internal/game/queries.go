package game

import "euchre-game/internal/shared"

// Read-only views for the presentation layer. Everything returned is a copy.

// State returns the current lifecycle stage.
func (g *Game) State() GameState { return g.state }

// CurrentSeat returns the seat expected to act next.
func (g *Game) CurrentSeat() shared.Seat { return g.currentPlayer }

// CurrentPlayer returns a copy of the player expected to act next.
func (g *Game) CurrentPlayer() shared.Player { return g.Player(g.currentPlayer) }

// Player returns a copy of the player at seat.
func (g *Game) Player(seat shared.Seat) shared.Player {
	return copyPlayer(g.seat(seat))
}

// Dealer returns the dealer's seat.
func (g *Game) Dealer() shared.Seat { return g.dealer }

// Leader returns the seat leading the current trick.
func (g *Game) Leader() shared.Seat { return g.leader }

// HandNumber returns how many hands have been dealt, including the current one.
func (g *Game) HandNumber() int { return g.handNumber }

// Trump returns the trump suit, or SuitNone before it is called.
func (g *Game) Trump() shared.Suit { return g.trump }

// TurnedDown returns the suit turned down in the first round, or SuitNone.
func (g *Game) TurnedDown() shared.Suit { return g.turnedDown }

// UpCard returns the turned-up kitty card while it is on offer.
func (g *Game) UpCard() (shared.Card, bool) { return g.upCard, g.upCardShown }

// Maker returns the seat that called trump and whether they went alone.
func (g *Game) Maker() (seat shared.Seat, alone bool, ok bool) {
	return g.maker, g.alone, g.hasMaker
}

// SittingOut reports whether seat sits out this hand behind a lone partner.
func (g *Game) SittingOut(seat shared.Seat) bool { return g.sittingOut(seat) }

// Teams returns copies of both teams; index 0 holds Bottom and Top.
func (g *Game) Teams() [2]shared.Team {
	return [2]shared.Team{*g.teams[0], *g.teams[1]}
}

// TeamFor returns a copy of the team seat belongs to.
func (g *Game) TeamFor(seat shared.Seat) shared.Team { return *g.teamFor(seat) }

// Trick returns a copy of the trick in progress, or nil outside play.
func (g *Game) Trick() *shared.Trick { return g.trick.Clone() }

// LastTrick returns a copy of the most recently completed trick, or nil.
func (g *Game) LastTrick() *shared.Trick { return g.lastTrick.Clone() }

// TricksPlayed returns the number of completed tricks in the current hand.
func (g *Game) TricksPlayed() int { return g.tricksPlayed }

// DeckSize returns the number of undealt cards (the kitty once dealing is done).
func (g *Game) DeckSize() int {
	if g.deck == nil {
		return 0
	}
	return g.deck.Len()
}

// WinningScore returns the score that ends the game.
func (g *Game) WinningScore() int { return g.winningScore }

// StickTheDealer reports whether the dealer is forced to name trump in the second round.
func (g *Game) StickTheDealer() bool { return g.stickTheDealer }

// Winner returns the winning team once the game is over.
func (g *Game) Winner() (shared.Team, bool) {
	if g.winner < 0 {
		return shared.Team{}, false
	}
	return *g.teams[g.winner], true
}

// AwaitingAction reports whether the engine is waiting on a decision from the current seat
// rather than on a tick.
func (g *Game) AwaitingAction() bool {
	switch g.state {
	case CallingPickup, CallingHighSuit:
		return g.passes < shared.NumSeats
	case DealerDiscarding:
		return true
	case PlayingHand:
		return g.trick != nil && !g.trickComplete()
	}
	return false
}

// LegalPlays returns the cards seat may play right now; empty when seat is not to play.
func (g *Game) LegalPlays(seat shared.Seat) []shared.Card {
	if g.state != PlayingHand || seat != g.currentPlayer || !g.AwaitingAction() {
		return nil
	}
	return g.seat(seat).LegalPlays(g.trick.LeadSuit, g.trump)
}

// Snapshot is a deep copy of the full game state.
type Snapshot struct {
	ID             string
	State          GameState
	HandNumber     int
	Dealer         shared.Seat
	Leader         shared.Seat
	Current        shared.Seat
	Players        map[shared.Seat]shared.Player
	Teams          [2]shared.Team
	Deck           []shared.Card
	UpCard         shared.Card
	UpCardShown    bool
	TurnedDown     shared.Suit
	Trump          shared.Suit
	Maker          shared.Seat
	HasMaker       bool
	Alone          bool
	Passes         int
	Trick          *shared.Trick
	LastTrick      *shared.Trick
	TricksPlayed   int
	DealStep       int
	WinningScore   int
	StickTheDealer bool
	Winner         int
}

// Snapshot captures the game for rendering or comparison.
func (g *Game) Snapshot() Snapshot {
	players := make(map[shared.Seat]shared.Player, len(g.players))
	for s, p := range g.players {
		players[s] = copyPlayer(p)
	}
	var deck []shared.Card
	if g.deck != nil {
		deck = g.deck.Cards()
	}
	return Snapshot{
		ID:             g.ID,
		State:          g.state,
		HandNumber:     g.handNumber,
		Dealer:         g.dealer,
		Leader:         g.leader,
		Current:        g.currentPlayer,
		Players:        players,
		Teams:          g.Teams(),
		Deck:           deck,
		UpCard:         g.upCard,
		UpCardShown:    g.upCardShown,
		TurnedDown:     g.turnedDown,
		Trump:          g.trump,
		Maker:          g.maker,
		HasMaker:       g.hasMaker,
		Alone:          g.alone,
		Passes:         g.passes,
		Trick:          g.trick.Clone(),
		LastTrick:      g.lastTrick.Clone(),
		TricksPlayed:   g.tricksPlayed,
		DealStep:       g.dealStep,
		WinningScore:   g.winningScore,
		StickTheDealer: g.stickTheDealer,
		Winner:         g.winner,
	}
}

func copyPlayer(p *shared.Player) shared.Player {
	hand := make([]shared.Card, len(p.Hand))
	copy(hand, p.Hand)
	return shared.Player{Name: p.Name, IsHuman: p.IsHuman, Hand: hand}
}
