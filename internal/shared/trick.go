package shared

import "log"

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat Seat `json:"seat"`
}

// Trick represents a single trick.
type Trick struct {
	Leader   Seat         `json:"leader"`
	Cards    []PlayedCard `json:"cards"`
	LeadSuit Suit         `json:"lead_suit"` // Effective suit of the first card, SuitNone until led
}

// NewTrick creates an empty trick led by leader.
func NewTrick(leader Seat) *Trick {
	return &Trick{
		Leader:   leader,
		Cards:    []PlayedCard{},
		LeadSuit: SuitNone,
	}
}

// Add adds a card and the seat that played it. The first card sets the lead suit.
func (t *Trick) Add(card Card, seat Seat, trump Suit) {
	if len(t.Cards) == 0 {
		t.LeadSuit = card.EffectiveSuit(trump)
	}
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Winner returns the seat that played the highest ranked card under trump and the lead suit.
func (t *Trick) Winner(trump Suit) PlayedCard {
	if len(t.Cards) == 0 {
		log.Panicf("Error: Cannot determine winner of an empty trick.")
	}

	best := t.Cards[0]
	bestRank := best.Card.Rank(trump, t.LeadSuit)
	for _, pc := range t.Cards[1:] {
		if r := pc.Card.Rank(trump, t.LeadSuit); r > bestRank {
			best, bestRank = pc, r
		}
	}
	return best
}

// Clone returns a deep copy of the trick.
func (t *Trick) Clone() *Trick {
	if t == nil {
		return nil
	}
	cards := make([]PlayedCard, len(t.Cards))
	copy(cards, t.Cards)
	return &Trick{Leader: t.Leader, Cards: cards, LeadSuit: t.LeadSuit}
}
