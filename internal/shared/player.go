package shared

// Player represents a participant at one seat.
type Player struct {
	Name    string // Player's display name
	IsHuman bool   // Human players act through the command layer, bots through the bot package
	Hand    []Card // Cards currently held by the player
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(name string, isHuman bool) *Player {
	return &Player{
		Name:    name,
		IsHuman: isHuman,
		Hand:    []Card{},
	}
}

// AddCards adds cards to the player's hand.
func (p *Player) AddCards(cards ...Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the card is in the player's hand.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// HasSuit reports whether the player holds a card whose effective suit is suit.
func (p *Player) HasSuit(suit, trump Suit) bool {
	for _, c := range p.Hand {
		if c.EffectiveSuit(trump) == suit {
			return true
		}
	}
	return false
}

// LegalPlays returns the cards that may be played to a trick led in lead.
// Any card may be played when leading or when void in the lead suit.
func (p *Player) LegalPlays(lead, trump Suit) []Card {
	if lead == SuitNone || !p.HasSuit(lead, trump) {
		out := make([]Card, len(p.Hand))
		copy(out, p.Hand)
		return out
	}

	var out []Card
	for _, c := range p.Hand {
		if c.EffectiveSuit(trump) == lead {
			out = append(out, c)
		}
	}
	return out
}

// ClearHand empties the player's hand.
func (p *Player) ClearHand() {
	p.Hand = []Card{}
}
