package shared

import (
	"log"
	"math/rand/v2"
	"sort"
)

// DeckSize is the number of cards in a euchre deck (Nine through Ace, four suits).
const DeckSize = 24

// Deck represents the ordered, undealt cards.
type Deck struct {
	cards []Card
}

// NewDeck creates the 24-card euchre deck and shuffles it with rng.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits() {
		for _, face := range Faces() {
			cards = append(cards, Card{Face: face, Suit: suit})
		}
	}

	d := &Deck{cards: cards}
	d.Shuffle(rng)
	return d
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the first n cards.
// Asking for more cards than remain is an engine bug and panics.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > len(d.cards) {
		log.Panicf("Error: Not enough cards in deck (%d) to deal %d.", len(d.cards), n)
	}

	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Peek returns the top card without removing it.
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

// Cards returns a copy of the remaining cards in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Bury puts cards at the bottom of the deck; the dealer's discard joins the kitty this way.
func (d *Deck) Bury(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// SortHand orders a hand by effective suit, then by descending rank under trump.
func SortHand(cards []Card, trump Suit) {
	sort.SliceStable(cards, func(i, j int) bool {
		si, sj := cards[i].EffectiveSuit(trump), cards[j].EffectiveSuit(trump)
		if si != sj {
			return si < sj
		}
		return cards[i].Rank(trump, si) > cards[j].Rank(trump, sj)
	})
}
