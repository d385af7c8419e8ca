package shared

import (
	"fmt"
	"strings"
)

// Suit represents the suit of a card. SuitNone is used before trump is chosen.
type Suit int

const (
	SuitNone Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// Color of a suit; bowers are found by color.
type Color int

const (
	Red Color = iota
	Black
)

var suitNames = map[Suit]string{
	SuitNone: "None",
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
}

var suitGlyphs = map[Suit]string{
	SuitNone: "-",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

// Suits returns the four real suits in deck generation order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Glyph returns the display symbol for the suit.
func (s Suit) Glyph() string {
	return suitGlyphs[s]
}

// Color returns Red for Hearts/Diamonds and Black for Clubs/Spades.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Partner returns the other suit of the same color (the "next" suit).
func (s Suit) Partner() Suit {
	switch s {
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	}
	return SuitNone
}

// ParseSuit accepts a suit name, its initial or its glyph.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hearts", "heart", "♥":
		return Hearts, nil
	case "d", "diamonds", "diamond", "♦":
		return Diamonds, nil
	case "c", "clubs", "club", "♣":
		return Clubs, nil
	case "s", "spades", "spade", "♠":
		return Spades, nil
	}
	return SuitNone, fmt.Errorf("unknown suit %q", s)
}

// Face represents the face value of a card, Nine through Ace.
type Face int

const (
	Nine Face = iota + 9
	Ten
	Jack
	Queen
	King
	Ace
)

var faceSymbols = map[Face]string{
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Faces returns the six faces in deck generation order.
func Faces() []Face {
	return []Face{Nine, Ten, Jack, Queen, King, Ace}
}

// NaturalRank is the rank before any trump or lead adjustment (9-14).
func (f Face) NaturalRank() int {
	return int(f)
}

// Symbol returns the single-character display symbol.
func (f Face) Symbol() string {
	if sym, ok := faceSymbols[f]; ok {
		return sym
	}
	return "?"
}

func (f Face) String() string {
	switch f {
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// ParseFace accepts a face symbol ("9", "T", "10", "J"...) or name.
func ParseFace(s string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "9", "nine":
		return Nine, nil
	case "t", "10", "ten":
		return Ten, nil
	case "j", "jack":
		return Jack, nil
	case "q", "queen":
		return Queen, nil
	case "k", "king":
		return King, nil
	case "a", "ace":
		return Ace, nil
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// Card is an immutable (face, suit) pair.
type Card struct {
	Face Face `json:"face"`
	Suit Suit `json:"suit"`
}

// Rank bands under a chosen trump:
// off-suit 9-14 < lead suit 15-20 < low trump 21-22 < trump faces 23-25 < left bower 26 < right bower 27.
const (
	leadBonus       = 6
	lowTrumpBonus   = 12
	trumpFaceBonus  = 11
	leftBowerBonus  = 15
	rightBowerBonus = 16
)

// Rank returns the card's effective rank for the given trump and lead suits.
// With no trump chosen the natural rank is returned unmodified.
func (c Card) Rank(trump, lead Suit) int {
	natural := c.Face.NaturalRank()
	if trump == SuitNone {
		return natural
	}
	if c.IsLeftBower(trump) {
		return natural + leftBowerBonus
	}
	if c.Suit == trump {
		switch c.Face {
		case Nine, Ten:
			return natural + lowTrumpBonus
		case Jack:
			return natural + rightBowerBonus
		default:
			return natural + trumpFaceBonus
		}
	}
	if c.Suit == lead {
		return natural + leadBonus
	}
	return natural
}

// IsLeftBower reports whether the card is the Jack of the suit sharing trump's color.
func (c Card) IsLeftBower(trump Suit) bool {
	return trump != SuitNone &&
		c.Face == Jack &&
		c.Suit != trump &&
		c.Suit.Color() == trump.Color()
}

// IsRightBower reports whether the card is the Jack of trump.
func (c Card) IsRightBower(trump Suit) bool {
	return trump != SuitNone && c.Face == Jack && c.Suit == trump
}

// EffectiveSuit is the suit the card counts as for leading and following:
// the left bower belongs to trump.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.IsLeftBower(trump) {
		return trump
	}
	return c.Suit
}

func (c Card) String() string {
	return c.Face.Symbol() + c.Suit.Glyph()
}

// ParseCard reads cards written as "J♠", "JS", "js" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	face, err := ParseFace(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := ParseSuit(string(runes[len(runes)-1:]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Face: face, Suit: suit}, nil
}
