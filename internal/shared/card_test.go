package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	require.NoError(t, err)
	return c
}

func TestCardRank(t *testing.T) {
	tests := []struct {
		name  string
		card  string
		trump Suit
		lead  Suit
		want  int
	}{
		{"right bower", "JS", Spades, Diamonds, 27},
		{"left bower", "JC", Spades, Diamonds, 26},
		{"left bower red", "JD", Hearts, Spades, 26},
		{"trump ace", "AS", Spades, Diamonds, 25},
		{"trump king", "KS", Spades, Diamonds, 24},
		{"trump queen", "QS", Spades, Diamonds, 23},
		{"trump ten", "TS", Spades, Diamonds, 22},
		{"trump nine", "9S", Spades, Diamonds, 21},
		{"lead ace", "AD", Spades, Diamonds, 20},
		{"lead jack", "JD", Spades, Diamonds, 17},
		{"lead nine", "9D", Spades, Diamonds, 15},
		{"off-suit nine", "9C", Spades, Diamonds, 9},
		{"off-suit ace", "AH", Spades, Diamonds, 14},
		{"off-suit jack of other color", "JH", Spades, Diamonds, 11},
		{"no trump uses natural rank", "JS", SuitNone, Spades, 11},
		{"no trump ace", "AH", SuitNone, SuitNone, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card(t, tt.card).Rank(tt.trump, tt.lead))
		})
	}
}

func TestRankBandsAreOrderedAndDistinct(t *testing.T) {
	for _, trump := range Suits() {
		for _, lead := range Suits() {
			seen := map[int]Card{}
			var offSuitMax, leadMin, leadMax, trumpMin int
			offSuitMax, leadMin, trumpMin = 0, 100, 100

			for _, suit := range Suits() {
				for _, face := range Faces() {
					c := Card{Face: face, Suit: suit}
					r := c.Rank(trump, lead)
					eff := c.EffectiveSuit(trump)

					switch {
					case eff == trump:
						trumpMin = min(trumpMin, r)
					case eff == lead:
						leadMin = min(leadMin, r)
						leadMax = max(leadMax, r)
					default:
						offSuitMax = max(offSuitMax, r)
						continue
					}

					// Only cards that can win a trick need distinct ranks.
					prev, dup := seen[r]
					assert.False(t, dup, "trump %s lead %s: %s and %s share rank %d", trump, lead, prev, c, r)
					seen[r] = c
				}
			}

			if lead != trump {
				assert.Less(t, offSuitMax, leadMin, "trump %s lead %s", trump, lead)
				assert.Less(t, leadMax, trumpMin, "trump %s lead %s", trump, lead)
			}
		}
	}
}

func TestBowers(t *testing.T) {
	js, jc, jh := card(t, "JS"), card(t, "JC"), card(t, "JH")

	assert.True(t, js.IsRightBower(Spades))
	assert.False(t, js.IsLeftBower(Spades))
	assert.True(t, jc.IsLeftBower(Spades))
	assert.False(t, jh.IsLeftBower(Spades))
	assert.False(t, jc.IsLeftBower(SuitNone))

	assert.Equal(t, Spades, jc.EffectiveSuit(Spades))
	assert.Equal(t, Clubs, jc.EffectiveSuit(Hearts))
	assert.Equal(t, Hearts, jh.EffectiveSuit(Spades))
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"J♠", Card{Jack, Spades}},
		{"js", Card{Jack, Spades}},
		{"10h", Card{Ten, Hearts}},
		{"TD", Card{Ten, Diamonds}},
		{"9c", Card{Nine, Clubs}},
		{"A♥", Card{Ace, Hearts}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "J", "8s", "Jx", "zz"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "J♠", Card{Jack, Spades}.String())
	assert.Equal(t, "T♦", Card{Ten, Diamonds}.String())
}

func TestSuitPartner(t *testing.T) {
	for _, s := range Suits() {
		assert.Equal(t, s.Color(), s.Partner().Color())
		assert.NotEqual(t, s, s.Partner())
		assert.Equal(t, s, s.Partner().Partner())
	}
}
