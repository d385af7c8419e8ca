package bot

import (
	"math/rand/v2"
	"testing"

	"euchre-game/internal/game"
	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = game.Names{
	User:         "Ann",
	Partner:      "Pat",
	Opponent1:    "Olly",
	Opponent2:    "Oscar",
	UserTeam:     "Us",
	OpponentTeam: "Them",
}

func cards(t *testing.T, ss ...string) []shared.Card {
	t.Helper()
	out := make([]shared.Card, 0, len(ss))
	for _, s := range ss {
		c, err := shared.ParseCard(s)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestTrumpCountIncludesLeftBower(t *testing.T) {
	hand := cards(t, "JS", "JC", "9S", "AH", "KD")
	assert.Equal(t, 3, trumpCount(hand, shared.Spades))
	assert.Equal(t, 2, trumpCount(hand, shared.Clubs))
	assert.Equal(t, 1, trumpCount(hand, shared.Hearts))
}

func TestDiscard(t *testing.T) {
	tests := []struct {
		name  string
		hand  []string
		trump shared.Suit
		want  string
	}{
		{"lowest off-suit", []string{"JS", "AS", "9H", "TD", "KC", "QS"}, shared.Spades, "9H"},
		{"never the left bower", []string{"JC", "AS", "KS", "QS", "TS", "AH"}, shared.Spades, "AH"},
		{"all trump", []string{"JS", "JC", "AS", "KS", "QS", "9S"}, shared.Spades, "9S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := cards(t, tt.want)[0]
			assert.Equal(t, want, discard(cards(t, tt.hand...), tt.trump))
		})
	}
}

func TestHighestLeadAndLowest(t *testing.T) {
	hand := cards(t, "AH", "JC", "9S", "KD")
	assert.Equal(t, cards(t, "JC")[0], highestLead(hand, shared.Spades))
	assert.Equal(t, cards(t, "AH")[0], highestLead(hand, shared.SuitNone))

	assert.Equal(t, cards(t, "KD")[0], lowest(hand, shared.Spades, shared.Hearts))
	assert.Equal(t, cards(t, "AH")[0], lowest(hand, shared.Spades, shared.Diamonds))
}

func TestDecideWaitsWhenNotItsTurn(t *testing.T) {
	g := game.NewGame(names, game.Options{Rand: rand.New(rand.NewPCG(1, 2))})

	cmd := Decide(g, shared.Left)
	assert.Equal(t, protocol.CmdTick, cmd.Type)

	for g.State() != game.CallingPickup {
		g.Tick()
	}
	idle := g.CurrentSeat().Next()
	assert.Equal(t, protocol.CmdTick, Decide(g, idle).Type)

	cmd = Decide(g, g.CurrentSeat())
	assert.Contains(t, []protocol.CommandType{protocol.CmdOrderUp, protocol.CmdPass}, cmd.Type)
	assert.Equal(t, g.CurrentSeat(), cmd.Seat)
}

// Bots in every seat must be able to finish a game without a single rejected move.
func TestBotsPlayFullGame(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 1234} {
		for _, stick := range []bool{false, true} {
			g := game.NewGame(names, game.Options{
				Rand:           rand.New(rand.NewPCG(seed, seed^0x5eed)),
				StickTheDealer: stick,
			})

			steps := 0
			for g.State() != game.GameOver {
				require.Less(t, steps, 100000, "seed %d did not finish", seed)
				steps++

				seat := g.CurrentSeat()
				cmd := Decide(g, seat)
				if cmd.Type == protocol.CmdPlay {
					require.Contains(t, g.LegalPlays(seat), cmd.Card)
				}
				if stick && g.State() == game.CallingHighSuit && seat == g.Dealer() && g.AwaitingAction() {
					require.NotEqual(t, protocol.CmdPass, cmd.Type)
				}
				require.NoError(t, g.Apply(seat, cmd), "seed %d: %s", seed, cmd)
			}

			winner, ok := g.Winner()
			require.True(t, ok)
			assert.GreaterOrEqual(t, winner.GameScore, g.WinningScore())
		}
	}
}
