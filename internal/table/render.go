package table

import (
	"fmt"
	"log"
	"strings"

	"euchre-game/internal/game"
	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"
)

const helpText = `Commands:
  o, oa             order up the turned card (oa: alone)
  p                 pass
  c <suit> [alone]  name trump in the second round (h, d, c, s)
  d <card>          discard after picking up, e.g. d 9c
  <card>            play a card, e.g. js, 10h, A♥
  pause             pause or resume the table
  t                 step the engine once
  q                 quit
`

// notify prints engine events as they happen.
func (t *Table) notify(ev protocol.Event) {
	line, err := t.describe(ev)
	if err != nil {
		log.Printf("Error decoding %s event: %v", ev.Type, err)
		return
	}
	if line != "" {
		t.printf("%s\n", line)
	}
	t.lastPrompt = ""
}

func (t *Table) describe(ev protocol.Event) (string, error) {
	switch ev.Type {
	case protocol.EventDealerPicked:
		var p protocol.DealerPickedPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		return fmt.Sprintf("\n-- Hand %d. %s deals.", p.Hand, t.name(p.Dealer)), nil

	case protocol.EventHandDealt:
		var p protocol.HandDealtPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s is turned up.", p.UpCard), nil

	case protocol.EventTrumpCalled:
		var p protocol.TrumpCalledPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		verb := "orders up"
		if p.Round == 2 {
			verb = "calls"
		}
		suffix := ""
		if p.Alone {
			suffix = ", going alone"
		}
		return fmt.Sprintf("%s %s %s%s.", t.name(p.Seat), verb, p.Trump, suffix), nil

	case protocol.EventCardTurned:
		var p protocol.CardTurnedDownPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		return fmt.Sprintf("Everyone passed. %s is turned down.", p.UpCard), nil

	case protocol.EventHandThrownIn:
		return "Everyone passed again. The hand is thrown in.", nil

	case protocol.EventCardPlayed:
		var p protocol.CardPlayedPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		return fmt.Sprintf("  %s plays %s", t.name(p.Seat), p.Card), nil

	case protocol.EventTrickWon:
		var p protocol.TrickWonPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s takes trick %d with %s.", t.name(p.Winner.Seat), p.Trick, p.Winner.Card), nil

	case protocol.EventHandScored:
		var p protocol.HandScoredPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		teams := t.game.Teams()
		how := fmt.Sprintf("%s took %d", p.MakerTeam, p.MakerTricks)
		switch {
		case p.Euchred:
			how += " and were euchred"
		case p.March:
			how += ", a march"
		}
		return fmt.Sprintf("%s. %s +%d. Score: %s %d, %s %d.", how, p.ScoringTeam, p.Points,
			teams[0].Name, p.Team1Score, teams[1].Name, p.Team2Score), nil

	case protocol.EventGameOver:
		var p protocol.GameOverPayload
		if err := ev.Decode(&p); err != nil {
			return "", err
		}
		return fmt.Sprintf("\nGame over after %d hands: %d to %d.", p.Hands, p.FinalScoreT1, p.FinalScoreT2), nil
	}
	return "", nil
}

// prompt tells the human what they can do, once per decision point.
func (t *Table) prompt() {
	g := t.game
	played := 0
	if trick := g.Trick(); trick != nil {
		played = len(trick.Cards)
	}
	key := fmt.Sprintf("%s/%d/%d/%d", g.State(), g.HandNumber(), g.TricksPlayed(), played)
	if key == t.lastPrompt {
		return
	}
	t.lastPrompt = key

	hand := g.Player(t.human).Hand
	shared.SortHand(hand, g.Trump())
	t.printf("Your hand: %s\n", joinCards(hand))

	switch g.State() {
	case game.CallingPickup:
		up, _ := g.UpCard()
		t.printf("%s is up. Order it up (o, oa) or pass (p)?\n", up)
	case game.CallingHighSuit:
		if g.StickTheDealer() && g.Dealer() == t.human {
			t.printf("%s was turned down. You are stuck: name trump (c <suit>).\n", g.TurnedDown())
		} else {
			t.printf("%s was turned down. Name trump (c <suit>) or pass (p)?\n", g.TurnedDown())
		}
	case game.DealerDiscarding:
		t.printf("Trump is %s. Discard a card (d <card>).\n", g.Trump())
	case game.PlayingHand:
		t.printf("Trump is %s. Your play: %s\n", g.Trump(), joinCards(g.LegalPlays(t.human)))
	}
	if t.interactive {
		t.printf("> ")
	}
}

func describeBotCommand(cmd protocol.Command) string {
	switch cmd.Type {
	case protocol.CmdPass:
		return "passes"
	case protocol.CmdDiscard:
		return "discards"
	}
	return cmd.String()
}

func joinCards(cards []shared.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
