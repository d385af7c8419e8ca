package protocol

import (
	"errors"
	"fmt"
	"strings"

	"euchre-game/internal/shared"
)

// CommandType names a decision forwarded into the engine.
type CommandType string

const (
	CmdOrderUp  CommandType = "order_up"
	CmdPass     CommandType = "pass"
	CmdDiscard  CommandType = "discard"
	CmdCallSuit CommandType = "call_suit"
	CmdPlay     CommandType = "play"
	CmdTick     CommandType = "tick"
	CmdPause    CommandType = "pause"
	CmdQuit     CommandType = "quit"
	CmdHelp     CommandType = "help"
)

var ErrEmptyCommand = errors.New("empty command")

// Command is a user or bot decision. Seat is filled in by whoever forwards it.
type Command struct {
	Type  CommandType `json:"type"`
	Seat  shared.Seat `json:"seat"`
	Card  shared.Card `json:"card,omitempty"`
	Suit  shared.Suit `json:"suit,omitempty"`
	Alone bool        `json:"alone,omitempty"`
}

func (c Command) String() string {
	switch c.Type {
	case CmdOrderUp:
		if c.Alone {
			return "order up (alone)"
		}
		return "order up"
	case CmdCallSuit:
		if c.Alone {
			return fmt.Sprintf("call %s (alone)", c.Suit)
		}
		return fmt.Sprintf("call %s", c.Suit)
	case CmdDiscard:
		return fmt.Sprintf("discard %s", c.Card)
	case CmdPlay:
		return fmt.Sprintf("play %s", c.Card)
	}
	return string(c.Type)
}

// ParseCommand turns a typed line into a command.
//
//	p | pass           pass
//	o | oa             order up, order up alone
//	c <suit> [alone]   call a suit
//	d <card>           discard
//	<card> | play <card>
//	t | tick, q | quit, pause, help
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	alone := len(fields) > 1 && (fields[len(fields)-1] == "alone" || fields[len(fields)-1] == "a")

	switch fields[0] {
	case "p", "pass":
		return Command{Type: CmdPass}, nil
	case "o", "order", "pickup":
		return Command{Type: CmdOrderUp, Alone: alone}, nil
	case "oa":
		return Command{Type: CmdOrderUp, Alone: true}, nil
	case "c", "call":
		if len(fields) < 2 {
			return Command{}, errors.New("call needs a suit")
		}
		suit, err := shared.ParseSuit(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CmdCallSuit, Suit: suit, Alone: alone}, nil
	case "d", "discard":
		if len(fields) < 2 {
			return Command{}, errors.New("discard needs a card")
		}
		card, err := shared.ParseCard(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CmdDiscard, Card: card}, nil
	case "play":
		if len(fields) < 2 {
			return Command{}, errors.New("play needs a card")
		}
		card, err := shared.ParseCard(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CmdPlay, Card: card}, nil
	case "t", "tick":
		return Command{Type: CmdTick}, nil
	case "pause":
		return Command{Type: CmdPause}, nil
	case "q", "quit", "exit":
		return Command{Type: CmdQuit}, nil
	case "h", "help", "?":
		return Command{Type: CmdHelp}, nil
	}

	// A bare card is a play.
	card, err := shared.ParseCard(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("unknown command %q", line)
	}
	return Command{Type: CmdPlay, Card: card}, nil
}
