package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"euchre-game/internal/bot"
	"euchre-game/internal/database"
	"euchre-game/internal/game"
	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"
)

// ResultStore records finished games.
type ResultStore interface {
	Insert(result database.GameResult) error
}

// Options configure a table.
type Options struct {
	Out         io.Writer
	BotDelay    int         // Loop ticks between bot moves
	Store       ResultStore // Optional
	Interactive bool        // Print a "> " prompt after each block of output
	Autoplay    bool        // A bot plays the human's seat too
}

// Table drives one game from a terminal: it ticks the engine at a fixed rate,
// forwards typed commands for the human and paces the bots.
type Table struct {
	game   *game.Game
	human  shared.Seat
	brains map[shared.Seat]bot.Brain
	out    io.Writer
	store  ResultStore

	botDelay    int
	botWait     int
	interactive bool
	autoplay    bool
	paused      bool
	recorded    bool
	lastPrompt  string
}

// New seats the configured players and creates the game. The table owns the game's notifier.
func New(names game.Names, gameOpts game.Options, opts Options) *Table {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	t := &Table{
		human:       shared.Bottom,
		brains:      map[shared.Seat]bot.Brain{},
		out:         opts.Out,
		store:       opts.Store,
		botDelay:    opts.BotDelay,
		interactive: opts.Interactive,
		autoplay:    opts.Autoplay,
	}
	for _, s := range shared.Seats() {
		if s != t.human || t.autoplay {
			t.brains[s] = bot.StandardBot{}
		}
	}
	gameOpts.Notifier = t.notify
	t.game = game.NewGame(names, gameOpts)
	return t
}

// Game exposes the engine for read-only queries.
func (t *Table) Game() *game.Game { return t.game }

// Run plays until the game ends, the user quits or ctx is cancelled.
func (t *Table) Run(ctx context.Context, in io.Reader, tick time.Duration) error {
	lines := make(chan string)
	go readLines(in, lines)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	t.printf("Euchre: %s and %s vs %s and %s. First to %d. Type help for commands.\n",
		t.name(shared.Bottom), t.name(shared.Top), t.name(shared.Left), t.name(shared.Right), t.game.WinningScore())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				if !t.autoplay {
					log.Printf("Game %s: Input closed, leaving the table.", t.game.ID)
					return nil
				}
				lines = nil
				continue
			}
			if quit := t.handleLine(line); quit {
				return nil
			}

		case <-ticker.C:
			t.step()
			if t.game.State() == game.GameOver {
				return t.finish()
			}
		}
	}
}

// step performs one loop tick: a bot move, an engine tick, or nothing while the human decides.
func (t *Table) step() {
	g := t.game
	if t.paused || g.State() == game.GameOver {
		return
	}
	if !g.AwaitingAction() {
		g.Tick()
		return
	}

	seat := g.CurrentSeat()
	brain, isBot := t.brains[seat]
	if !isBot {
		t.prompt()
		return
	}

	if t.botWait < t.botDelay {
		t.botWait++
		return
	}
	t.botWait = 0

	cmd := brain.Decide(g, seat)
	if err := g.Apply(seat, cmd); err != nil {
		// Bots only choose legal moves; a rejection is an engine or bot bug.
		log.Panicf("Game %s: Bot at %s made an illegal move %s: %v", g.ID, seat, cmd, err)
	}
	if cmd.Type == protocol.CmdPass || cmd.Type == protocol.CmdDiscard {
		t.printf("%s %s.\n", t.name(seat), describeBotCommand(cmd))
	}
}

// handleLine applies one typed command and reports whether the user quit.
func (t *Table) handleLine(line string) bool {
	cmd, err := protocol.ParseCommand(line)
	if errors.Is(err, protocol.ErrEmptyCommand) {
		t.lastPrompt = ""
		return false
	}
	if err != nil {
		t.printf("%v. Type help for commands.\n", err)
		return false
	}

	switch cmd.Type {
	case protocol.CmdQuit:
		t.printf("Leaving the table.\n")
		return true
	case protocol.CmdHelp:
		t.printf("%s", helpText)
		t.lastPrompt = ""
		return false
	case protocol.CmdPause:
		t.paused = !t.paused
		if t.paused {
			t.printf("Paused. Type pause again to resume, or t to step.\n")
		} else {
			t.printf("Resumed.\n")
		}
		return false
	case protocol.CmdTick:
		t.game.Tick()
		return false
	}

	if t.autoplay {
		t.printf("Autoplay is on; your seat is played by a bot.\n")
		return false
	}
	if err := t.game.Apply(t.human, cmd); err != nil {
		t.printf("Can't %s: %v.\n", cmd, unwrapAction(err))
		t.lastPrompt = ""
		return false
	}
	return false
}

// finish announces the winner and records the result once.
func (t *Table) finish() error {
	if t.recorded {
		return nil
	}
	t.recorded = true

	if winner, ok := t.game.Winner(); ok {
		t.printf("%s win the game!\n", winner.Name)
	}
	if t.store == nil {
		return nil
	}
	if err := t.store.Insert(database.FromGame(t.game, time.Now())); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	log.Printf("Game %s: Result recorded.", t.game.ID)
	return nil
}

func (t *Table) name(s shared.Seat) string {
	return t.game.Player(s).Name
}

func (t *Table) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func unwrapAction(err error) error {
	var actionErr *game.ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Err
	}
	return err
}
