package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"euchre-game/internal/config"
	"euchre-game/internal/database"
	"euchre-game/internal/game"
	"euchre-game/internal/table"

	"github.com/mattn/go-isatty"
)

func main() {
	history := flag.Bool("history", false, "list recorded games and exit")
	player := flag.String("results", "", "list recorded games for a player and exit")
	autoplay := flag.Bool("autoplay", false, "let a bot play your seat")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.Println("Starting Euchre...")

	var db *database.Service
	if cfg.DBDSN != "" {
		db, err = database.New(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer db.Close()
	}

	if *history || *player != "" {
		if err := listResults(db, *player); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	pattern, _ := cfg.Pattern()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed %d", seed)

	opts := table.Options{
		Out:         os.Stdout,
		BotDelay:    cfg.BotDelay,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		Autoplay:    *autoplay,
	}
	if db != nil {
		opts.Store = db
	}

	tb := table.New(cfg.Names(), game.Options{
		Rand:           rand.New(rand.NewPCG(seed, seed>>1)),
		WinningScore:   cfg.WinningScore,
		DealPattern:    pattern,
		DealInterval:   cfg.DealInterval,
		StickTheDealer: cfg.StickTheDealer,
	}, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tb.Run(ctx, os.Stdin, cfg.Tick); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Game %s: %v", tb.Game().ID, err)
		fmt.Fprintln(os.Stderr, err)
	}
}

func listResults(db *database.Service, player string) error {
	if db == nil {
		return errors.New("no results ledger configured (set EUCHRE_DB_DSN)")
	}

	var results []database.GameResult
	var err error
	if player != "" {
		results, err = db.GetByPlayer(player)
	} else {
		results, err = db.GetAll()
	}
	if errors.Is(err, sql.ErrNoRows) || (err == nil && len(results) == 0) {
		fmt.Println("No games recorded.")
		return nil
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s  %s & %s %d - %d %s & %s  (%s won, %d hands)\n", r.CreatedAt,
			r.Player1, r.Player3, r.Team1Score, r.Team2Score, r.Player2, r.Player4, r.Winner, r.Hands)
	}
	return nil
}
