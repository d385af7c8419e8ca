package config

import (
	"errors"
	"fmt"
	"time"

	"euchre-game/internal/game"

	"github.com/joeshaw/envdecode"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the runtime settings, read from the environment (and a .env file if present).
type Config struct {
	PlayerName       string        `env:"EUCHRE_PLAYER_NAME,default=You"`
	PartnerName      string        `env:"EUCHRE_PARTNER_NAME,default=Partner"`
	Opponent1Name    string        `env:"EUCHRE_OPPONENT1_NAME,default=Lefty"`
	Opponent2Name    string        `env:"EUCHRE_OPPONENT2_NAME,default=Righty"`
	TeamName         string        `env:"EUCHRE_TEAM_NAME,default=Us"`
	OpponentTeamName string        `env:"EUCHRE_OPPONENT_TEAM_NAME,default=Them"`
	WinningScore     int           `env:"EUCHRE_WINNING_SCORE,default=10"`
	StickTheDealer   bool          `env:"EUCHRE_STICK_THE_DEALER,default=false"`
	DealPattern      string        `env:"EUCHRE_DEAL_PATTERN,default=classic"`
	DealInterval     int           `env:"EUCHRE_DEAL_INTERVAL,default=6"`
	Tick             time.Duration `env:"EUCHRE_TICK,default=16ms"`
	// Ticks between bot moves
	BotDelay         int           `env:"EUCHRE_BOT_DELAY,default=45"`
	// Zero picks a time-based seed
	Seed             uint64        `env:"EUCHRE_SEED"`
	DBDriver         string        `env:"EUCHRE_DB_DRIVER,default=sqlite3"`
	// Empty disables the results ledger
	DBDSN            string        `env:"EUCHRE_DB_DSN"`
	LogFile          string        `env:"EUCHRE_LOG_FILE,default=euchre.log"`
}

// Load decodes the configuration and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.WinningScore <= 0 {
		return fmt.Errorf("config: EUCHRE_WINNING_SCORE must be positive, got %d", c.WinningScore)
	}
	if c.DealInterval <= 0 {
		return fmt.Errorf("config: EUCHRE_DEAL_INTERVAL must be positive, got %d", c.DealInterval)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("config: EUCHRE_TICK must be positive, got %s", c.Tick)
	}
	if c.BotDelay < 0 {
		return fmt.Errorf("config: EUCHRE_BOT_DELAY must not be negative, got %d", c.BotDelay)
	}
	if _, err := c.Pattern(); err != nil {
		return err
	}
	return nil
}

// Pattern maps EUCHRE_DEAL_PATTERN to packet sizes.
func (c Config) Pattern() ([]int, error) {
	switch c.DealPattern {
	case "classic", "":
		return game.ClassicDealPattern, nil
	case "five":
		return game.FiveCardDealPattern, nil
	}
	return nil, fmt.Errorf("config: unknown EUCHRE_DEAL_PATTERN %q (want classic or five)", c.DealPattern)
}

// Names returns the display names for a new game.
func (c Config) Names() game.Names {
	return game.Names{
		User:         c.PlayerName,
		Partner:      c.PartnerName,
		Opponent1:    c.Opponent1Name,
		Opponent2:    c.Opponent2Name,
		UserTeam:     c.TeamName,
		OpponentTeam: c.OpponentTeamName,
	}
}
