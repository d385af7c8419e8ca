package database

import (
	"time"

	"euchre-game/internal/game"
	"euchre-game/internal/shared"
)

// GameResult is one finished game. Players are listed in seat order Bottom, Left, Top, Right;
// team 1 is Bottom/Top.
type GameResult struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"created_at"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Player3    string `json:"player3"`
	Player4    string `json:"player4"`
	Team1Name  string `json:"team1_name"`
	Team2Name  string `json:"team2_name"`
	Team1Score int    `json:"team1_score"`
	Team2Score int    `json:"team2_score"`
	Winner     string `json:"winner"`
	Hands      int    `json:"hands"`
}

// FromGame builds the result row for a game.
func FromGame(g *game.Game, createdAt time.Time) GameResult {
	teams := g.Teams()
	result := GameResult{
		ID:         g.ID,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
		Player1:    g.Player(shared.Bottom).Name,
		Player2:    g.Player(shared.Left).Name,
		Player3:    g.Player(shared.Top).Name,
		Player4:    g.Player(shared.Right).Name,
		Team1Name:  teams[0].Name,
		Team2Name:  teams[1].Name,
		Team1Score: teams[0].GameScore,
		Team2Score: teams[1].GameScore,
		Hands:      g.HandNumber(),
	}
	if winner, ok := g.Winner(); ok {
		result.Winner = winner.Name
	}
	return result
}
