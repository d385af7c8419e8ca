package protocol

import (
	"encoding/json"

	"euchre-game/internal/shared"
)

// Event types reported by the engine.
const (
	EventDealerPicked = "dealer_picked"
	EventHandDealt    = "hand_dealt"
	EventTrumpCalled  = "trump_called"
	EventCardTurned   = "card_turned_down"
	EventHandThrownIn = "hand_thrown_in"
	EventCardPlayed   = "card_played"
	EventTrickWon     = "trick_won"
	EventHandScored   = "hand_scored"
	EventGameOver     = "game_over"
)

// Event represents a lifecycle notification from the engine to the presentation layer.
type Event struct {
	Type    string          `json:"type"`              // Type of the event (e.g., "trick_won")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Engine -> Presentation Payload Structs ---

type DealerPickedPayload struct {
	GameID string      `json:"game_id"`
	Hand   int         `json:"hand"`
	Dealer shared.Seat `json:"dealer"`
}

type HandDealtPayload struct {
	UpCard shared.Card `json:"up_card"`
	Dealer shared.Seat `json:"dealer"`
}

type TrumpCalledPayload struct {
	Seat  shared.Seat `json:"seat"`
	Trump shared.Suit `json:"trump"`
	Alone bool        `json:"alone"`
	Round int         `json:"round"` // 1 = ordered up, 2 = named
}

type CardTurnedDownPayload struct {
	UpCard shared.Card `json:"up_card"`
}

type HandThrownInPayload struct {
	Dealer shared.Seat `json:"dealer"`
}

type CardPlayedPayload struct {
	Seat shared.Seat `json:"seat"`
	Card shared.Card `json:"card"`
}

type TrickWonPayload struct {
	Winner shared.PlayedCard   `json:"winner"`
	Cards  []shared.PlayedCard `json:"cards"`
	Trick  int                 `json:"trick"`
}

type HandScoredPayload struct {
	MakerTeam   string `json:"maker_team"`
	MakerTricks int    `json:"maker_tricks"`
	ScoringTeam string `json:"scoring_team"`
	Points      int    `json:"points"`
	Euchred     bool   `json:"euchred"`
	March       bool   `json:"march"`
	Team1Score  int    `json:"team1_score"`
	Team2Score  int    `json:"team2_score"`
}

type GameOverPayload struct {
	WinningTeamID string `json:"winning_team_id"`
	WinningTeam   string `json:"winning_team"`
	FinalScoreT1  int    `json:"final_score_t1"`
	FinalScoreT2  int    `json:"final_score_t2"`
	Hands         int    `json:"hands"`
}

// NewEvent builds an event, marshalling payload when present.
func NewEvent(eventType string, payload interface{}) (Event, error) {
	if payload == nil {
		return Event{Type: eventType}, nil
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Payload: payloadBytes}, nil
}

// Encode returns the JSON form of the event.
func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}
