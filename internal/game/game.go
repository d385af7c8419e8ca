package game

import (
	"log"
	"math/rand/v2"
	"time"

	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"

	"github.com/google/uuid"
)

// GameState represents the current lifecycle stage of the game.
type GameState string

const (
	PickingDealer    GameState = "PickingDealer"    // Choosing the dealer for the next hand
	DealingHand      GameState = "DealingHand"      // Cards are being dealt, one packet per step
	CallingPickup    GameState = "CallingPickup"    // First round: order up or pass on the up card
	DealerDiscarding GameState = "DealerDiscarding" // Dealer picked up the up card and must discard
	CallingHighSuit  GameState = "CallingHighSuit"  // Second round: name a suit or pass
	PlayingHand      GameState = "PlayingHand"      // Five tricks are played
	GameOver         GameState = "GameOver"         // A team reached the winning score
)

// Notifier receives engine events. The presentation layer provides an implementation.
type Notifier func(event protocol.Event)

// Names are the display names a game is created with. All are required.
type Names struct {
	User         string
	Partner      string
	Opponent1    string
	Opponent2    string
	UserTeam     string
	OpponentTeam string
}

// Options tune a game. The zero value plays standard euchre to 10.
type Options struct {
	ID             string     // Defaults to a new UUID
	Rand           *rand.Rand // Source for shuffles and the first dealer
	WinningScore   int        // Defaults to 10
	DealPattern    []int      // Packet sizes in deal order; each seat must total 5
	DealInterval   int        // Ticks between packets; defaults to 1
	StickTheDealer bool       // Dealer may not pass in the second round
	Notifier       Notifier
}

// ClassicDealPattern is the traditional 3-2 / 2-3 deal.
var ClassicDealPattern = []int{3, 2, 3, 2, 2, 3, 2, 3}

// FiveCardDealPattern deals each seat its whole hand at once.
var FiveCardDealPattern = []int{5, 5, 5, 5}

// Game represents the euchre state machine. It owns all game mutation.
type Game struct {
	ID string

	state   GameState
	teams   [2]*shared.Team // 0: Bottom/Top, 1: Left/Right
	players map[shared.Seat]*shared.Player
	deck    *shared.Deck

	currentPlayer shared.Seat
	dealer        shared.Seat
	leader        shared.Seat
	handNumber    int

	dealPattern  []int
	dealStep     int
	dealInterval int
	dealTicks    int

	upCard      shared.Card
	upCardShown bool
	turnedDown  shared.Suit
	trump       shared.Suit
	maker       shared.Seat
	hasMaker    bool
	alone       bool
	passes      int

	trick        *shared.Trick
	lastTrick    *shared.Trick
	tricksPlayed int

	winningScore   int
	stickTheDealer bool
	winner         int // index into teams, -1 while playing

	rng    *rand.Rand
	notify Notifier
}

// NewGame initializes a new game. The user sits at Bottom with their partner at Top;
// the opponents sit Left and Right.
func NewGame(names Names, opts Options) *Game {
	if opts.ID == "" {
		opts.ID = uuid.New().String()
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.WinningScore <= 0 {
		opts.WinningScore = defaultWinning
	}
	if opts.DealPattern == nil {
		opts.DealPattern = ClassicDealPattern
	}
	if opts.DealInterval <= 0 {
		opts.DealInterval = 1
	}
	validateDealPattern(opts.DealPattern)

	players := map[shared.Seat]*shared.Player{
		shared.Bottom: shared.NewPlayer(names.User, true),
		shared.Left:   shared.NewPlayer(names.Opponent1, false),
		shared.Top:    shared.NewPlayer(names.Partner, false),
		shared.Right:  shared.NewPlayer(names.Opponent2, false),
	}

	g := &Game{
		ID:    opts.ID,
		state: PickingDealer,
		teams: [2]*shared.Team{
			shared.NewTeam(names.UserTeam, shared.Bottom, shared.Top),
			shared.NewTeam(names.OpponentTeam, shared.Left, shared.Right),
		},
		players:        players,
		deck:           nil,
		currentPlayer:  shared.Bottom,
		dealer:         shared.Bottom,
		leader:         shared.Bottom,
		dealPattern:    append([]int{}, opts.DealPattern...),
		dealInterval:   opts.DealInterval,
		turnedDown:     shared.SuitNone,
		trump:          shared.SuitNone,
		winningScore:   opts.WinningScore,
		stickTheDealer: opts.StickTheDealer,
		winner:         -1,
		rng:            opts.Rand,
		notify:         opts.Notifier,
	}
	log.Printf("Game %s: Created. %s and %s (%s) vs %s and %s (%s).", g.ID,
		names.User, names.Partner, names.UserTeam, names.Opponent1, names.Opponent2, names.OpponentTeam)
	return g
}

func validateDealPattern(pattern []int) {
	if len(pattern) == 0 || len(pattern)%shared.NumSeats != 0 {
		log.Panicf("Error: Deal pattern %v must cover every seat the same number of times.", pattern)
	}
	var perSeat [shared.NumSeats]int
	for i, n := range pattern {
		if n <= 0 {
			log.Panicf("Error: Deal pattern %v has an empty packet.", pattern)
		}
		perSeat[i%shared.NumSeats] += n
	}
	for _, total := range perSeat {
		if total != tricksPerHand {
			log.Panicf("Error: Deal pattern %v does not give every seat %d cards.", pattern, tricksPerHand)
		}
	}
}

// Tick advances the state machine by at most one bounded unit of work.
// Decisions (order up, pass, call, discard, play) arrive through the action methods;
// Tick only resolves what those decisions complete.
func (g *Game) Tick() {
	switch g.state {
	case PickingDealer:
		g.pickDealer()
	case DealingHand:
		g.dealTicks++
		if g.dealTicks >= g.dealInterval {
			g.dealTicks = 0
			g.dealPacket()
		}
	case CallingPickup:
		if g.passes == shared.NumSeats {
			g.turnDownUpCard()
		}
	case CallingHighSuit:
		if g.passes == shared.NumSeats {
			g.throwIn()
		}
	case PlayingHand:
		if g.trickComplete() {
			g.endTrick()
		}
	case DealerDiscarding, GameOver:
		// waiting on the dealer, or nothing left to do
	}
}

// pickDealer chooses the dealer and prepares a fresh hand.
func (g *Game) pickDealer() {
	if g.handNumber == 0 {
		g.dealer = shared.RandomSeat(g.rng)
	} else {
		g.dealer = g.dealer.Next()
	}
	g.handNumber++

	g.deck = shared.NewDeck(g.rng)
	for _, p := range g.players {
		p.ClearHand()
	}
	for _, t := range g.teams {
		t.ResetHand()
	}
	g.dealStep = 0
	g.dealTicks = 0
	g.upCard = shared.Card{}
	g.upCardShown = false
	g.turnedDown = shared.SuitNone
	g.trump = shared.SuitNone
	g.hasMaker = false
	g.alone = false
	g.passes = 0
	g.trick = nil
	g.lastTrick = nil
	g.tricksPlayed = 0

	g.currentPlayer = g.dealer.Next()
	g.leader = g.dealer.Next()
	g.state = DealingHand

	log.Printf("Game %s: Hand %d. %s (%s) deals.", g.ID, g.handNumber, g.seat(g.dealer).Name, g.dealer)
	g.emit(protocol.EventDealerPicked, protocol.DealerPickedPayload{GameID: g.ID, Hand: g.handNumber, Dealer: g.dealer})
}

// dealPacket deals the next packet of the pattern to the current seat.
func (g *Game) dealPacket() {
	n := g.dealPattern[g.dealStep]
	g.seat(g.currentPlayer).AddCards(g.deck.Deal(n)...)
	g.dealStep++
	g.currentPlayer = g.currentPlayer.Next()

	if g.dealStep < len(g.dealPattern) {
		return
	}

	// The rest of the deck is the kitty; its top card is turned up.
	up, ok := g.deck.Peek()
	if !ok {
		log.Panicf("Game %s: Kitty is empty after dealing.", g.ID)
	}
	g.upCard = up
	g.upCardShown = true
	g.passes = 0
	g.currentPlayer = g.dealer.Next()
	g.state = CallingPickup

	log.Printf("Game %s: Hand dealt. %s turned up. %s to call.", g.ID, up, g.seat(g.currentPlayer).Name)
	g.emit(protocol.EventHandDealt, protocol.HandDealtPayload{UpCard: up, Dealer: g.dealer})
}

func (g *Game) turnDownUpCard() {
	g.turnedDown = g.upCard.Suit
	g.upCardShown = false
	g.passes = 0
	g.currentPlayer = g.dealer.Next()
	g.state = CallingHighSuit

	log.Printf("Game %s: Everyone passed. %s turned down.", g.ID, g.upCard)
	g.emit(protocol.EventCardTurned, protocol.CardTurnedDownPayload{UpCard: g.upCard})
}

func (g *Game) throwIn() {
	log.Printf("Game %s: Everyone passed twice. Hand %d thrown in.", g.ID, g.handNumber)
	g.emit(protocol.EventHandThrownIn, protocol.HandThrownInPayload{Dealer: g.dealer})
	g.clearHand()
	g.state = PickingDealer
}

// setTrump records the call and who made it.
func (g *Game) setTrump(seat shared.Seat, suit shared.Suit, alone bool, round int) {
	g.trump = suit
	g.maker = seat
	g.hasMaker = true
	g.alone = alone
	g.passes = 0

	log.Printf("Game %s: %s (%s) calls %s%s.", g.ID, g.seat(seat).Name, seat, suit, aloneSuffix(alone))
	g.emit(protocol.EventTrumpCalled, protocol.TrumpCalledPayload{Seat: seat, Trump: suit, Alone: alone, Round: round})
}

func aloneSuffix(alone bool) string {
	if alone {
		return " alone"
	}
	return ""
}

// startPlay sets up the first trick, led by the first active seat left of the dealer.
func (g *Game) startPlay() {
	g.upCardShown = false
	g.tricksPlayed = 0
	g.leader = g.nextActive(g.dealer)
	g.currentPlayer = g.leader
	g.trick = shared.NewTrick(g.leader)
	g.state = PlayingHand
	log.Printf("Game %s: Play begins. %s leads.", g.ID, g.seat(g.leader).Name)
}

// sittingOut reports whether seat is the partner of a lone maker.
func (g *Game) sittingOut(seat shared.Seat) bool {
	return g.alone && g.hasMaker && seat == g.maker.Partner()
}

// nextActive returns the next seat after s that is playing this hand.
func (g *Game) nextActive(s shared.Seat) shared.Seat {
	n := s.Next()
	if g.sittingOut(n) {
		n = n.Next()
	}
	return n
}

func (g *Game) activeSeats() int {
	if g.alone {
		return shared.NumSeats - 1
	}
	return shared.NumSeats
}

func (g *Game) trickComplete() bool {
	return g.trick != nil && len(g.trick.Cards) == g.activeSeats()
}

// endTrick concludes the current trick; the winner leads the next one.
func (g *Game) endTrick() {
	winner := g.trick.Winner(g.trump)
	team := g.teamFor(winner.Seat)
	team.AddTrick()
	g.tricksPlayed++

	log.Printf("Game %s: Trick %d won by %s (%s) with %s.", g.ID, g.tricksPlayed, g.seat(winner.Seat).Name, team.Name, winner.Card)
	g.emit(protocol.EventTrickWon, protocol.TrickWonPayload{
		Winner: winner,
		Cards:  append([]shared.PlayedCard{}, g.trick.Cards...),
		Trick:  g.tricksPlayed,
	})

	g.lastTrick = g.trick
	g.leader = winner.Seat
	g.currentPlayer = winner.Seat

	if g.tricksPlayed == tricksPerHand {
		g.endHand()
		return
	}
	g.trick = shared.NewTrick(g.leader)
}

// endHand scores the hand, clears the table and checks for a winner.
func (g *Game) endHand() {
	makers := g.teamFor(g.maker)
	defenders := g.otherTeam(makers)

	result := ScoreHand(makers.HandScore, g.alone)
	scoring := makers
	if !result.MakersScore {
		scoring = defenders
	}
	scoring.AdvanceGameScore(result.Points)
	makers.ResetHand()
	defenders.ResetHand()

	log.Printf("Game %s: Hand %d over. %s took %d tricks; %s scores %d. Score %d-%d.", g.ID, g.handNumber,
		makers.Name, result.MakerTricks, scoring.Name, result.Points, g.teams[0].GameScore, g.teams[1].GameScore)
	g.emit(protocol.EventHandScored, protocol.HandScoredPayload{
		MakerTeam:   makers.Name,
		MakerTricks: result.MakerTricks,
		ScoringTeam: scoring.Name,
		Points:      result.Points,
		Euchred:     result.Euchred,
		March:       result.March,
		Team1Score:  g.teams[0].GameScore,
		Team2Score:  g.teams[1].GameScore,
	})

	g.clearHand()

	for i, t := range g.teams {
		if t.Won(g.winningScore) {
			g.winner = i
			g.state = GameOver
			log.Printf("Game %s: Game Over! %s (ID: %s) wins %d-%d.", g.ID, t.Name, t.ID, g.teams[0].GameScore, g.teams[1].GameScore)
			g.emit(protocol.EventGameOver, protocol.GameOverPayload{
				WinningTeamID: t.ID,
				WinningTeam:   t.Name,
				FinalScoreT1:  g.teams[0].GameScore,
				FinalScoreT2:  g.teams[1].GameScore,
				Hands:         g.handNumber,
			})
			return
		}
	}
	g.state = PickingDealer
}

// clearHand empties hands, deck and trick state between hands.
func (g *Game) clearHand() {
	for _, p := range g.players {
		p.ClearHand()
	}
	g.deck = nil
	g.trick = nil
	g.upCardShown = false
	g.passes = 0
}

// --- Utility Helpers ---

// seat returns the player at s. Every seat is populated at construction,
// so a miss is an engine bug.
func (g *Game) seat(s shared.Seat) *shared.Player {
	p, ok := g.players[s]
	if !ok {
		log.Panicf("Game %s: No player seated at %s.", g.ID, s)
	}
	return p
}

func (g *Game) teamFor(s shared.Seat) *shared.Team {
	for _, t := range g.teams {
		if t.Has(s) {
			return t
		}
	}
	log.Panicf("Game %s: Seat %s belongs to no team.", g.ID, s)
	return nil
}

func (g *Game) otherTeam(t *shared.Team) *shared.Team {
	if g.teams[0] == t {
		return g.teams[1]
	}
	return g.teams[0]
}

// emit sends an event to the notifier, if any.
func (g *Game) emit(eventType string, payload interface{}) {
	if g.notify == nil {
		return
	}
	event, err := protocol.NewEvent(eventType, payload)
	if err != nil {
		log.Printf("Game %s: Error creating %s event: %v", g.ID, eventType, err)
		return
	}
	g.notify(event)
}
