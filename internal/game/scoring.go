package game

// Points awarded at the end of a hand.
const (
	pointsMade      = 1 // makers take 3 or 4 tricks
	pointsMarch     = 2 // makers take all 5
	pointsLoneMarch = 4 // a lone maker takes all 5
	pointsEuchre    = 2 // makers take fewer than 3; awarded to the defenders

	tricksPerHand  = 5
	tricksToMake   = 3
	defaultWinning = 10
)

// HandResult describes how a finished hand was scored.
type HandResult struct {
	MakerTricks int
	Points      int
	MakersScore bool // false when the makers were euchred
	March       bool
	Euchred     bool
}

// ScoreHand applies the standard euchre scoring table to the makers' trick count.
func ScoreHand(makerTricks int, alone bool) HandResult {
	switch {
	case makerTricks >= tricksPerHand && alone:
		return HandResult{MakerTricks: makerTricks, Points: pointsLoneMarch, MakersScore: true, March: true}
	case makerTricks >= tricksPerHand:
		return HandResult{MakerTricks: makerTricks, Points: pointsMarch, MakersScore: true, March: true}
	case makerTricks >= tricksToMake:
		return HandResult{MakerTricks: makerTricks, Points: pointsMade, MakersScore: true}
	default:
		return HandResult{MakerTricks: makerTricks, Points: pointsEuchre, Euchred: true}
	}
}
