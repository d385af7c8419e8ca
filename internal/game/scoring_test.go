package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreHand(t *testing.T) {
	tests := []struct {
		name   string
		tricks int
		alone  bool
		want   HandResult
	}{
		{"euchred with none", 0, false, HandResult{MakerTricks: 0, Points: 2, Euchred: true}},
		{"euchred with two", 2, false, HandResult{MakerTricks: 2, Points: 2, Euchred: true}},
		{"lone maker euchred", 1, true, HandResult{MakerTricks: 1, Points: 2, Euchred: true}},
		{"made with three", 3, false, HandResult{MakerTricks: 3, Points: 1, MakersScore: true}},
		{"made with four", 4, false, HandResult{MakerTricks: 4, Points: 1, MakersScore: true}},
		{"lone maker with four", 4, true, HandResult{MakerTricks: 4, Points: 1, MakersScore: true}},
		{"march", 5, false, HandResult{MakerTricks: 5, Points: 2, MakersScore: true, March: true}},
		{"lone march", 5, true, HandResult{MakerTricks: 5, Points: 4, MakersScore: true, March: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreHand(tt.tricks, tt.alone))
		})
	}
}
