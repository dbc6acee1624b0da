package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWinner(t *testing.T) {
	tests := []struct {
		name      string
		players   []*Player
		wantName  string
		wantScore int
	}{
		{
			"empty registry",
			nil,
			NoWinnerName, 0,
		},
		{
			"single player",
			[]*Player{{Name: "Ann", Score: 3}},
			"Ann", 3,
		},
		{
			"strictly highest wins",
			[]*Player{{Name: "A", Score: 3}, {Name: "B", Score: 5}},
			"B", 5,
		},
		{
			"tie goes to earliest joiner",
			[]*Player{{Name: "A", Score: 4}, {Name: "B", Score: 4}},
			"A", 4,
		},
		{
			"all zero scores still produce a winner",
			[]*Player{{Name: "A", Score: 0}, {Name: "B", Score: 0}},
			"A", 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, score := ComputeWinner(tt.players)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}
