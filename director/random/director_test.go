package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
)

func TestDirectorPlaysUntilRoundEnds(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		board, err := game.NewBoard(game.Beginner.BoardConfig(seed))
		require.NoError(t, err)

		director := &Director{}
		director.Init(board)

		moves := 0
		for !board.State().IsOver() {
			next, ok := director.Act()
			require.True(t, ok)
			require.True(t, board.CellAt(next.Row, next.Col).IsCovered(), "%s", next)

			_, err := board.Reveal(next.Row, next.Col)
			require.NoError(t, err)
			moves++
		}
		assert.LessOrEqual(t, moves, board.NumCells())

		director.End()
		_, ok := director.Act()
		assert.False(t, ok)
	}
}

func TestDirectorIsSeeded(t *testing.T) {
	play := func() []game.Coord {
		board, err := game.NewBoard(game.Intermediate.BoardConfig(3))
		require.NoError(t, err)

		director := &Director{}
		director.Init(board)
		defer director.End()

		var moves []game.Coord
		for !board.State().IsOver() {
			next, ok := director.Act()
			require.True(t, ok)
			_, err := board.Reveal(next.Row, next.Col)
			require.NoError(t, err)
			moves = append(moves, next)
		}
		return moves
	}

	assert.Equal(t, play(), play())
}

func TestDirectorDrivesConsoleRound(t *testing.T) {
	config := game.NewGameConfig()
	config.Preset = "beginner"
	config.Seed = 5
	config.Director = &Director{}

	var out strings.Builder
	require.NoError(t, game.Run(config, strings.NewReader("1 -1"), &out))

	assert.Contains(t, out.String(), "Director reveals cell 1 at ")
	assert.True(t, strings.Contains(out.String(), "You win!") || strings.Contains(out.String(), "You lose."))
}
