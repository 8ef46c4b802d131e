package random

import (
	"github.com/they4kman/termsweep/game"
)

// Director reveals covered cells in a random order drawn from the board's
// random source
type Director struct {
	board *game.Board
	order []game.Coord
	next  int
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.next = 0
	director.order = make([]game.Coord, 0, board.NumCells())
	for _, cell := range board.Cells() {
		director.order = append(director.order, cell.Coord())
	}

	board.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.Coord, bool) {
	if director.board == nil {
		return game.Coord{}, false
	}

	for ; director.next < len(director.order); director.next++ {
		coord := director.order[director.next]
		if director.board.CellAt(coord.Row, coord.Col).IsCovered() {
			director.next++
			return coord, true
		}
	}
	return game.Coord{}, false
}

func (director *Director) End() {
	director.board = nil
	director.order = nil
}
