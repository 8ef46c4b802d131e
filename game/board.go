package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type BoardConfig struct {
	Rows, Cols int
	NumMines   int
	Seed       int64
}

// Validate checks the dimensions and mine count of a board. There must be at
// least one cell that is not a mine.
func (config BoardConfig) Validate() error {
	if config.Rows <= 0 || config.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "board must have positive dimensions, got %dx%d", config.Rows, config.Cols)
	}
	if config.NumMines < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "mine count must not be negative, got %d", config.NumMines)
	}
	if config.NumMines >= config.Rows*config.Cols {
		return errors.Wrapf(ErrInvalidConfiguration, "%d mines do not fit a %dx%d board", config.NumMines, config.Rows, config.Cols)
	}
	return nil
}

type Board struct {
	rows, cols int // in number of cells
	numMines   int
	cells      [][]Cell

	state       BoardState
	hasPlanted  bool
	numRevealed int

	rand *rand.Rand
}

// NewBoard allocates a fully covered board. Mines are planted by the first
// reveal, so that the first selected cell is never a mine.
func NewBoard(config BoardConfig) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := &Board{
		state:    InProgress,
		rows:     config.Rows,
		cols:     config.Cols,
		numMines: config.NumMines,
		cells:    make([][]Cell, config.Rows),
		rand:     rand.New(rand.NewSource(config.Seed)),
	}

	cellIdx := 0
	for row := 0; row < config.Rows; row++ {
		board.cells[row] = make([]Cell, config.Cols)

		for col := 0; col < config.Cols; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.idx = cellIdx
			cell.row, cell.col = row, col
			cellIdx++
		}
	}

	return board, nil
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) NumRevealed() int {
	return board.numRevealed
}

func (board *Board) State() BoardState {
	return board.state
}

// Rand is the random source owned by the board; directors draw from it so a
// seeded round is reproducible.
func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.rows && col < board.cols {
		return &board.cells[row][col]
	}
	return nil
}

// Cells lists every cell in row-major order
func (board *Board) Cells() []*Cell {
	out := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			out = append(out, &board.cells[row][col])
		}
	}
	return out
}

func (board *Board) cellAtIdx(idx int) *Cell {
	return &board.cells[idx/board.cols][idx%board.cols]
}

// plantMines picks numMines distinct cells uniformly at random among all
// cells but excluded, and computes the adjacent mine counts
func (board *Board) plantMines(excluded *Cell) {
	board.hasPlanted = true

	// Store cell indexes, to shuffle later and fill mines
	cellIndexes := make([]int, 0, board.NumCells()-1)
	for idx := 0; idx < board.NumCells(); idx++ {
		if idx != excluded.idx {
			cellIndexes = append(cellIndexes, idx)
		}
	}

	// Partial Fisher-Yates: only the first numMines slots need to be drawn
	for i := 0; i < board.numMines; i++ {
		j := i + board.rand.Intn(len(cellIndexes)-i)
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
		board.cellAtIdx(cellIndexes[i]).setMine()
	}

	Log.WithFields(logrus.Fields{
		"rows":     board.rows,
		"cols":     board.cols,
		"mines":    board.numMines,
		"excluded": excluded.Coord().String(),
	}).Debug("planted mines")
}

// Reveal uncovers the cell at row, col. The first reveal of a round plants the
// mines. Revealing a mine loses the round; revealing a cell with no adjacent
// mines floods its zero-bordered region.
func (board *Board) Reveal(row, col int) (*RevealOutcome, error) {
	if board.state.IsOver() {
		return nil, errors.Wrapf(ErrRoundOver, "board is %s", board.state)
	}

	cell := board.CellAt(row, col)
	if cell == nil {
		return nil, errors.Wrapf(ErrInvalidCell, "(%d, %d) is outside the %dx%d board", row, col, board.rows, board.cols)
	}
	if !cell.IsCovered() {
		return nil, errors.Wrapf(ErrAlreadyRevealed, "%s", cell)
	}

	if !board.hasPlanted {
		board.plantMines(cell)
	}

	outcome := &RevealOutcome{}

	if cell.isMine {
		cell.detonate()
		board.state = Lost
		outcome.add(cell)
	} else {
		cascade(cell, outcome.add)

		if board.numRevealed == board.NumCells()-board.numMines {
			board.state = Won
		}
	}
	outcome.Status = board.state

	Log.WithFields(logrus.Fields{
		"cell":     cell.Coord().String(),
		"revealed": len(outcome.Revealed),
		"status":   board.state.String(),
	}).Debug("revealed cell")

	return outcome, nil
}

// IsWon reports whether every non-mine cell is revealed and no mine was
// detonated
func (board *Board) IsWon() bool {
	for _, cell := range board.Cells() {
		if cell.isMine {
			if !cell.IsCovered() {
				return false
			}
		} else if !cell.isRevealed {
			return false
		}
	}
	return true
}

// IsLost reports whether a mine was detonated
func (board *Board) IsLost() bool {
	numDetonated := 0
	for _, cell := range board.Cells() {
		if cell.isDetonated {
			numDetonated++
		}
	}
	return numDetonated == 1
}

// Snapshot returns the display codes of every cell. Once the round is lost,
// the mines that were not detonated are shown as exposed.
func (board *Board) Snapshot() Grid {
	grid := make(Grid, board.rows)
	for row := range board.cells {
		grid[row] = make([]CellState, board.cols)

		for col := range board.cells[row] {
			cell := &board.cells[row][col]
			state := cell.State()
			if board.state == Lost && cell.isMine && !cell.isDetonated {
				state = MineExposed
			}
			grid[row][col] = state
		}
	}
	return grid
}

// recount restores the round state of a board whose cells were set directly
func (board *Board) recount() {
	board.numMines = 0
	board.numRevealed = 0
	for _, cell := range board.Cells() {
		if cell.isMine {
			board.numMines++
		}
		if cell.isRevealed {
			board.numRevealed++
		}
	}

	switch {
	case board.IsLost():
		board.state = Lost
	case board.numRevealed == board.NumCells()-board.numMines:
		board.state = Won
	default:
		board.state = InProgress
	}
}
