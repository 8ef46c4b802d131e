package game

import "fmt"

type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

type Cell struct {
	board *Board

	row, col int
	idx      int
	numMines int

	isMine, isRevealed, isDetonated bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Coord() Coord {
	return Coord{Row: cell.row, Col: cell.col}
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsCovered() bool {
	return !cell.isRevealed && !cell.isDetonated
}

// State returns the display code of the cell. Exposure of the remaining mines
// after a loss is decided by the board snapshot, not here.
func (cell *Cell) State() CellState {
	switch {
	case cell.isDetonated:
		return MineDetonated
	case cell.isRevealed:
		return CellState(cell.numMines)
	default:
		return Covered
	}
}

var neighborOffsets = []Coord{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// Neighbors returns the up to 8 cells surrounding this one, clipped at the
// board edges
func (cell *Cell) Neighbors() []*Cell {
	return cell.appendNeighbors(make([]*Cell, 0, len(neighborOffsets)))
}

func (cell *Cell) appendNeighbors(out []*Cell) []*Cell {
	for _, offset := range neighborOffsets {
		if neighbor := cell.board.CellAt(cell.row+offset.Row, cell.col+offset.Col); neighbor != nil {
			out = append(out, neighbor)
		}
	}
	return out
}

func (cell *Cell) reveal() {
	if !cell.isRevealed {
		cell.isRevealed = true
		cell.board.numRevealed++
	}
}

func (cell *Cell) detonate() {
	cell.isDetonated = true
}

func (cell *Cell) setMine() {
	if cell.isMine {
		return
	}
	cell.isMine = true

	for _, neighbor := range cell.Neighbors() {
		neighbor.numMines++
	}
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		if cell.isDetonated {
			return "*"
		}
		return "O"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'O':
		cell.setMine()
		if c == '*' && !fresh {
			cell.detonate()
		}
	case '.':
		if !fresh {
			cell.reveal()
		}
	case '#':
	default:
		return false
	}

	return true
}
