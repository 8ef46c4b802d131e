package game

type CellState int
type BoardState int

// Display codes of a cell. The numeric states equal the adjacent mine count.
const (
	Covered CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	MineExposed
	MineDetonated
)

var CellStates = []CellState{
	Covered,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	MineExposed,
	MineDetonated,
}

func (state CellState) String() string {
	switch {
	case state == Covered:
		return "."
	case state == MineExposed:
		return "x"
	case state == MineDetonated:
		return "X"
	case state >= Empty && state <= Number8:
		return string(rune('0' + int(state)))
	default:
		return "?"
	}
}

// IsNumber reports whether the state is a revealed, non-mine cell
func (state CellState) IsNumber() bool {
	return state >= Empty && state <= Number8
}

const (
	InProgress BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (state BoardState) IsOver() bool {
	return state == Won || state == Lost
}
