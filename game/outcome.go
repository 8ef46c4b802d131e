package game

type RevealedCell struct {
	Row, Col int
	State    CellState
}

// RevealOutcome lists the cells a single reveal uncovered and the round
// status after it
type RevealOutcome struct {
	Revealed []RevealedCell
	Status   BoardState
}

func (outcome *RevealOutcome) add(cell *Cell) {
	outcome.Revealed = append(outcome.Revealed, RevealedCell{
		Row:   cell.row,
		Col:   cell.col,
		State: cell.State(),
	})
}

// Grid holds display codes indexed by [row][col]
type Grid [][]CellState

func (grid Grid) At(coord Coord) CellState {
	return grid[coord.Row][coord.Col]
}

func (grid Grid) Contains(coord Coord) bool {
	return coord.Row >= 0 && coord.Row < len(grid) && coord.Col >= 0 && coord.Col < len(grid[0])
}

// Neighbors lists the in-bounds coordinates around coord
func (grid Grid) Neighbors(coord Coord) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := Coord{Row: coord.Row + offset.Row, Col: coord.Col + offset.Col}
		if grid.Contains(neighbor) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// Count returns how many cells show state
func (grid Grid) Count(state CellState) int {
	count := 0
	for _, row := range grid {
		for _, cellState := range row {
			if cellState == state {
				count++
			}
		}
	}
	return count
}
