package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Director plays by deduction: it reveals cells the visible numbers prove
// safe, then the cell least likely to be a mine, and guesses only when the
// numbers say nothing
type Director struct {
	board *game.Board

	knownMines collections.Set[game.Coord]
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Coord
	numMines int
	cells    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	cellsRepr := make([]string, 0, len(observation.cells))
	for _, cell := range sortCoords(observation.cells) {
		cellsRepr = append(cellsRepr, cell.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellsRepr, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.knownMines = collections.NewSet[game.Coord]()
}

func (director *Director) Act() (game.Coord, bool) {
	if director.board == nil || director.board.State().IsOver() {
		return game.Coord{}, false
	}

	grid := director.board.Snapshot()
	observations := director.observe(grid)

	actors := []func([]*Observation) (game.Coord, bool){
		director.actDeliberate,
		director.actLowestProbability,
		func([]*Observation) (game.Coord, bool) {
			return director.actRandom(grid)
		},
	}
	for _, actor := range actors {
		if next, ok := actor(observations); ok {
			return next, true
		}
	}
	return game.Coord{}, false
}

// KnownMines lists the cells deduced to be mines so far
func (director *Director) KnownMines() []game.Coord {
	return sortCoords(director.knownMines)
}

func (director *Director) End() {
	director.board = nil
	director.knownMines = nil
}

// observe gathers an observation from every revealed number, splits
// overlapping ones, and records the mines they prove until nothing new is
// learned
func (director *Director) observe(grid game.Grid) []*Observation {
	for {
		var observations []*Observation
		for row := range grid {
			for col := range grid[row] {
				if observation := director.cellObservation(grid, game.Coord{Row: row, Col: col}); observation != nil {
					observations = append(observations, observation)
				}
			}
		}
		observations = simplifyObservations(observations)

		learned := false
		for _, observation := range observations {
			if observation.numMines > 0 && observation.numMines == len(observation.cells) {
				for cell := range observation.cells {
					if !director.knownMines.Contains(cell) {
						director.knownMines.Add(cell)
						learned = true
					}
				}
			}
		}

		if !learned {
			return observations
		}
	}
}

func (director *Director) cellObservation(grid game.Grid, origin game.Coord) *Observation {
	state := grid.At(origin)
	if !state.IsNumber() {
		return nil
	}

	observation := &Observation{
		origin:   &origin,
		numMines: int(state),
		cells:    collections.NewSet[game.Coord](),
	}
	for _, neighbor := range grid.Neighbors(origin) {
		if grid.At(neighbor) != game.Covered {
			continue
		}
		if director.knownMines.Contains(neighbor) {
			observation.numMines--
		} else {
			observation.cells.Add(neighbor)
		}
	}

	// Don't keep vacuous observations
	if len(observation.cells) == 0 {
		return nil
	}
	return observation
}

// simplifyObservations adds the observations implied by every overlapping
// pair: the remainder of a superset, and the cells one observation must hold
// beyond what it shares with another
func simplifyObservations(observations []*Observation) []*Observation {
	observationsByCell := make(map[game.Coord][]*Observation)
	for _, observation := range observations {
		for cell := range observation.cells {
			observationsByCell[cell] = append(observationsByCell[cell], observation)
		}
	}

	simplified := append([]*Observation(nil), observations...)
	addObservation := func(observation *Observation) {
		// Don't add vacuous observations or duplicates
		if len(observation.cells) == 0 {
			return
		}
		for _, other := range simplified {
			if other.numMines == observation.numMines && other.cells.Equal(observation.cells) {
				return
			}
		}
		simplified = append(simplified, observation)
	}

	for _, observation := range observations {
		visited := make(map[*Observation]struct{})

		for _, cell := range sortCoords(observation.cells) {
			for _, intersectingObs := range observationsByCell[cell] {
				if intersectingObs == observation {
					continue
				}
				if _, alreadyVisited := visited[intersectingObs]; alreadyVisited {
					continue
				}
				visited[intersectingObs] = struct{}{}

				sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)
				leftOnlyCells := intersectingObs.cells.Difference(sharedCells)

				if isSubset {
					addObservation(&Observation{
						numMines: intersectingObs.numMines - observation.numMines,
						cells:    leftOnlyCells,
					})
					continue
				}

				// At most observation.numMines of the shared cells are mines
				occludedMines := intersectingObs.numMines - observation.numMines
				if occludedMines > 0 && occludedMines == len(leftOnlyCells) {
					addObservation(&Observation{
						numMines: occludedMines,
						cells:    leftOnlyCells,
					})
				}
			}
		}
	}

	return simplified
}

func (director *Director) actDeliberate(observations []*Observation) (game.Coord, bool) {
	for _, observation := range observations {
		if observation.numMines == 0 {
			safe := sortCoords(observation.cells)[0]

			game.Log.WithFields(logrus.Fields{
				"cell":        safe.String(),
				"observation": observation.String(),
			}).Debug("director found a safe cell")

			return safe, true
		}
	}
	return game.Coord{}, false
}

// actLowestProbability rates each constrained cell by the most pessimistic
// observation covering it and picks the lowest
func (director *Director) actLowestProbability(observations []*Observation) (game.Coord, bool) {
	cellProbabilities := make(map[game.Coord]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if pastProbability, ok := cellProbabilities[cell]; !ok || probability > pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	candidates := collections.NewSet[game.Coord]()
	for cell, probability := range cellProbabilities {
		if probability < 1 {
			candidates.Add(cell)
		}
	}
	if len(candidates) == 0 {
		return game.Coord{}, false
	}

	sorted := sortCoords(candidates)
	lowest := sorted[0]
	for _, cell := range sorted[1:] {
		if cellProbabilities[cell] < cellProbabilities[lowest] {
			lowest = cell
		}
	}
	return lowest, true
}

func (director *Director) actRandom(grid game.Grid) (game.Coord, bool) {
	var candidates []game.Coord
	for row := range grid {
		for col := range grid[row] {
			coord := game.Coord{Row: row, Col: col}
			if grid.At(coord) == game.Covered && !director.knownMines.Contains(coord) {
				candidates = append(candidates, coord)
			}
		}
	}

	if len(candidates) == 0 {
		return game.Coord{}, false
	}
	return candidates[director.board.Rand().Intn(len(candidates))], true
}

func sortCoords(set collections.Set[game.Coord]) []game.Coord {
	coords := make([]game.Coord, 0, len(set))
	for coord := range set {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
