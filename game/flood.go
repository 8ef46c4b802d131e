package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood visits origin and then spreads breadth-first through every cell that
// shouldExpand accepts. Each cell is visited at most once.
func flood(origin *Cell, visit Visitor, shouldExpand func(*Cell) bool, getNeighbors NeighborGetter) {
	visited := map[int]struct{}{origin.idx: {}}
	var visitQueue deque.Deque

	visit(origin)
	if shouldExpand(origin) {
		visitQueue.PushBack(origin)
	}

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)

		for _, neighbor := range getNeighbors(cell) {
			// Don't visit, if already visited
			if _, alreadyVisited := visited[neighbor.idx]; alreadyVisited {
				continue
			}
			visited[neighbor.idx] = struct{}{}

			visit(neighbor)
			if shouldExpand(neighbor) {
				visitQueue.PushBack(neighbor)
			}
		}
	}
}

// cascade reveals origin and, if it borders no mines, the whole zero-bordered
// region around it together with its numbered rim
func cascade(origin *Cell, onReveal func(*Cell)) {
	flood(
		origin,
		func(cell *Cell) {
			cell.reveal()
			onReveal(cell)
		},
		func(cell *Cell) bool {
			return cell.numMines == 0
		},
		func(cell *Cell) []*Cell {
			neighbors := cell.Neighbors()
			covered := neighbors[:0]
			for _, neighbor := range neighbors {
				if neighbor.IsCovered() && !neighbor.isMine {
					covered = append(covered, neighbor)
				}
			}
			return covered
		},
	)
}
