package game

// Director plays a round in place of a human, looking only at what the board
// shows
type Director interface {
	// Init prepares the director for a fresh board
	Init(*Board)

	// Act picks the next covered cell to reveal; ok is false when the director
	// has nothing left to play
	Act() (next Coord, ok bool)

	// End releases the board at the end of the round
	End()
}
