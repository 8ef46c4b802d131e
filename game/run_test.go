package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cornerMineLayout = "###\n###\n##O"

func runScript(t *testing.T, config GameConfig, input string) string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, Run(config, strings.NewReader(input), &out))
	return out.String()
}

func layoutConfig(serialized string) GameConfig {
	config := NewGameConfig()
	config.Layout = &Layout{SerializedBoard: serialized}
	return config
}

func TestRunWinsRound(t *testing.T) {
	out := runScript(t, layoutConfig(cornerMineLayout), "1\n0\n0\n-1\n")

	assert.Contains(t, out, "Timer starts after first cell entered.")
	assert.Contains(t, out, ". 0 1 2 \n0 0 0 0 \n1 0 1 1 \n2 0 1 . \n")
	assert.Contains(t, out, "You win!\nTime: ")
	assert.NotContains(t, out, "You lose.")
}

func TestRunLosesRound(t *testing.T) {
	out := runScript(t, layoutConfig(cornerMineLayout), "1 2 2 -1")

	assert.Contains(t, out, "2 . . X \n")
	assert.Contains(t, out, "You lose.\nTime: ")
}

func TestRunRepromptsInvalidCells(t *testing.T) {
	out := runScript(t, layoutConfig(cornerMineLayout), "1 5 0 0 0 -1")

	assert.Equal(t, 1, strings.Count(out, "Enter -1 to quit or a valid covered cell."))
	assert.Contains(t, out, "You win!")
}

func TestRunRepromptsRevealedCell(t *testing.T) {
	out := runScript(t, layoutConfig("O##\n###\n###"), "1 1 1 1 1 -1")

	assert.Equal(t, 1, strings.Count(out, "Enter -1 to quit or a valid covered cell."))
	assert.Contains(t, out, "Enter -1 to quit or cell 2 row (0 index): ")
	assert.Contains(t, out, "Round abandoned.")
	assert.NotContains(t, out, "You win!")
}

func TestRunSkipsNonNumericInput(t *testing.T) {
	out := runScript(t, layoutConfig(cornerMineLayout), "abc 1 x 0 0 -1")

	assert.Contains(t, out, `"abc" is not a whole number.`)
	assert.Contains(t, out, `"x" is not a whole number.`)
	assert.Contains(t, out, "You win!")
}

func TestRunPlaysSeveralRounds(t *testing.T) {
	out := runScript(t, layoutConfig(cornerMineLayout), "1 0 0 2 1 2 2")

	assert.Equal(t, 1, strings.Count(out, "You win!"))
	assert.Equal(t, 1, strings.Count(out, "You lose."))
	assert.Equal(t, 4, strings.Count(out, "Enter 1 to play a new round or -1 to quit: "))
}

func TestRunPromptsForPreset(t *testing.T) {
	out := runScript(t, NewGameConfig(), "1 7 1 -1 -1")

	assert.Contains(t, out, "Choose a field size. Enter\n1 for 9x9 with 10 mines,\n2 for 16x16 with 40 mines, and\n3 for 16x30 with 99 mines.\n")
	assert.Equal(t, 2, strings.Count(out, "Choose a field size."))
	assert.Contains(t, out, ". 0 1 2 3 4 5 6 7 8 \n")
	assert.Contains(t, out, "Round abandoned.")
}

func TestRunFixedPreset(t *testing.T) {
	config := NewGameConfig()
	config.Preset = "intermediate"
	config.Seed = 11

	out := runScript(t, config, "1 8 8 -1 -1")

	assert.NotContains(t, out, "Choose a field size.")
	assert.Contains(t, out, ". 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 \n")
	assert.Contains(t, out, "\n5 ")
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	config := NewGameConfig()
	config.Rows, config.Cols, config.NumMines = 9, 9, 81

	err := Run(config, strings.NewReader("1"), &strings.Builder{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	config = NewGameConfig()
	config.Preset = "impossible"
	err = Run(config, strings.NewReader("1"), &strings.Builder{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestRunLoadsLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: |\n  ###\n  ###\n  ##O\n"), 0o644))

	config := NewGameConfig()
	config.LayoutPath = path

	out := runScript(t, config, "1 0 0")
	assert.Contains(t, out, "You win!")

	config.LayoutPath = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, Run(config, strings.NewReader(""), &strings.Builder{}))
}

type scriptedDirector struct {
	moves       []Coord
	inits, ends int
}

func (director *scriptedDirector) Init(*Board) {
	director.inits++
}

func (director *scriptedDirector) Act() (Coord, bool) {
	if len(director.moves) == 0 {
		return Coord{}, false
	}
	next := director.moves[0]
	director.moves = director.moves[1:]
	return next, true
}

func (director *scriptedDirector) End() {
	director.ends++
}

func TestRunWithDirector(t *testing.T) {
	director := &scriptedDirector{moves: []Coord{{Row: 0, Col: 0}}}
	config := layoutConfig(cornerMineLayout)
	config.Director = director

	out := runScript(t, config, "1 -1")

	assert.Contains(t, out, "Director reveals cell 1 at (0, 0)\n")
	assert.Contains(t, out, "You win!")
	assert.Equal(t, 1, director.inits)
	assert.Equal(t, 1, director.ends)
}

func TestRunDirectorOutOfMoves(t *testing.T) {
	director := &scriptedDirector{moves: []Coord{{Row: 1, Col: 1}}}
	config := layoutConfig("O##\n###\n###")
	config.Director = director

	out := runScript(t, config, "1 -1")

	assert.Contains(t, out, "Round abandoned.")
	assert.Equal(t, 1, director.ends)
}

func TestRunDirectorInvalidMove(t *testing.T) {
	config := layoutConfig(cornerMineLayout)
	config.Director = &scriptedDirector{moves: []Coord{{Row: 3, Col: 3}}}

	err := Run(config, strings.NewReader("1"), &strings.Builder{})
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestFormatElapsed(t *testing.T) {
	durations := map[time.Duration]string{
		0:                        "00:00.000",
		1234 * time.Millisecond:  "00:01.234",
		61234 * time.Millisecond: "01:01.234",
		59999 * time.Millisecond: "00:59.999",
		125 * time.Minute:        "125:00.000",
		1500 * time.Microsecond:  "00:00.001",
	}

	for elapsed, expected := range durations {
		assert.Equal(t, expected, FormatElapsed(elapsed))
	}
}

func TestRenderGrid(t *testing.T) {
	var out strings.Builder
	Render(&out, Grid{
		{Covered, Number1, MineExposed},
		{Empty, Number8, MineDetonated},
	})

	assert.Equal(t, ". 0 1 2 \n0 . 1 x \n1 0 8 X \n", out.String())
}
