package game

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Layout is a textual description of a board and its mines, one line per row:
//
//	#  covered cell
//	.  revealed cell
//	O  covered mine
//	*  detonated mine
type Layout struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (layout *Layout) Serialize() (string, error) {
	out, err := yaml.Marshal(layout)
	if err != nil {
		return "", errors.Wrap(err, "marshal layout")
	}
	return string(out), nil
}

// CreateBoard builds a board with the layout's mines already planted. With
// fresh set, every cell starts covered.
func (layout *Layout) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout.SerializedBoard), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidLayout, "board is empty")
	}

	config := BoardConfig{
		Rows: len(rows),
		Cols: len(rows[0]),
		Seed: layout.Seed,
	}
	for _, row := range rows {
		if len(row) != config.Cols {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %q is not %d cells wide", row, config.Cols)
		}
		config.NumMines += strings.Count(row, "O") + strings.Count(row, "*")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(config)
	if err != nil {
		return nil, err
	}
	board.hasPlanted = true

	for row, line := range rows {
		for col, c := range line {
			if !board.CellAt(row, col).deserialize(c, fresh) {
				return nil, errors.Wrapf(ErrInvalidLayout, "unknown cell %q at (%d, %d)", c, row, col)
			}
		}
	}

	if !fresh {
		for _, cell := range board.Cells() {
			if cell.isRevealed && cell.numMines == 0 {
				// a revealed zero next to a covered safe cell never happens in play
				for _, neighbor := range cell.Neighbors() {
					if neighbor.IsCovered() && !neighbor.isMine {
						return nil, errors.Wrapf(ErrInvalidLayout, "%s borders no mines but %s is covered", cell, neighbor)
					}
				}
			}
		}
		if strings.Count(layout.SerializedBoard, "*") > 1 {
			return nil, errors.Wrap(ErrInvalidLayout, "more than one detonated mine")
		}
	}

	board.recount()
	return board, nil
}

// Layout describes the current board. Before the first reveal it holds no mines.
func (board *Board) Layout(seed int64) *Layout {
	var builder strings.Builder
	for row := range board.cells {
		if row > 0 {
			builder.WriteString("\n")
		}
		for col := range board.cells[row] {
			builder.WriteString(board.cells[row][col].serialize())
		}
	}

	return &Layout{
		Seed:            seed,
		SerializedBoard: builder.String(),
	}
}

func LoadLayout(in string) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, errors.Wrap(err, "unmarshal layout")
	}
	return &layout, nil
}

func ReadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read layout %s", path)
	}
	return LoadLayout(string(data))
}
