package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const quit = -1

type session struct {
	config  GameConfig
	scanner *bufio.Scanner
	out     io.Writer

	// seed of the next randomly planted board
	seed int64
}

// Run plays rounds on the console until the player quits or the input ends
func Run(config GameConfig, in io.Reader, out io.Writer) error {
	if err := config.loadLayout(); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	s := &session{
		config:  config,
		scanner: scanner,
		out:     out,
		seed:    config.Seed,
	}

	for {
		play, ok := s.readInt("Enter 1 to play a new round or -1 to quit: ")
		if !ok || play == quit {
			return nil
		}
		if play != 1 {
			continue
		}

		if err := s.playRound(); err != nil {
			return err
		}
	}
}

// readInt prompts until a whole number is entered. ok is false once the input
// is exhausted.
func (s *session) readInt(prompt string) (int, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		if !s.scanner.Scan() {
			fmt.Fprintln(s.out)
			return 0, false
		}

		value, err := strconv.Atoi(s.scanner.Text())
		if err == nil {
			return value, true
		}
		fmt.Fprintf(s.out, "%q is not a whole number.\n", s.scanner.Text())
	}
}

func (s *session) choosePreset() (Preset, bool) {
	var prompt strings.Builder
	prompt.WriteString("Choose a field size. Enter")
	for i, preset := range Presets {
		separator := ","
		switch i {
		case len(Presets) - 2:
			separator = ", and"
		case len(Presets) - 1:
			separator = "."
		}
		fmt.Fprintf(&prompt, "\n%d for %dx%d with %d mines%s", i+1, preset.Rows, preset.Cols, preset.NumMines, separator)
	}
	prompt.WriteString("\n")

	for {
		choice, ok := s.readInt(prompt.String())
		if !ok || choice == quit {
			return Preset{}, false
		}
		if preset, ok := PresetByChoice(choice); ok {
			return preset, true
		}
	}
}

func (s *session) createBoard() (*Board, int64, error) {
	if s.config.Layout != nil {
		board, err := s.config.Layout.CreateBoard(s.config.LoadLayoutFresh)
		return board, s.config.Layout.Seed, err
	}

	boardConfig, isFixed, err := s.config.fixedBoard()
	if err != nil {
		return nil, 0, err
	}
	if !isFixed {
		preset, ok := s.choosePreset()
		if !ok {
			return nil, 0, nil
		}
		boardConfig = preset.BoardConfig(0)
	}

	boardConfig.Seed = s.seed
	board, err := NewBoard(boardConfig)
	return board, boardConfig.Seed, err
}

func (s *session) nextMove(move int) (Coord, bool) {
	if director := s.config.Director; director != nil {
		next, ok := director.Act()
		if ok {
			fmt.Fprintf(s.out, "Director reveals cell %d at %s\n", move, next)
		}
		return next, ok
	}

	row, ok := s.readInt(fmt.Sprintf("Enter -1 to quit or cell %d row (0 index): ", move))
	if !ok || row == quit {
		return Coord{}, false
	}
	col, ok := s.readInt(fmt.Sprintf("Enter -1 to quit or cell %d col (0 index): ", move))
	if !ok || col == quit {
		return Coord{}, false
	}
	return Coord{Row: row, Col: col}, true
}

func (s *session) playRound() error {
	board, seed, err := s.createBoard()
	if err != nil {
		return err
	}
	if board == nil {
		return nil
	}
	defer func() {
		s.seed = board.Rand().Int63()
	}()

	Log.WithFields(logrus.Fields{
		"rows":  board.Rows(),
		"cols":  board.Cols(),
		"mines": board.NumMines(),
		"seed":  seed,
	}).Info("round started")

	if director := s.config.Director; director != nil {
		director.Init(board)
		defer director.End()
	}

	fmt.Fprintln(s.out, "Timer starts after first cell entered.")
	Render(s.out, board.Snapshot())

	var startTime time.Time
	move := 1
	for !board.State().IsOver() {
		next, ok := s.nextMove(move)
		if !ok {
			fmt.Fprintln(s.out, "Round abandoned.")
			s.config.onGameEnd(board, seed)
			return nil
		}

		selectedAt := time.Now()
		_, err := board.Reveal(next.Row, next.Col)
		if errors.Is(err, ErrInvalidCell) || errors.Is(err, ErrAlreadyRevealed) {
			if s.config.Director != nil {
				return errors.Wrap(err, "director chose an unplayable cell")
			}
			fmt.Fprintln(s.out, "Enter -1 to quit or a valid covered cell.")
			continue
		}
		if err != nil {
			return err
		}

		if startTime.IsZero() {
			startTime = selectedAt
		}
		move++
		Render(s.out, board.Snapshot())
	}

	if board.IsWon() {
		fmt.Fprintln(s.out, "You win!")
	} else {
		fmt.Fprintln(s.out, "You lose.")
	}
	var elapsed time.Duration
	if !startTime.IsZero() {
		elapsed = time.Since(startTime)
	}
	fmt.Fprintf(s.out, "Time: %s\n", FormatElapsed(elapsed))

	s.config.onGameEnd(board, seed)
	return nil
}
