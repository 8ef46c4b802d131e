package game

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var Log logrus.FieldLogger = logrus.StandardLogger()

type GameConfig struct {
	// Name of a preset; when empty, Rows, Cols and NumMines describe a custom
	// board, and when those are zero too the player picks a preset every round
	Preset   string `yaml:"preset"`
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	NumMines int    `yaml:"mines"`

	Seed int64 `yaml:"seed"`

	// Path to a layout file every round is played on
	LayoutPath string `yaml:"layout"`
	// Layout every round is played on, loaded from LayoutPath if unset
	Layout *Layout `yaml:"-"`
	// Whether to set all cells as covered when loading the Layout
	LoadLayoutFresh bool `yaml:"layout_fresh"`

	// Name of the director, resolved by the command line
	DirectorName string   `yaml:"director"`
	Director     Director `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		LoadLayoutFresh: true,
	}
}

// LoadGameConfig reads a yaml config file over the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	_, _, err := config.fixedBoard()
	return err
}

// fixedBoard resolves the board every round is played on, if the config
// names one
func (config GameConfig) fixedBoard() (BoardConfig, bool, error) {
	if config.Preset != "" {
		preset, ok := PresetByName(config.Preset)
		if !ok {
			return BoardConfig{}, false, errors.Wrapf(ErrInvalidConfiguration, "unknown preset %q", config.Preset)
		}
		return preset.BoardConfig(config.Seed), true, nil
	}

	if config.Rows == 0 && config.Cols == 0 && config.NumMines == 0 {
		return BoardConfig{}, false, nil
	}

	boardConfig := BoardConfig{
		Rows:     config.Rows,
		Cols:     config.Cols,
		NumMines: config.NumMines,
		Seed:     config.Seed,
	}
	if err := boardConfig.Validate(); err != nil {
		return BoardConfig{}, false, err
	}
	return boardConfig, true, nil
}

func (config *GameConfig) loadLayout() error {
	if config.Layout != nil || config.LayoutPath == "" {
		return nil
	}

	layout, err := ReadLayoutFile(config.LayoutPath)
	if err != nil {
		return err
	}
	config.Layout = layout
	return nil
}

func (config GameConfig) onGameEnd(board *Board, seed int64) {
	var result string
	switch board.State() {
	case Won:
		result = "win"
	case Lost:
		result = "loss"
	default:
		result = "abandoned"
	}

	entry := Log.WithFields(logrus.Fields{
		"result":   result,
		"rows":     board.Rows(),
		"cols":     board.Cols(),
		"mines":    board.NumMines(),
		"revealed": board.NumRevealed(),
	})
	entry.Info("round ended")

	if serialized, err := board.Layout(seed).Serialize(); err != nil {
		entry.WithError(err).Warn("unable to serialize final board")
	} else {
		entry.Debugf("final board:\n%s", serialized)
	}
}
