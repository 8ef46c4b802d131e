package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

var gameConfig = game.NewGameConfig()
var configPath string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a text Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to pick a board size each round
	termsweep

Play the expert board with a fixed seed
	termsweep --preset expert --seed 42

Use the director flag to make the computer play for you
	termsweep --director constraint
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(logLevel); err != nil {
			return err
		}

		config, err := resolveConfig(cmd, gameConfig, configPath)
		if err != nil {
			return err
		}

		if config.Seed == 0 {
			config.Seed = time.Now().UnixNano()
		}

		return game.Run(config, os.Stdin, os.Stdout)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	game.Log = logger
	return nil
}

// resolveConfig layers the flags that were set on top of the config file
func resolveConfig(cmd *cobra.Command, flagConfig game.GameConfig, path string) (game.GameConfig, error) {
	config := flagConfig
	if path != "" {
		fileConfig, err := game.LoadGameConfig(path)
		if err != nil {
			return config, err
		}

		flags := cmd.Flags()
		if !flags.Changed("preset") {
			config.Preset = fileConfig.Preset
		}
		if !flags.Changed("rows") {
			config.Rows = fileConfig.Rows
		}
		if !flags.Changed("cols") {
			config.Cols = fileConfig.Cols
		}
		if !flags.Changed("mines") {
			config.NumMines = fileConfig.NumMines
		}
		if !flags.Changed("seed") {
			config.Seed = fileConfig.Seed
		}
		if !flags.Changed("layout") {
			config.LayoutPath = fileConfig.LayoutPath
		}
		if !flags.Changed("layout-fresh") {
			config.LoadLayoutFresh = fileConfig.LoadLayoutFresh
		}
		if !flags.Changed("director") {
			config.DirectorName = fileConfig.DirectorName
		}
	}

	director, err := newDirector(config.DirectorName)
	if err != nil {
		return config, err
	}
	config.Director = director

	return config, config.Validate()
}

var directors = map[string]func() game.Director{
	"random": func() game.Director {
		return &random.Director{}
	},
	"constraint": func() game.Director {
		return &constraint.Director{}
	},
}

func newDirector(name string) (game.Director, error) {
	if name == "" {
		return nil, nil
	}
	newFunc, ok := directors[name]
	if !ok {
		return nil, fmt.Errorf("invalid director %q", name)
	}
	return newFunc(), nil
}

type presetValue string

func newPresetValue(val string, p *string) *presetValue {
	*p = val
	return (*presetValue)(p)
}

func (presetVal *presetValue) String() string {
	return string(*presetVal)
}

func (presetVal *presetValue) Set(value string) error {
	if preset, isValid := game.PresetByName(value); isValid {
		*presetVal = presetValue(preset.Name)
		return nil
	}
	return fmt.Errorf("invalid preset %q", value)
}

func (presetVal *presetValue) Type() string {
	return "preset"
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; isValid {
		*directorVal = directorValue(value)
		return nil
	}
	return fmt.Errorf("invalid director %q", value)
}

func (directorVal *directorValue) Type() string {
	return "director"
}

func presetNames() string {
	names := make([]string, 0, len(game.Presets))
	for _, preset := range game.Presets {
		names = append(names, fmt.Sprintf("%s (%dx%d, %d mines)", preset.Name, preset.Rows, preset.Cols, preset.NumMines))
	}
	return strings.Join(names, ", ")
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func init() {
	flags := rootCmd.Flags()
	flags.VarP(newPresetValue("", &gameConfig.Preset), "preset", "p", "Board preset: "+presetNames())
	flags.IntVarP(&gameConfig.Rows, "rows", "r", 0, "Rows of a custom board")
	flags.IntVarP(&gameConfig.Cols, "cols", "c", 0, "Columns of a custom board")
	flags.IntVarP(&gameConfig.NumMines, "mines", "m", 0, "Number of mines to place in a custom board")
	flags.Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed of the first board (0 seeds from the clock)")
	flags.StringVarP(&gameConfig.LayoutPath, "layout", "l", "", "Play every round on the board described by this yaml layout")
	flags.BoolVar(&gameConfig.LoadLayoutFresh, "layout-fresh", true, "Cover every cell of the layout before playing")
	flags.VarP(newDirectorValue("", &gameConfig.DirectorName), "director", "d", "Make the computer play: "+directorNames())
	flags.StringVar(&configPath, "config", "", "Path to a yaml config file")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
