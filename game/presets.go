package game

import "strings"

type Preset struct {
	Name       string
	Rows, Cols int
	NumMines   int
}

var (
	Beginner     = Preset{Name: "beginner", Rows: 9, Cols: 9, NumMines: 10}
	Intermediate = Preset{Name: "intermediate", Rows: 16, Cols: 16, NumMines: 40}
	Expert       = Preset{Name: "expert", Rows: 16, Cols: 30, NumMines: 99}
)

// Presets in the order they are offered to the player, starting at choice 1
var Presets = []Preset{Beginner, Intermediate, Expert}

func PresetByName(name string) (Preset, bool) {
	for _, preset := range Presets {
		if strings.EqualFold(preset.Name, name) {
			return preset, true
		}
	}
	return Preset{}, false
}

func PresetByChoice(choice int) (Preset, bool) {
	if choice < 1 || choice > len(Presets) {
		return Preset{}, false
	}
	return Presets[choice-1], true
}

func (preset Preset) BoardConfig(seed int64) BoardConfig {
	return BoardConfig{
		Rows:     preset.Rows,
		Cols:     preset.Cols,
		NumMines: preset.NumMines,
		Seed:     seed,
	}
}
