package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestPresetValue(t *testing.T) {
	var preset string
	value := newPresetValue("", &preset)

	require.NoError(t, value.Set("Expert"))
	assert.Equal(t, "expert", preset)
	assert.Equal(t, "expert", value.String())

	assert.Error(t, value.Set("huge"))
	assert.Equal(t, "expert", preset)
}

func TestDirectorValue(t *testing.T) {
	var director string
	value := newDirectorValue("", &director)

	require.NoError(t, value.Set("random"))
	assert.Equal(t, "random", director)
	assert.Error(t, value.Set("oracle"))
	assert.Equal(t, "director", value.Type())
}

func TestNewDirector(t *testing.T) {
	director, err := newDirector("")
	require.NoError(t, err)
	assert.Nil(t, director)

	director, err = newDirector("random")
	require.NoError(t, err)
	assert.IsType(t, &random.Director{}, director)

	director, err = newDirector("constraint")
	require.NoError(t, err)
	assert.IsType(t, &constraint.Director{}, director)

	_, err = newDirector("oracle")
	assert.Error(t, err)
}

func TestResolveConfigLayersFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flagConfig := game.NewGameConfig()
	cmd.Flags().Int64Var(&flagConfig.Seed, "seed", 0, "")
	require.NoError(t, cmd.Flags().Set("seed", "7"))

	path := writeConfig(t, "preset: expert\nseed: 5\ndirector: constraint\n")

	config, err := resolveConfig(cmd, flagConfig, path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, "expert", config.Preset)
	assert.IsType(t, &constraint.Director{}, config.Director)
}

func TestResolveConfigWithoutFile(t *testing.T) {
	flagConfig := game.NewGameConfig()
	flagConfig.Preset = "beginner"

	config, err := resolveConfig(&cobra.Command{}, flagConfig, "")
	require.NoError(t, err)
	assert.Equal(t, "beginner", config.Preset)
	assert.Nil(t, config.Director)
}

func TestResolveConfigErrors(t *testing.T) {
	_, err := resolveConfig(&cobra.Command{}, game.NewGameConfig(), writeConfig(t, "director: oracle\n"))
	assert.Error(t, err)

	_, err = resolveConfig(&cobra.Command{}, game.NewGameConfig(), writeConfig(t, "rows: 3\ncols: 3\nmines: 9\n"))
	assert.ErrorIs(t, err, game.ErrInvalidConfiguration)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging("debug"))
	assert.Error(t, setupLogging("loud"))
	require.NoError(t, setupLogging("warn"))
}
