package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climbingroutes.yaml")
	cfg := `
logLevel: debug
storage:
  path: /tmp/routes.db
palette:
  red: "#ff0000"
render:
  width: 400
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/tmp/routes.db", c.Storage.Path)
	assert.Equal(t, 400, c.Render.Width)
	assert.Equal(t, 1000, c.Render.Height)

	p, err := c.BandPalette()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), p[grade.Red].R)
	assert.Equal(t, uint8(0x00), p[grade.Red].G)
	assert.Equal(t, grade.DefaultPalette[grade.Green], p[grade.Green])
}

func TestLoad_DefaultValues(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "climbingroutes.db", c.Storage.Path)
	assert.Equal(t, 800, c.Render.Width)
	assert.Equal(t, 1280, c.Viewer.Width)
	assert.Equal(t, 800, c.Viewer.Height)

	p, err := c.BandPalette()
	require.NoError(t, err)
	assert.Equal(t, grade.DefaultPalette, p)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CLIMBROUTES_STORAGE_PATH", "env.db")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.db", c.Storage.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/climbingroutes.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestBandPalette_InvalidColor(t *testing.T) {
	c := Config{Palette: PaletteConfig{Green: "#00ff00", Yellow: "nope", Orange: "#000000", Red: "#000000"}}

	_, err := c.BandPalette()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.yellow")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir on Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
