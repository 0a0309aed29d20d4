package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgbpick/channel"
)

func TestFileMissingLoadsEmpty(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope", "settings.toml"))
	v, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestFileSaveMergesAndCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "settings.toml")
	f := NewFile(path)

	require.NoError(t, f.Save(channel.Values{channel.Red: 255}))
	require.NoError(t, f.Save(channel.Values{channel.Blue: 12}))
	require.NoError(t, f.Save(channel.Values{channel.Red: 7}))

	v, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, channel.Values{channel.Red: 7, channel.Blue: 12}, v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "red_value = 7")
	assert.Contains(t, string(data), "blue_value = 12")
	assert.NotContains(t, string(data), "green_value")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFilePreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"dark\"\ngreen_value = 3\n"), 0o644))

	f := NewFile(path)
	require.NoError(t, f.Save(channel.Values{channel.Green: 4}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `theme = "dark"`)
	assert.Contains(t, string(data), "green_value = 4")
}

func TestFileLoadClampsAndRejects(t *testing.T) {
	dir := t.TempDir()

	clamped := filepath.Join(dir, "clamped.toml")
	require.NoError(t, os.WriteFile(clamped, []byte("red_value = 900\nblue_value = -2\n"), 0o644))
	v, err := NewFile(clamped).Load()
	require.NoError(t, err)
	assert.Equal(t, channel.Values{channel.Red: 255, channel.Blue: 0}, v)

	wrongType := filepath.Join(dir, "wrong.toml")
	require.NoError(t, os.WriteFile(wrongType, []byte("red_value = \"max\"\n"), 0o644))
	v, err = NewFile(wrongType).Load()
	assert.Error(t, err)
	assert.Empty(t, v)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("red_value = = 1"), 0o644))
	v, err = NewFile(broken).Load()
	assert.Error(t, err)
	assert.Empty(t, v)
}

func TestFileSaveOverwritesBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[["), 0o644))

	f := NewFile(path)
	require.NoError(t, f.Save(channel.Values{channel.Green: 99}))
	v, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, channel.Values{channel.Green: 99}, v)
}

func TestOpen(t *testing.T) {
	_, ok := Open(MemoryPath).(*Memory)
	assert.True(t, ok)
	f, ok := Open("/tmp/x.toml").(*File)
	require.True(t, ok)
	assert.Equal(t, "/tmp/x.toml", f.Path())
}
