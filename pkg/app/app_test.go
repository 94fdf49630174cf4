package app

import (
	"context"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/tirinha/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStrip(t *testing.T) data.Strip {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tira.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 8, 4))))
	require.NoError(t, f.Close())
	return data.Strip{URL: "https://img.example.com/tira.png", Path: path}
}

func headless(input string) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}
}

func TestApp_RunNoStrips(t *testing.T) {
	err := NewApp(nil).Run(context.Background())
	assert.ErrorIs(t, err, data.ErrRender)
}

func TestApp_RunQuits(t *testing.T) {
	a := NewApp([]data.Strip{writeStrip(t)}).WithProgramOptions(headless("q")...)

	assert.NoError(t, a.Run(context.Background()))
}

func TestApp_RunRenderError(t *testing.T) {
	strip := writeStrip(t)
	require.NoError(t, os.WriteFile(strip.Path, []byte("corrupt"), 0o644))

	a := NewApp([]data.Strip{strip}).WithProgramOptions(headless("")...)

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrRender)
}
