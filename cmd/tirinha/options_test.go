package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/tirinha/pkg/sources"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	assert.Equal(t, sources.DefaultPageURL, o.PageURL)
	assert.Equal(t, 1, o.Workers)
	assert.False(t, o.SkipMalformed)
	assert.NoError(t, o.Validate())
}

func TestOptions_AddFlags(t *testing.T) {
	o := DefaultOptions()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(flags)

	err := flags.Parse([]string{
		"--url", "http://localhost:8080/quadrinhos",
		"-w", "4",
		"--skip-malformed",
		"--max-width", "120",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/quadrinhos", o.PageURL)
	assert.Equal(t, 4, o.Workers)
	assert.True(t, o.SkipMalformed)
	assert.Equal(t, 120, o.MaxWidth)
	assert.Equal(t, 0, o.MaxHeight)
	assert.Equal(t, "debug", o.LogLevel)
	assert.Len(t, o.ExtractOptions(slog.Default()), 2)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
	}{
		{"empty url", func(o *Options) { o.PageURL = "" }},
		{"no workers", func(o *Options) { o.Workers = 0 }},
		{"negative width", func(o *Options) { o.MaxWidth = -1 }},
		{"negative height", func(o *Options) { o.MaxHeight = -1 }},
		{"bad log level", func(o *Options) { o.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(o)
			assert.Error(t, o.Validate())
		})
	}
}

func TestOptions_Logger(t *testing.T) {
	t.Run("stderr", func(t *testing.T) {
		var buf bytes.Buffer
		o := DefaultOptions()
		o.LogLevel = "info"

		logger, closeLog, err := o.Logger(&buf)
		require.NoError(t, err)
		defer closeLog()

		logger.Debug("hidden")
		logger.Info("found strips", "count", 3)
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("file", func(t *testing.T) {
		var buf bytes.Buffer
		o := DefaultOptions()
		o.LogLevel = "debug"
		o.LogFile = filepath.Join(t.TempDir(), "tirinha.log")

		logger, closeLog, err := o.Logger(&buf)
		require.NoError(t, err)
		logger.Debug("downloaded strips", "dir", "/tmp/x")
		require.NoError(t, closeLog())

		content, err := os.ReadFile(o.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "downloaded strips")
		assert.Empty(t, buf.String())
	})

	t.Run("unwritable file", func(t *testing.T) {
		o := DefaultOptions()
		o.LogFile = filepath.Join(t.TempDir(), "missing", "tirinha.log")

		_, _, err := o.Logger(&bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.0 KiB", humanBytes(1024))
	assert.Equal(t, "1.5 MiB", humanBytes(1536*1024))
}
