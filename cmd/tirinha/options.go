package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kerbaras/tirinha/pkg/sources"
	"github.com/spf13/pflag"
)

// Options holds everything the commands can be tuned with. The defaults
// reproduce the plain behaviour: the Estadão page, one download at a time,
// fail on the first malformed strip.
type Options struct {
	PageURL       string
	Workers       int
	SkipMalformed bool
	MaxWidth      int
	MaxHeight     int
	LogLevel      string
	LogFile       string
}

func DefaultOptions() *Options {
	return &Options{
		PageURL:  sources.DefaultPageURL,
		Workers:  1,
		LogLevel: "warn",
	}
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.PageURL, "url", o.PageURL, "Comics page to scrape")
	flags.IntVarP(&o.Workers, "workers", "w", o.Workers, "Strips downloaded at once")
	flags.BoolVar(&o.SkipMalformed, "skip-malformed", o.SkipMalformed, "Skip strips without a desktop image instead of failing")
	flags.IntVar(&o.MaxWidth, "max-width", o.MaxWidth, "Maximum picture width in terminal cells (0 = terminal width)")
	flags.IntVar(&o.MaxHeight, "max-height", o.MaxHeight, "Maximum picture height in terminal cells (0 = terminal height)")
	flags.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&o.LogFile, "log-file", o.LogFile, "Write logs to this file instead of stderr")
}

func (o *Options) Validate() error {
	if o.PageURL == "" {
		return fmt.Errorf("--url must not be empty")
	}
	if o.Workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", o.Workers)
	}
	if o.MaxWidth < 0 || o.MaxHeight < 0 {
		return fmt.Errorf("--max-width and --max-height must not be negative")
	}
	if _, err := parseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// ExtractOptions translates the flags into extractor options
func (o *Options) ExtractOptions(logger *slog.Logger) []sources.ExtractOption {
	opts := []sources.ExtractOption{sources.WithLogger(logger)}
	if o.SkipMalformed {
		opts = append(opts, sources.WithSkipMalformed())
	}
	return opts
}

// Logger builds the slog logger and returns a function releasing its output
func (o *Options) Logger(stderr io.Writer) (*slog.Logger, func() error, error) {
	level, err := parseLevel(o.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	out := stderr
	closer := func() error { return nil }
	if o.LogFile != "" {
		f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
