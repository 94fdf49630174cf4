package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/tirinha/pkg/app"
	"github.com/kerbaras/tirinha/pkg/app/screens"
	"github.com/kerbaras/tirinha/pkg/services"
	"github.com/kerbaras/tirinha/pkg/sources"
	"github.com/spf13/cobra"
)

var opts = DefaultOptions()

// programOptions are handed to the viewer's bubbletea program on top of
// the defaults, e.g. to run it without a terminal
var programOptions []tea.ProgramOption

var rootCmd = &cobra.Command{
	Use:          "tirinha",
	Short:        "Today's comic strips in your terminal",
	Long:         "Fetch the daily comic strips from the Estadão comics page and flip through them with the arrow keys",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return opts.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd.Context(), cmd, opts)
	},
}

func init() {
	opts.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(listCmd)
}

func runViewer(ctx context.Context, cmd *cobra.Command, opts *Options) error {
	logger, closeLog, err := opts.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	source := sources.NewEstadao(
		sources.WithClient(http.DefaultClient),
		sources.WithPageURL(opts.PageURL),
		sources.WithExtractOptions(opts.ExtractOptions(logger)...),
	)

	downloader := services.NewDownloader(http.DefaultClient, "")
	downloader.SetWorkers(opts.Workers)

	// Show download progress
	wait := trackDownloads(downloader.GetProgressChannel(), cmd.ErrOrStderr())

	set, err := services.NewStripController(source, downloader, logger).Load(ctx)
	downloader.Close()
	wait()
	if err != nil {
		return err
	}
	defer func() {
		if err := set.Close(); err != nil {
			logger.Warn("failed to clean up strips", "dir", set.Dir, "error", err)
		}
	}()

	viewer := app.NewApp(set.Strips, screens.WithMaxSize(opts.MaxWidth, opts.MaxHeight)).
		WithProgramOptions(programOptions...)
	return viewer.Run(ctx)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
