package cmd

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/tirinha/pkg/data"
	"github.com/kerbaras/tirinha/pkg/sources"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's strips",
	Long:  "Display the image URLs found on the comics page without downloading them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		urls, err := source.ImageURLs(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(urls) == 0 {
			fmt.Fprintln(out, "No strips found on", source.PageURL())
			return nil
		}

		fmt.Fprintf(out, "\n%d strips on %s\n\n", len(urls), source.PageURL())
		fmt.Fprintln(out, stripTable(data.NewStrips(urls)).View())
		return nil
	},
}

func stripTable(strips []data.Strip) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Strip", Width: 30},
		{Title: "URL", Width: 80},
	}

	rows := []table.Row{}
	for _, strip := range strips {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", strip.Index+1),
			truncateString(strip.Name(), 28),
			strip.URL,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	return t
}

func truncateString(s string, maxLen int) string {
	return ansi.Truncate(s, maxLen, "...")
}
