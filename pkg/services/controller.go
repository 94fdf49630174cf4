package services

import (
	"context"
	"log/slog"

	"github.com/kerbaras/tirinha/pkg/data"
	"github.com/kerbaras/tirinha/pkg/sources"
)

// StripController runs the fetch, extract and download steps in order
type StripController struct {
	source     sources.Source
	downloader *Downloader
	logger     *slog.Logger
}

func NewStripController(source sources.Source, downloader *Downloader, logger *slog.Logger) *StripController {
	if logger == nil {
		logger = slog.Default()
	}
	return &StripController{source: source, downloader: downloader, logger: logger}
}

// Load fetches today's strips and downloads them. The caller owns the
// returned set and must Close it.
func (c *StripController) Load(ctx context.Context) (*DownloadedSet, error) {
	urls, err := c.source.ImageURLs(ctx)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, data.Errorf(data.ErrParse, "no strips found")
	}
	c.logger.Info("found strips", "count", len(urls))

	set, err := c.downloader.DownloadAll(ctx, urls)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("downloaded strips", "dir", set.Dir, "count", set.Len())

	return set, nil
}
