package cmd

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/kerbaras/tirinha/pkg/services"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// trackDownloads draws a progress bar fed by the downloader's progress
// channel. The returned function blocks until the channel is closed and
// the bar has been flushed.
func trackDownloads(progress <-chan services.DownloadProgress, out io.Writer) func() {
	p := mpb.New(
		mpb.WithOutput(out),
		mpb.WithWidth(40),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	var bytes atomic.Int64
	bar := p.New(0,
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name("strips  "),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + humanBytes(bytes.Load())
			}),
		),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		started, failed := false, false
		for ev := range progress {
			switch ev.Status {
			case "downloading":
				started = true
				bar.SetTotal(int64(ev.Total), false)
			case "complete":
				bytes.Add(ev.Bytes)
				bar.Increment()
			case "error":
				failed = true
			}
		}
		switch {
		case !started:
			// Nothing was downloaded, leave no empty bar behind
			bar.Abort(true)
			return
		case failed:
			bar.Abort(false)
			return
		}
		bar.SetTotal(-1, true)
	}()

	return func() {
		<-done
		p.Wait()
	}
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
