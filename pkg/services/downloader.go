package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kerbaras/tirinha/pkg/data"
	"github.com/kerbaras/tirinha/pkg/utils"
	"github.com/sourcegraph/conc/pool"
)

// DownloadProgress represents the progress of a single strip download
type DownloadProgress struct {
	Index  int
	Total  int
	URL    string
	Bytes  int64
	Status string // "downloading", "complete", "error"
	Error  error
}

// DownloadedSet is the scoped temporary directory holding the downloaded
// strips. It must outlive the viewing session and be closed afterwards.
type DownloadedSet struct {
	Dir    string
	Strips []data.Strip
}

// Len returns the number of downloaded strips
func (s *DownloadedSet) Len() int {
	return len(s.Strips)
}

// Paths returns the local files in strip order
func (s *DownloadedSet) Paths() []string {
	paths := make([]string, len(s.Strips))
	for i, strip := range s.Strips {
		paths[i] = strip.Path
	}
	return paths
}

// Close removes the temporary directory and every file in it
func (s *DownloadedSet) Close() error {
	if s == nil || s.Dir == "" {
		return nil
	}
	if err := os.RemoveAll(s.Dir); err != nil {
		return data.Wrap(data.ErrIO, err, "failed to remove %s", s.Dir)
	}
	return nil
}

const tempDirPattern = "tirinha*-files"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Downloader fetches strip images into a scoped temporary directory
type Downloader struct {
	http         *utils.HTTP
	baseDir      string
	workers      int
	progressChan chan DownloadProgress
	closeOnce    sync.Once
}

// NewDownloader creates a Downloader that stores files under baseDir.
// An empty baseDir means the system temporary directory.
func NewDownloader(client *http.Client, baseDir string) *Downloader {
	return &Downloader{
		http:         utils.NewHTTP(client),
		baseDir:      baseDir,
		workers:      1,
		progressChan: make(chan DownloadProgress, 100),
	}
}

// SetWorkers sets how many downloads may run at once. One keeps the
// downloads strictly sequential.
func (d *Downloader) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	d.workers = n
}

// GetProgressChannel returns the channel for receiving download progress updates
func (d *Downloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// DownloadAll downloads every URL into its own file and returns them in
// input order. Any failure aborts the batch and removes what was written.
func (d *Downloader) DownloadAll(ctx context.Context, urls []string) (*DownloadedSet, error) {
	if d.baseDir != "" {
		if err := os.MkdirAll(d.baseDir, 0o755); err != nil {
			return nil, data.Wrap(data.ErrIO, err, "failed to create %s", d.baseDir)
		}
	}
	dir, err := os.MkdirTemp(d.baseDir, tempDirPattern)
	if err != nil {
		return nil, data.Wrap(data.ErrIO, err, "failed to create temporary directory")
	}

	set := &DownloadedSet{Dir: dir, Strips: data.NewStrips(urls)}

	if d.workers > 1 && len(urls) > 1 {
		err = d.downloadParallel(ctx, set)
	} else {
		err = d.downloadSequential(ctx, set)
	}
	if err != nil {
		return nil, errors.Join(err, set.Close())
	}

	return set, nil
}

func (d *Downloader) downloadSequential(ctx context.Context, set *DownloadedSet) error {
	for i := range set.Strips {
		if err := d.downloadStrip(ctx, set.Dir, &set.Strips[i], len(set.Strips)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Downloader) downloadParallel(ctx context.Context, set *DownloadedSet) error {
	p := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(d.workers).
		WithCancelOnError().
		WithFirstError()

	for i := range set.Strips {
		strip := &set.Strips[i]
		p.Go(func(ctx context.Context) error {
			return d.downloadStrip(ctx, set.Dir, strip, len(set.Strips))
		})
	}

	return p.Wait()
}

// downloadStrip downloads a single strip into a fresh uniquely named file
func (d *Downloader) downloadStrip(ctx context.Context, dir string, strip *data.Strip, total int) error {
	d.sendProgress(DownloadProgress{
		Index:  strip.Index,
		Total:  total,
		URL:    strip.URL,
		Status: "downloading",
	})

	target := filepath.Join(dir, uuid.NewString()+extensionFor(strip.URL))
	n, err := d.writeFile(ctx, strip.URL, target)
	if err != nil {
		d.sendProgress(DownloadProgress{
			Index:  strip.Index,
			Total:  total,
			URL:    strip.URL,
			Status: "error",
			Error:  err,
		})
		return err
	}

	strip.Path = target
	d.sendProgress(DownloadProgress{
		Index:  strip.Index,
		Total:  total,
		URL:    strip.URL,
		Bytes:  n,
		Status: "complete",
	})
	return nil
}

func (d *Downloader) writeFile(ctx context.Context, src, target string) (n int64, err error) {
	f, err := os.Create(target)
	if err != nil {
		return 0, data.Wrap(data.ErrIO, err, "failed to create %s", target)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = data.Wrap(data.ErrIO, cerr, "failed to close %s", target)
		}
	}()

	return d.http.CopyTo(ctx, src, f)
}

// extensionFor keeps the image extension of the URL path, defaulting to .jpg
func extensionFor(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if imageExtensions[ext] {
		return ext
	}
	return ".jpg"
}

// sendProgress sends a progress update (non-blocking)
func (d *Downloader) sendProgress(progress DownloadProgress) {
	select {
	case d.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close closes the progress channel. The downloader must not be used afterwards.
func (d *Downloader) Close() {
	d.closeOnce.Do(func() {
		close(d.progressChan)
	})
}
