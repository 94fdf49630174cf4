package utils

import (
	"context"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/kerbaras/tirinha/pkg/data"
	"golang.org/x/net/html/charset"
)

// HTTP wraps an http.Client with the plain GET semantics used across the
// fetch and download steps: no custom headers, no retries.
type HTTP struct {
	client *http.Client
}

func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{client: client}
}

// Get issues a GET and returns the response when the status is 2xx.
// The caller must close the body.
func (h *HTTP) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, data.Wrap(data.ErrFetch, err, "failed to build request for %s", url)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, data.Wrap(data.ErrFetch, err, "failed to fetch %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, data.Errorf(data.ErrFetch, "bad status for %s: %s", url, resp.Status)
	}
	return resp, nil
}

// GetText fetches url and returns the body decoded to UTF-8 text. The
// encoding comes from the Content-Type charset, a BOM or a meta tag. A body
// that claims UTF-8 but is not valid UTF-8 is a fetch error.
func (h *HTTP) GetText(ctx context.Context, url string) (string, error) {
	resp, err := h.Get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", data.Wrap(data.ErrFetch, err, "failed to read body of %s", url)
	}

	enc, name, _ := charset.DetermineEncoding(body, resp.Header.Get("Content-Type"))
	if name == "utf-8" {
		if !utf8.Valid(body) {
			return "", data.Errorf(data.ErrFetch, "body of %s is not valid utf-8", url)
		}
		return string(body), nil
	}

	text, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", data.Wrap(data.ErrFetch, err, "failed to decode %s body of %s", name, url)
	}
	return string(text), nil
}

// CopyTo streams the body of url into w and returns the number of bytes written.
// Transport and status failures are fetch errors, write failures are io errors.
func (h *HTTP) CopyTo(ctx context.Context, url string, w io.Writer) (int64, error) {
	resp, err := h.Get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	tw := &trackedWriter{w: w}
	n, err := io.Copy(tw, resp.Body)
	if err != nil {
		if tw.err != nil {
			return n, data.Wrap(data.ErrIO, tw.err, "failed to write body of %s", url)
		}
		return n, data.Wrap(data.ErrFetch, err, "failed to read body of %s", url)
	}
	return n, nil
}

// trackedWriter remembers the first write error so CopyTo can tell a
// failing destination from a failing response body.
type trackedWriter struct {
	w   io.Writer
	err error
}

func (t *trackedWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}
