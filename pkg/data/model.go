package data

import (
	"net/url"
	"path"
)

// Strip is a single comic strip as found on the page.
type Strip struct {
	Index int
	URL   string
	Path  string // Local file holding the image bytes, set once downloaded
}

// Downloaded reports whether the strip has a local copy.
func (s Strip) Downloaded() bool {
	return s.Path != ""
}

// Name returns the last element of the strip URL path, used as a display
// label. Query and fragment are left out.
func (s Strip) Name() string {
	if s.URL == "" {
		return ""
	}
	p := s.URL
	if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
		p = u.Path
	}
	return path.Base(p)
}

// NewStrips builds index-aligned strips from a list of image URLs.
func NewStrips(urls []string) []Strip {
	strips := make([]Strip, len(urls))
	for i, u := range urls {
		strips[i] = Strip{Index: i, URL: u}
	}
	return strips
}
