package sources

import "context"

// Source lists the strip image URLs published on a comics page.
type Source interface {
	ImageURLs(ctx context.Context) ([]string, error)
}
