package sources

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kerbaras/tirinha/pkg/data"
	"github.com/kerbaras/tirinha/pkg/utils"
)

const (
	// DefaultPageURL is the daily comics page the strips are scraped from.
	DefaultPageURL = "https://cultura.estadao.com.br/quadrinhos"

	wrapperSelector  = ".quadrinho-wrapper"
	desktopImageAttr = "data-src-desktop"
)

type extractConfig struct {
	baseURL       *url.URL
	skipMalformed bool
	logger        *slog.Logger
}

type ExtractOption func(*extractConfig)

// WithBaseURL resolves relative image URLs against base.
func WithBaseURL(base string) ExtractOption {
	return func(c *extractConfig) {
		if u, err := url.Parse(base); err == nil {
			c.baseURL = u
		}
	}
}

// WithSkipMalformed drops wrappers that have no usable image instead of
// failing the whole page.
func WithSkipMalformed() ExtractOption {
	return func(c *extractConfig) {
		c.skipMalformed = true
	}
}

func WithLogger(logger *slog.Logger) ExtractOption {
	return func(c *extractConfig) {
		c.logger = logger
	}
}

// ExtractImageURLs returns the desktop image URL of every strip wrapper in
// html, in document order. A page without wrappers yields an empty slice.
// A malformed wrapper fails the extraction unless WithSkipMalformed is set.
func ExtractImageURLs(html string, opts ...ExtractOption) ([]string, error) {
	cfg := extractConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, data.Wrap(data.ErrParse, err, "failed to parse page")
	}

	urls := []string{}
	var extractErr error
	doc.Find(wrapperSelector).EachWithBreak(func(i int, wrapper *goquery.Selection) bool {
		src, err := extractNode(i, wrapper)
		if err != nil {
			if cfg.skipMalformed {
				cfg.logger.Warn("skipping malformed strip", "index", i, "error", err)
				return true
			}
			extractErr = err
			return false
		}
		urls = append(urls, resolve(cfg.baseURL, src))
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return urls, nil
}

// extractNode reads the desktop image URL of the first image inside wrapper.
func extractNode(index int, wrapper *goquery.Selection) (string, error) {
	img := wrapper.Find("img").First()
	if img.Length() == 0 {
		return "", data.Errorf(data.ErrParse, "strip %d has no image", index)
	}
	src, ok := img.Attr(desktopImageAttr)
	if !ok || strings.TrimSpace(src) == "" {
		return "", data.Errorf(data.ErrParse, "strip %d image has no %s attribute", index, desktopImageAttr)
	}
	return strings.TrimSpace(src), nil
}

func resolve(base *url.URL, raw string) string {
	if base == nil {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() {
		return raw
	}
	return base.ResolveReference(u).String()
}

// Estadao scrapes the strips published on the Estadão comics page.
type Estadao struct {
	http    *utils.HTTP
	pageURL string
	extract []ExtractOption
}

type Option func(*Estadao)

func WithClient(client *http.Client) Option {
	return func(e *Estadao) {
		e.http = utils.NewHTTP(client)
	}
}

func WithPageURL(pageURL string) Option {
	return func(e *Estadao) {
		e.pageURL = pageURL
	}
}

func WithExtractOptions(opts ...ExtractOption) Option {
	return func(e *Estadao) {
		e.extract = append(e.extract, opts...)
	}
}

func NewEstadao(opts ...Option) *Estadao {
	e := &Estadao{
		http:    utils.NewHTTP(http.DefaultClient),
		pageURL: DefaultPageURL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PageURL returns the page the strips are scraped from.
func (e *Estadao) PageURL() string {
	return e.pageURL
}

// FetchPage downloads the comics page and returns it as text.
func (e *Estadao) FetchPage(ctx context.Context) (string, error) {
	return e.http.GetText(ctx, e.pageURL)
}

// ImageURLs fetches the comics page and extracts the strip image URLs.
func (e *Estadao) ImageURLs(ctx context.Context) ([]string, error) {
	html, err := e.FetchPage(ctx)
	if err != nil {
		return nil, err
	}
	opts := append([]ExtractOption{WithBaseURL(e.pageURL)}, e.extract...)
	return ExtractImageURLs(html, opts...)
}
