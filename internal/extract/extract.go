// Package extract downloads web pages and strips them down to article text.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"articlesum/internal/domain"
)

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrDownload   = errors.New("failed to download article")
	ErrNoContent  = errors.New("could not extract text from url")
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 5 << 20
	defaultTitle    = "Article"
)

// Config configures the extractor.
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
}

// Extractor fetches pages over HTTP and runs readability over them.
type Extractor struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

func New(cfg Config) *Extractor {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Extractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		maxBytes:  maxBytes,
	}
}

// Extract returns the readable text and title of the page at rawURL.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (domain.Article, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Article{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	body, err := e.fetch(ctx, u.String())
	if err != nil {
		return domain.Article{}, err
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return domain.Article{}, fmt.Errorf("%w: %v", ErrNoContent, err)
	}
	text := articleText(article)
	if text == "" {
		return domain.Article{}, ErrNoContent
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = pageTitle(body)
	}
	if title == "" {
		title = defaultTitle
	}
	return domain.Article{URL: u.String(), Title: title, Text: text}, nil
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrDownload, pageURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrDownload)
	}
	return body, nil
}

// blockSelector lists the elements whose text forms one paragraph each.
const blockSelector = "p, li, h1, h2, h3, h4, h5, h6, blockquote, pre"

// articleText puts every block of the readable content on its own line.
// TextContent concatenates sibling blocks with no separator, which glues the
// last sentence of one paragraph to the first of the next on minified pages.
func articleText(article readability.Article) string {
	if article.Node == nil {
		return strings.TrimSpace(article.TextContent)
	}
	doc := goquery.NewDocumentFromNode(article.Node)
	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		if t := strings.Join(strings.Fields(s.Text()), " "); t != "" {
			blocks = append(blocks, t)
		}
	})
	if len(blocks) == 0 {
		return strings.TrimSpace(article.TextContent)
	}
	return strings.Join(blocks, "\n")
}

// pageTitle reads the <title> element of an HTML document.
func pageTitle(html []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
