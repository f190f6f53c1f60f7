package domain

import (
	"context"
	"time"
)

// Source types recorded with every summary.
const (
	SourceURL  = "url"
	SourceText = "text"
)

// MethodExtractive is the only supported summarization method.
const MethodExtractive = "extractive"

// MaxSourceContentLen caps how much of the source is persisted with a summary.
const MaxSourceContentLen = 500

// Article is readable text extracted from a web page.
type Article struct {
	URL   string
	Title string
	Text  string
}

// SummaryRecord is a persisted summary.
type SummaryRecord struct {
	ID             int64     `json:"id"`
	SourceType     string    `json:"source_type"`
	SourceContent  string    `json:"source_content"`
	Summary        string    `json:"summary"`
	WordCount      int       `json:"word_count"`
	OriginalLength int       `json:"original_length"`
	Method         string    `json:"method"`
	CreatedAt      time.Time `json:"created_at"`
}

// CallEvent is an append-only usage log entry.
type CallEvent struct {
	Endpoint  string
	Timestamp time.Time
	Success   bool
}

// Stats aggregates the record store.
type Stats struct {
	TotalCalls      int
	SuccessfulCalls int
	TotalSummaries  int
	AvgWordCount    float64
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Extractor downloads a web page and returns its article text.
type Extractor interface {
	Extract(ctx context.Context, url string) (Article, error)
}

// Store persists summaries and usage events.
type Store interface {
	SaveSummary(ctx context.Context, rec SummaryRecord) (int64, error)
	ListSummaries(ctx context.Context, limit int) ([]SummaryRecord, error)
	DeleteSummary(ctx context.Context, id int64) error
	LogCall(ctx context.Context, ev CallEvent) error
	Stats(ctx context.Context) (Stats, error)
	Close() error
}

// TruncateRunes shortens s to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
