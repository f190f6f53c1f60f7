package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"articlesum/internal/domain"
	"articlesum/internal/logging"
	"articlesum/internal/store"
	"articlesum/internal/summarizer"
)

var (
	ErrMissingInput      = errors.New("either 'url' or 'text' must be provided")
	ErrUnsupportedMethod = errors.New("unsupported summarization method")
)

const (
	DefaultSentences     = 5
	DefaultMinTextLength = 50

	// textPreviewLen is how much of a raw text input is kept as the record's source.
	textPreviewLen = 200
)

// Options tune a SummaryService. Zero values fall back to the defaults above.
type Options struct {
	DefaultSentences int
	MinTextLength    int
}

// SummarizeRequest is one summarization call. Exactly one of URL or Text is
// used; URL wins when both are set.
type SummarizeRequest struct {
	URL       string
	Text      string
	Method    string
	Sentences int
	// NoSave skips persisting the record. Usage is still logged.
	NoSave bool
}

// SummarizeResult is what callers get back from Summarize.
type SummarizeResult struct {
	ID             int64
	Summary        string
	WordCount      int
	Source         string
	Method         string
	OriginalLength int
	Title          string
}

// Analytics is the usage report over the record store.
type Analytics struct {
	TotalAPICalls    int     `json:"total_api_calls"`
	SuccessfulCalls  int     `json:"successful_calls"`
	SuccessRate      string  `json:"success_rate"`
	TotalSummaries   int     `json:"total_summaries"`
	AvgSummaryLength float64 `json:"avg_summary_length"`
}

// SummaryService ties extraction, summarization and the record store together.
type SummaryService struct {
	extractor  domain.Extractor
	summarizer domain.Summarizer
	store      domain.Store
	log        *logging.Logger
	now        func() time.Time

	defaultSentences int
	minTextLength    int
}

func NewSummaryService(extractor domain.Extractor, sum domain.Summarizer, st domain.Store, log *logging.Logger, opts Options) *SummaryService {
	if opts.DefaultSentences <= 0 {
		opts.DefaultSentences = DefaultSentences
	}
	if opts.MinTextLength <= 0 {
		opts.MinTextLength = DefaultMinTextLength
	}
	if log == nil {
		log = logging.NewDiscard()
	}
	return &SummaryService{
		extractor:        extractor,
		summarizer:       sum,
		store:            st,
		log:              log,
		now:              time.Now,
		defaultSentences: opts.DefaultSentences,
		minTextLength:    opts.MinTextLength,
	}
}

// Summarize runs one request and records its outcome under endpoint.
func (s *SummaryService) Summarize(ctx context.Context, endpoint string, req SummarizeRequest) (SummarizeResult, error) {
	res, err := s.summarize(ctx, req)
	if logErr := s.store.LogCall(ctx, domain.CallEvent{Endpoint: endpoint, Timestamp: s.now(), Success: err == nil}); logErr != nil {
		s.log.Error("log call %s: %v", endpoint, logErr)
	}
	if err != nil {
		s.log.Debug("summarize failed: %v", err)
		return SummarizeResult{}, err
	}
	s.log.Info("summarized %s source: %d -> %d words", res.Source, res.OriginalLength, res.WordCount)
	return res, nil
}

func (s *SummaryService) summarize(ctx context.Context, req SummarizeRequest) (SummarizeResult, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" && strings.TrimSpace(req.Text) == "" {
		return SummarizeResult{}, ErrMissingInput
	}
	method := req.Method
	if method == "" {
		method = domain.MethodExtractive
	}
	if method != domain.MethodExtractive {
		return SummarizeResult{}, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	sentences := req.Sentences
	if sentences == 0 {
		sentences = s.defaultSentences
	}

	var text, title, sourceType, sourceContent string
	if rawURL != "" {
		article, err := s.extractor.Extract(ctx, rawURL)
		if err != nil {
			return SummarizeResult{}, err
		}
		text, title = article.Text, article.Title
		sourceType, sourceContent = domain.SourceURL, rawURL
	} else {
		text = req.Text
		sourceType, sourceContent = domain.SourceText, domain.TruncateRunes(text, textPreviewLen)
	}

	if n := len([]rune(strings.TrimSpace(text))); n < s.minTextLength {
		return SummarizeResult{}, &summarizer.Error{
			Kind:   summarizer.KindInputTooShort,
			Detail: fmt.Sprintf("%d characters, need at least %d", n, s.minTextLength),
		}
	}

	summary, err := s.summarizer.Summarize(text, sentences)
	if err != nil {
		return SummarizeResult{}, err
	}
	res := SummarizeResult{
		Summary:        summary,
		WordCount:      len(strings.Fields(summary)),
		Source:         sourceType,
		Method:         method,
		OriginalLength: len(strings.Fields(text)),
		Title:          title,
	}
	if req.NoSave {
		return res, nil
	}
	id, err := s.store.SaveSummary(ctx, domain.SummaryRecord{
		SourceType:     sourceType,
		SourceContent:  sourceContent,
		Summary:        summary,
		WordCount:      res.WordCount,
		OriginalLength: res.OriginalLength,
		Method:         method,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return SummarizeResult{}, fmt.Errorf("save summary: %w", err)
	}
	res.ID = id
	return res, nil
}

// History returns the most recent summaries, newest first.
func (s *SummaryService) History(ctx context.Context, limit int) ([]domain.SummaryRecord, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}
	return s.store.ListSummaries(ctx, limit)
}

// Analytics reports call counts and summary statistics.
func (s *SummaryService) Analytics(ctx context.Context) (Analytics, error) {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return Analytics{}, err
	}
	rate := 0.0
	if st.TotalCalls > 0 {
		rate = float64(st.SuccessfulCalls) / float64(st.TotalCalls) * 100
	}
	return Analytics{
		TotalAPICalls:    st.TotalCalls,
		SuccessfulCalls:  st.SuccessfulCalls,
		SuccessRate:      fmt.Sprintf("%.2f%%", rate),
		TotalSummaries:   st.TotalSummaries,
		AvgSummaryLength: math.Round(st.AvgWordCount*100) / 100,
	}, nil
}

// Delete removes a summary. Returns store.ErrNotFound if id is unknown.
func (s *SummaryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteSummary(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted summary %d", id)
	return nil
}
