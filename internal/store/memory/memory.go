package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"articlesum/internal/domain"
	"articlesum/internal/store"
)

// Storage is an in-memory record store. Contents are lost on exit.
type Storage struct {
	mu        sync.RWMutex
	now       func() time.Time
	nextID    int64
	summaries []domain.SummaryRecord
	calls     []domain.CallEvent
}

func NewStorage() *Storage { return &Storage{now: time.Now} }

func (s *Storage) SaveSummary(ctx context.Context, rec domain.SummaryRecord) (int64, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rec.ID = s.nextID
	rec.SourceContent = domain.TruncateRunes(rec.SourceContent, domain.MaxSourceContentLen)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	s.summaries = append(s.summaries, rec)
	return rec.ID, nil
}

func (s *Storage) ListSummaries(ctx context.Context, limit int) ([]domain.SummaryRecord, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = store.DefaultListLimit
	}
	out := make([]domain.SummaryRecord, len(s.summaries))
	copy(out, s.summaries)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *Storage) DeleteSummary(ctx context.Context, id int64) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.summaries {
		if rec.ID == id {
			s.summaries = append(s.summaries[:i], s.summaries[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Storage) LogCall(ctx context.Context, ev domain.CallEvent) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.now()
	}
	s.calls = append(s.calls, ev)
	return nil
}

func (s *Storage) Stats(ctx context.Context) (domain.Stats, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()
	st := domain.Stats{TotalCalls: len(s.calls), TotalSummaries: len(s.summaries)}
	for _, c := range s.calls {
		if c.Success {
			st.SuccessfulCalls++
		}
	}
	if len(s.summaries) > 0 {
		total := 0
		for _, rec := range s.summaries {
			total += rec.WordCount
		}
		st.AvgWordCount = float64(total) / float64(len(s.summaries))
	}
	return st, nil
}

func (s *Storage) Close() error { return nil }
