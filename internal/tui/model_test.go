package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlesum/internal/domain"
	"articlesum/internal/service"
	"articlesum/internal/store"
)

type fakePort struct {
	records []domain.SummaryRecord
	lastReq service.SummarizeRequest
	err     error
}

func (f *fakePort) Summarize(ctx context.Context, endpoint string, req service.SummarizeRequest) (service.SummarizeResult, error) {
	f.lastReq = req
	if f.err != nil {
		return service.SummarizeResult{}, f.err
	}
	source := domain.SourceText
	if req.URL != "" {
		source = domain.SourceURL
	}
	return service.SummarizeResult{ID: 99, Summary: "Short summary.", WordCount: 2, Source: source, OriginalLength: 60}, nil
}

func (f *fakePort) History(ctx context.Context, limit int) ([]domain.SummaryRecord, error) {
	return f.records, nil
}

func (f *fakePort) Delete(ctx context.Context, id int64) error {
	for _, r := range f.records {
		if r.ID == id {
			return nil
		}
	}
	return store.ErrNotFound
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func loaded(t *testing.T, port *fakePort) Model {
	t.Helper()
	m := New(port, 3)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	msg := m.loadHistory()()
	m, _ = update(t, m, msg)
	return m
}

func TestHistoryNavigation(t *testing.T) {
	port := &fakePort{records: []domain.SummaryRecord{
		{ID: 2, SourceType: domain.SourceText, Summary: "Second summary."},
		{ID: 1, SourceType: domain.SourceURL, SourceContent: "https://example.com", Summary: "First summary."},
	}}
	m := loaded(t, port)
	assert.Contains(t, m.renderCurrent(), "Second summary.")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.renderCurrent(), "First summary.")
	assert.Contains(t, m.renderCurrent(), "https://example.com")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.cursor)
}

func TestSummarizeRunsAsCommand(t *testing.T) {
	port := &fakePort{}
	m := loaded(t, port)
	assert.Contains(t, m.renderCurrent(), "No summaries yet.")

	m = typeText(t, m, "https://example.com/story")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Equal(t, "Summarizing...", m.status)

	m, _ = update(t, m, cmd())
	assert.Equal(t, "https://example.com/story", port.lastReq.URL)
	assert.Empty(t, port.lastReq.Text)
	assert.Equal(t, 3, port.lastReq.Sentences)
	assert.False(t, m.busy)
	require.Len(t, m.records, 1)
	assert.Equal(t, int64(99), m.records[0].ID)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "Short summary.")
}

func TestSummarizeTextInput(t *testing.T) {
	port := &fakePort{}
	m := loaded(t, port)
	m = typeText(t, m, "Plain text to summarize.")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, "Plain text to summarize.", port.lastReq.Text)
	assert.Empty(t, port.lastReq.URL)
}

func TestSummarizeErrorShownInStatus(t *testing.T) {
	port := &fakePort{err: errors.New("text is too short")}
	m := loaded(t, port)
	m = typeText(t, m, "hi")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	assert.Equal(t, "Error: text is too short", m.status)
	assert.Empty(t, m.records)
	assert.Equal(t, "hi", m.input.Value())
}

func TestDeleteCurrent(t *testing.T) {
	port := &fakePort{records: []domain.SummaryRecord{
		{ID: 2, Summary: "Second summary."},
		{ID: 1, Summary: "First summary."},
	}}
	m := loaded(t, port)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Len(t, m.records, 1)
	assert.Equal(t, int64(2), m.records[0].ID)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "Deleted summary #1.", m.status)
}

func TestEmptyEnterDoesNothing(t *testing.T) {
	m := loaded(t, &fakePort{})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestNewRecordCarriesSourceAndTime(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	tests := []struct {
		name       string
		input      string
		wantSource string
	}{
		{"url", "https://example.com/story", "https://example.com/story"},
		{"text", strings.Repeat("word ", 60), strings.Repeat("word ", 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t, &fakePort{})
			m.now = func() time.Time { return at }
			m = typeText(t, m, tt.input)
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			m, _ = update(t, m, cmd())

			require.Len(t, m.records, 1)
			assert.Equal(t, tt.wantSource, m.records[0].SourceContent)
			assert.Equal(t, at, m.records[0].CreatedAt)
			assert.Contains(t, m.renderCurrent(), "2026-03-14 09:30")
		})
	}
}

func TestRenderShowsURLOfNewRecord(t *testing.T) {
	m := loaded(t, &fakePort{})
	m = typeText(t, m, "https://example.com/story")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.renderCurrent(), "https://example.com/story")
}
