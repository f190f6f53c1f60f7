// Package storetest runs the same behavioural checks against every
// domain.Store implementation.
package storetest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlesum/internal/domain"
	"articlesum/internal/store"
)

// Run exercises st. newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) domain.Store) {
	t.Run("SaveAndList", func(t *testing.T) { testSaveAndList(t, newStore(t)) })
	t.Run("ListLimit", func(t *testing.T) { testListLimit(t, newStore(t)) })
	t.Run("TruncatesSourceContent", func(t *testing.T) { testTruncate(t, newStore(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newStore(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStore(t)) })
	t.Run("EmptyStats", func(t *testing.T) { testEmptyStats(t, newStore(t)) })
	t.Run("Concurrent", func(t *testing.T) { testConcurrent(t, newStore(t)) })
}

func record(summary string, words int, at time.Time) domain.SummaryRecord {
	return domain.SummaryRecord{
		SourceType:     domain.SourceText,
		SourceContent:  "source of " + summary,
		Summary:        summary,
		WordCount:      words,
		OriginalLength: words * 4,
		Method:         domain.MethodExtractive,
		CreatedAt:      at,
	}
}

func testSaveAndList(t *testing.T, st domain.Store) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	id1, err := st.SaveSummary(ctx, record("first", 3, base))
	require.NoError(t, err)
	id2, err := st.SaveSummary(ctx, record("second", 5, base.Add(time.Minute)))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	got, err := st.ListSummaries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, id2, got[0].ID)
	assert.Equal(t, "second", got[0].Summary)
	assert.Equal(t, "first", got[1].Summary)
	assert.Equal(t, domain.SourceText, got[1].SourceType)
	assert.Equal(t, "source of first", got[1].SourceContent)
	assert.Equal(t, 3, got[1].WordCount)
	assert.Equal(t, 12, got[1].OriginalLength)
	assert.Equal(t, domain.MethodExtractive, got[1].Method)
	assert.True(t, base.Equal(got[1].CreatedAt), "created_at %v", got[1].CreatedAt)
}

func testListLimit(t *testing.T, st domain.Store) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		_, err := st.SaveSummary(ctx, record("s", i, base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	got, err := st.ListSummaries(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 14, got[0].WordCount)
	assert.Equal(t, 12, got[2].WordCount)

	got, err = st.ListSummaries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, store.DefaultListLimit)
}

func testTruncate(t *testing.T, st domain.Store) {
	ctx := context.Background()
	rec := record("long", 1, time.Now())
	rec.SourceContent = strings.Repeat("é", domain.MaxSourceContentLen+100)

	_, err := st.SaveSummary(ctx, rec)
	require.NoError(t, err)

	got, err := st.ListSummaries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, strings.Repeat("é", domain.MaxSourceContentLen), got[0].SourceContent)
}

func testDelete(t *testing.T, st domain.Store) {
	ctx := context.Background()
	id, err := st.SaveSummary(ctx, record("doomed", 2, time.Now()))
	require.NoError(t, err)

	require.NoError(t, st.DeleteSummary(ctx, id))
	assert.ErrorIs(t, st.DeleteSummary(ctx, id), store.ErrNotFound)
	assert.ErrorIs(t, st.DeleteSummary(ctx, 9999), store.ErrNotFound)

	got, err := st.ListSummaries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testStats(t *testing.T, st domain.Store) {
	ctx := context.Background()
	for _, ok := range []bool{true, true, false, true} {
		require.NoError(t, st.LogCall(ctx, domain.CallEvent{Endpoint: "/summarize", Success: ok}))
	}
	_, err := st.SaveSummary(ctx, record("a", 10, time.Now()))
	require.NoError(t, err)
	_, err = st.SaveSummary(ctx, record("b", 15, time.Now()))
	require.NoError(t, err)

	got, err := st.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalCalls)
	assert.Equal(t, 3, got.SuccessfulCalls)
	assert.Equal(t, 2, got.TotalSummaries)
	assert.InDelta(t, 12.5, got.AvgWordCount, 1e-9)
}

func testEmptyStats(t *testing.T, st domain.Store) {
	got, err := st.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, got)
}

func testConcurrent(t *testing.T, st domain.Store) {
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := st.SaveSummary(ctx, record("c", i, time.Now()))
			assert.NoError(t, err)
			assert.NoError(t, st.LogCall(ctx, domain.CallEvent{Endpoint: "/summarize", Success: true}))
		}(i)
	}
	wg.Wait()

	got, err := st.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, got.TotalSummaries)
	assert.Equal(t, 8, got.TotalCalls)
}
