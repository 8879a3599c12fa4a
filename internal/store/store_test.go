package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"leaguedecks-backend/internal/components/retry"
)

type testDoc struct {
	ID       string `json:"id"`
	DateKey  string `json:"dateKey"`
	Rank     int    `json:"rank"`
	Flag     bool   `json:"flag"`
	DeckName string `json:"deckName,omitempty"`
}

func newTestStore(t *testing.T) SQLStore {
	t.Helper()
	s, err := OpenMemory(context.Background())
	require.NoError(t, err)
	return s
}

func seed(t *testing.T, s Store, docs ...testDoc) {
	t.Helper()
	writes := make([]Write, len(docs))
	for i, d := range docs {
		writes[i] = Write{Collection: "docs", ID: d.ID, Doc: d}
	}
	require.NoError(t, s.BatchWrite(context.Background(), writes))
}

func TestGetAndNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, testDoc{ID: "a", DateKey: "20250307", Rank: 1})

	doc, err := GetAs[testDoc](ctx, s, "docs", "a")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Rank)

	_, err = s.Get(ctx, "docs", "missing")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "other", "a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestQueryFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s,
		testDoc{ID: "a", DateKey: "20250307", Rank: 9, Flag: true},
		testDoc{ID: "b", DateKey: "20250307", Rank: 1},
		testDoc{ID: "c", DateKey: "20250308", Rank: 2, Flag: true},
		testDoc{ID: "d", DateKey: "20250307", Rank: 3, Flag: true},
	)

	docs, err := QueryAs[testDoc](ctx, s, Query{
		Collection: "docs",
		Filters:    []Filter{Eq("dateKey", "20250307")},
		OrderBy:    []Order{{Field: "rank"}},
	})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, []string{"b", "d", "a"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})

	flagged, err := QueryAs[testDoc](ctx, s, Query{
		Collection: "docs",
		Filters:    []Filter{Eq("flag", true), {Field: "rank", Op: OpGte, Value: 3}},
	})
	require.NoError(t, err)
	require.Len(t, flagged, 2)

	latest, err := QueryAs[testDoc](ctx, s, Query{
		Collection: "docs",
		OrderBy:    []Order{{Field: IDField, Desc: true}},
		Limit:      1,
	})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	require.Equal(t, "d", latest[0].ID)

	_, err = s.Query(ctx, Query{Collection: "docs", Filters: []Filter{Eq("rank') or 1=1 --", 1)}})
	require.Error(t, err)
}

func TestQueryInChunks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ids := []string{}
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("doc-%02d", i)
		ids = append(ids, id)
		seed(t, s, testDoc{ID: id, DateKey: "20250307", Rank: i})
	}

	docs, err := QueryInAs[testDoc](ctx, s, Query{Collection: "docs"}, "id", ids[3:24])
	require.NoError(t, err)
	require.Len(t, docs, 21)

	none, err := QueryInAs[testDoc](ctx, s, Query{Collection: "docs"}, "id", nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMergeWritePreservesFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	write := func(doc testDoc) {
		err := s.BatchWrite(ctx, []Write{{
			Collection: "docs",
			ID:         doc.ID,
			Doc:        doc,
			Merge:      true,
			Preserve:   []string{"flag"},
		}})
		require.NoError(t, err)
	}

	write(testDoc{ID: "a", Rank: 1})
	require.NoError(t, s.Update(ctx, "docs", "a", map[string]any{"flag": true, "deckName": "Lugia VSTAR"}))

	write(testDoc{ID: "a", Rank: 2})
	doc, err := GetAs[testDoc](ctx, s, "docs", "a")
	require.NoError(t, err)
	require.Equal(t, testDoc{ID: "a", Rank: 2, Flag: true, DeckName: "Lugia VSTAR"}, doc)

	err = s.Update(ctx, "docs", "missing", map[string]any{"flag": true})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBatchWriteDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.BatchWrite(ctx, []Write{
		{Collection: "docs", ID: "a", Doc: testDoc{ID: "a", Rank: 1}},
		{Collection: "docs", ID: "b", Doc: testDoc{ID: "b", Rank: 2}},
	})
	require.NoError(t, err)

	err = s.BatchWrite(ctx, []Write{
		{Collection: "docs", ID: "a", Delete: true},
		{Collection: "docs", ID: "c", Doc: testDoc{ID: "c", Rank: 3}},
		{Collection: "docs", ID: "missing", Delete: true},
	})
	require.NoError(t, err)

	_, err = s.Get(ctx, "docs", "a")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "docs", "b")
	require.NoError(t, err)
	_, err = s.Get(ctx, "docs", "c")
	require.NoError(t, err)
}

func TestTransact(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	increment := func(current json.RawMessage) (any, error) {
		doc := testDoc{ID: "counter"}
		if current != nil {
			err := json.Unmarshal(current, &doc)
			if err != nil {
				return nil, err
			}
		}
		doc.Rank++
		return doc, nil
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Transact(ctx, "docs", "counter", increment))
	}
	doc, err := GetAs[testDoc](ctx, s, "docs", "counter")
	require.NoError(t, err)
	require.Equal(t, 3, doc.Rank)

	failure := errors.New("abort")
	err = s.Transact(ctx, "docs", "counter", func(json.RawMessage) (any, error) {
		return nil, failure
	})
	require.ErrorIs(t, err, failure)
}

type flakyStore struct {
	Store
	failures int
	calls    int
}

func (f *flakyStore) BatchWrite(ctx context.Context, writes []Write) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("database is locked")
	}
	return f.Store.BatchWrite(ctx, writes)
}

func TestRetryingStore(t *testing.T) {
	ctx := context.Background()
	flaky := &flakyStore{Store: newTestStore(t), failures: 2}

	policy := retry.DefaultPolicy()
	policy.Sleep = func(context.Context, time.Duration) error { return nil }
	s := NewRetrying(flaky, policy, nil)

	seed(t, s, testDoc{ID: "a"})
	require.Equal(t, 3, flaky.calls)

	flaky.calls = 0
	flaky.failures = 10
	err := s.BatchWrite(ctx, []Write{{Collection: "docs", ID: "b", Doc: testDoc{ID: "b"}}})
	require.Error(t, err)
	require.Equal(t, policy.MaxRetry+1, flaky.calls)
}
