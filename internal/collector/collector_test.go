package collector

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/acquire"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"leaguedecks-backend/internal/store"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedTime = chrono.FixedImpl{At: time.Date(2025, 3, 8, 6, 0, 0, 0, chrono.JST)}

type fakeAcquirer struct {
	results map[string]acquire.Result
	errs    map[string]error
	calls   []string
}

func (f *fakeAcquirer) AcquireWithRescue(ctx context.Context, event model.Event, rescue bool) (acquire.Result, error) {
	f.calls = append(f.calls, event.ID)
	if err := f.errs[event.ID]; err != nil {
		return acquire.Result{}, err
	}
	return f.results[event.ID], nil
}

func newStore(t *testing.T) store.SQLStore {
	t.Helper()
	s, err := store.OpenMemory(context.Background())
	require.NoError(t, err)
	return s
}

func seedEvents(t *testing.T, s store.Store, events ...model.Event) {
	t.Helper()
	writes := []store.Write{}
	for _, e := range events {
		writes = append(writes, store.Write{Collection: model.EventsCollection, ID: e.ID, Doc: e})
	}
	require.NoError(t, s.BatchWrite(context.Background(), writes))
}

func event(id string, category model.Category) model.Event {
	return model.Event{
		ID:        id,
		DateKey:   "20250307",
		DateLabel: "3/7",
		Organizer: "Shop",
		DetailURL: "https://players.pokemon-card.com/event/detail/612345/result",
		Category:  category,
	}
}

func rowsWithRanks(ranks ...int) []acquire.Row {
	rows := []acquire.Row{}
	for i, rank := range ranks {
		rows = append(rows, acquire.Row{
			Rank:     rank,
			PlayerID: fmt.Sprintf("player-%d", i),
			DeckID:   fmt.Sprintf("deck-%d", i),
			Tier:     "api",
		})
	}
	return rows
}

func storedRows(t *testing.T, s store.Store, eventID string) []model.RankingRow {
	t.Helper()
	rows, err := store.QueryAs[model.RankingRow](context.Background(), s, store.Query{
		Collection: model.RankingsCollection,
		Filters:    []store.Filter{store.Eq("eventId", eventID)},
		OrderBy:    []store.Order{{Field: store.IDField}},
	})
	require.NoError(t, err)
	return rows
}

func TestSequenceDeterminism(t *testing.T) {
	rows, skipped := BuildRows(event("e", model.CategoryOpen), rowsWithRanks(1, 2, 3, 3, 5, 9), fixedTime.Now())
	require.Equal(t, 0, skipped)

	sequences := []int{}
	ids := []string{}
	for _, r := range rows {
		sequences = append(sequences, r.SequenceWithinRank)
		ids = append(ids, r.ID)
	}
	require.Equal(t, []int{0, 0, 0, 1, 0, 0}, sequences)
	require.Equal(t, []string{
		"rank-e-1-00",
		"rank-e-2-00",
		"rank-e-3-00",
		"rank-e-3-01",
		"rank-e-5-00",
		"rank-e-9-00",
	}, ids)
}

func TestRowsWithoutPlayerSkipped(t *testing.T) {
	input := rowsWithRanks(1, 2, 3, 3)
	input[2].PlayerID = ""
	rows, skipped := BuildRows(event("e", model.CategoryOpen), input, fixedTime.Now())
	require.Equal(t, 1, skipped)
	require.Len(t, rows, 3)
	require.Equal(t, "rank-e-3-00", rows[2].ID)
}

func TestCollectorIdempotent(t *testing.T) {
	s := newStore(t)
	seedEvents(t, s, event("event-20250307-open-001", model.CategoryOpen))
	acquirer := &fakeAcquirer{results: map[string]acquire.Result{
		"event-20250307-open-001": {Rows: rowsWithRanks(1, 2, 3, 3, 5), Tier: "api"},
	}}
	collector := NewCollector(s, acquirer, true, fixedTime, telemetry.NewRecorder(nil))

	first, err := collector.Run(context.Background(), "20250307", nil, false)
	require.NoError(t, err)
	require.Equal(t, 5, first.Rows)
	require.Equal(t, 1, first.Collected())
	firstRows := storedRows(t, s, "event-20250307-open-001")

	stored, err := store.GetAs[model.Event](context.Background(), s, model.EventsCollection, "event-20250307-open-001")
	require.NoError(t, err)
	require.True(t, stored.RankingsCollected)
	require.True(t, fixedTime.Now().Equal(stored.RankingsCollectedAt))

	// already collected events are left alone unless forced
	second, err := collector.Run(context.Background(), "20250307", nil, false)
	require.NoError(t, err)
	require.Empty(t, second.Events)
	require.Len(t, acquirer.calls, 1)

	third, err := collector.Run(context.Background(), "20250307", nil, true)
	require.NoError(t, err)
	require.Equal(t, 5, third.Rows)
	require.Equal(t, firstRows, storedRows(t, s, "event-20250307-open-001"))
}

func TestCollectorPreservesCuratedFields(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedEvents(t, s, event("ev", model.CategoryOpen))
	acquirer := &fakeAcquirer{results: map[string]acquire.Result{
		"ev": {Rows: rowsWithRanks(1), Tier: "api"},
	}}
	collector := NewCollector(s, acquirer, true, fixedTime, telemetry.NewRecorder(nil))

	_, err := collector.Run(ctx, "20250307", nil, false)
	require.NoError(t, err)
	err = s.Update(ctx, model.RankingsCollection, "rank-ev-1-00", map[string]any{
		"imageStored": true,
		"deckName":    "Charizard ex",
	})
	require.NoError(t, err)

	_, err = collector.Run(ctx, "20250307", nil, true)
	require.NoError(t, err)
	rows := storedRows(t, s, "ev")
	require.Len(t, rows, 1)
	require.True(t, rows[0].ImageStored)
	require.Equal(t, "Charizard ex", rows[0].DeckName)
}

func TestForcedRecollectRemovesStaleRows(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedEvents(t, s, event("ev", model.CategoryOpen), event("other", model.CategoryOpen))
	acquirer := &fakeAcquirer{results: map[string]acquire.Result{
		"ev":    {Rows: rowsWithRanks(1, 3, 3, 3, 5), Tier: "positional"},
		"other": {Rows: rowsWithRanks(1), Tier: "api"},
	}}
	collector := NewCollector(s, acquirer, true, fixedTime, telemetry.NewRecorder(nil))

	_, err := collector.Run(ctx, "20250307", nil, false)
	require.NoError(t, err)
	require.Len(t, storedRows(t, s, "ev"), 5)

	acquirer.results["ev"] = acquire.Result{Rows: rowsWithRanks(1, 3), Tier: "api"}
	result, err := collector.Run(ctx, "20250307", nil, true)
	require.NoError(t, err)
	require.Equal(t, 3, result.Rows)

	ids := []string{}
	for _, row := range storedRows(t, s, "ev") {
		ids = append(ids, row.ID)
	}
	require.Equal(t, []string{"rank-ev-1-00", "rank-ev-3-00"}, ids)
	require.Len(t, storedRows(t, s, "other"), 1)
}

func TestCollectorEmptyAndMalformed(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedEvents(t, s,
		event("a-empty", model.CategoryOpen),
		event("b-malformed", model.CategorySenior),
		event("c-ok", model.CategoryJunior),
		event("d-unknown", model.CategoryUnknown),
	)
	acquirer := &fakeAcquirer{
		results: map[string]acquire.Result{
			"c-ok": {Rows: rowsWithRanks(1, 2), Tier: "positional"},
		},
		errs: map[string]error{
			"b-malformed": fmt.Errorf("%w: no id", acquire.ErrMalformedEvent),
		},
	}
	tel := telemetry.NewRecorder(nil)
	collector := NewCollector(s, acquirer, true, fixedTime, tel)

	result, err := collector.Run(ctx, "20250307", nil, false)
	require.NoError(t, err)
	require.Equal(t, []string{"a-empty", "b-malformed", "c-ok"}, acquirer.calls)
	require.Equal(t, 1, result.Collected())
	require.Equal(t, 1, result.Empty())
	require.Equal(t, 1, result.Malformed())
	require.Equal(t, 2, result.Rows)
	require.True(t, tel.Contains(report_collector_malformed_event))

	empty, err := store.GetAs[model.Event](ctx, s, model.EventsCollection, "a-empty")
	require.NoError(t, err)
	require.False(t, empty.RankingsCollected)
}

type failingWrites struct {
	store.Store
}

func (failingWrites) BatchWrite(ctx context.Context, writes []store.Write) error {
	return errors.New("disk I/O error")
}

func TestCollectorStoreFailureAborts(t *testing.T) {
	s := newStore(t)
	seedEvents(t, s, event("a", model.CategoryOpen), event("b", model.CategoryOpen))
	acquirer := &fakeAcquirer{results: map[string]acquire.Result{
		"a": {Rows: rowsWithRanks(1)},
		"b": {Rows: rowsWithRanks(1)},
	}}
	collector := NewCollector(failingWrites{Store: s}, acquirer, true, fixedTime, telemetry.NewRecorder(nil))

	_, err := collector.Run(context.Background(), "20250307", nil, false)
	require.Error(t, err)
	require.Equal(t, []string{"a"}, acquirer.calls)
}

type pagedSource struct {
	pages map[int][]cardsite.ResultEntry
}

func (p pagedSource) CategoryCode(category string) (string, error) { return "3", nil }

func (p pagedSource) SearchURL(eventID, code string, offset int) string { return "" }

func (p pagedSource) ResultsPageURL(eventID, code string, page int) string { return "" }

func (p pagedSource) SearchResults(ctx context.Context, eventID, code string, offset int) ([]cardsite.ResultEntry, error) {
	return p.pages[offset], nil
}

func entries(prefix string, ranks ...int) []cardsite.ResultEntry {
	out := []cardsite.ResultEntry{}
	for i, rank := range ranks {
		out = append(out, cardsite.ResultEntry{
			Rank:     rank,
			PlayerID: fmt.Sprintf("%s-%d", prefix, i),
			DeckID:   fmt.Sprintf("deck-%s-%d", prefix, i),
		})
	}
	return out
}

func TestOpenScenarioThirteenRows(t *testing.T) {
	s := newStore(t)
	ev := event("event-20250307-open-001", model.CategoryOpen)
	seedEvents(t, s, ev)

	source := pagedSource{pages: map[int][]cardsite.ResultEntry{
		0: entries("p1", 1, 2, 3, 3, 5, 5, 5, 5),
		8: entries("p2", 9, 9, 9, 9, 9),
	}}
	ladder := acquire.NewLadder(
		telemetry.NewRecorder(nil),
		acquire.NewAPIStrategy(source, acquire.DefaultConfig()),
	)
	collector := NewCollector(s, ladder, true, fixedTime, telemetry.NewRecorder(nil))

	result, err := collector.Run(context.Background(), "20250307", []string{ev.ID}, false)
	require.NoError(t, err)
	require.Equal(t, 13, result.Rows)

	rows := storedRows(t, s, ev.ID)
	require.Len(t, rows, 13)
	ids := map[string]bool{}
	for _, r := range rows {
		ids[r.ID] = true
		require.Equal(t, model.RankingRowID(ev.ID, r.Rank, r.SequenceWithinRank), r.ID)
		require.Equal(t, "api", r.Tier)
		require.Equal(t, model.CategoryOpen, r.Category)
		require.False(t, r.ImageStored)
	}
	for _, id := range []string{
		"rank-event-20250307-open-001-1-00",
		"rank-event-20250307-open-001-2-00",
		"rank-event-20250307-open-001-3-01",
		"rank-event-20250307-open-001-5-03",
		"rank-event-20250307-open-001-9-04",
	} {
		require.True(t, ids[id], id)
	}
}
