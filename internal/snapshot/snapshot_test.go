package snapshot

import (
	"context"
	"fmt"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	calls int
}

func (f *fakeImages) ImageURL(ctx context.Context, deckURL string) *string {
	f.calls++
	if deckURL == "" {
		return nil
	}
	image := deckURL + ".png"
	return &image
}

func rankingRow(eventID, organizer string, category model.Category, rank, seq int) model.RankingRow {
	return model.RankingRow{
		ID:                 model.RankingRowID(eventID, rank, seq),
		EventID:            eventID,
		DateKey:            "20250307",
		Organizer:          organizer,
		Category:           category,
		Rank:               rank,
		SequenceWithinRank: seq,
		PlayerID:           fmt.Sprintf("%s-%d-%d", eventID, rank, seq),
		DeckURL:            fmt.Sprintf("https://deck/%s/%d/%d", eventID, rank, seq),
	}
}

func seed(t *testing.T, s store.Store) {
	t.Helper()
	events := []model.Event{
		{ID: "event-20250307-open-001", DateKey: "20250307", Category: model.CategoryOpen, Organizer: " Shop A "},
		{ID: "event-20250307-open-002", DateKey: "20250307", Category: model.CategoryOpen, Organizer: ""},
		{ID: "event-20250307-junior-001", DateKey: "20250307", Category: model.CategoryJunior, Organizer: "Shop B"},
		{ID: "event-20250308-open-001", DateKey: "20250308", Category: model.CategoryOpen, Organizer: "Shop C"},
	}
	rows := []model.RankingRow{
		rankingRow("event-20250307-open-001", " Shop A ", model.CategoryOpen, 9, 0),
		rankingRow("event-20250307-open-001", " Shop A ", model.CategoryOpen, 1, 0),
		rankingRow("event-20250307-open-001", " Shop A ", model.CategoryOpen, 3, 0),
		rankingRow("event-20250307-open-001", " Shop A ", model.CategoryOpen, 3, 1),
		rankingRow("event-20250307-open-002", "", model.CategoryOpen, 1, 0),
		rankingRow("event-20250307-open-002", "", model.CategoryOpen, 5, 0),
		rankingRow("event-20250307-junior-001", "Shop B", model.CategoryJunior, 1, 0),
		rankingRow("event-20250308-open-001", "Shop C", model.CategoryOpen, 1, 0),
	}
	rows[1].DeckName = "Dragapult ex"

	writes := []store.Write{}
	for _, e := range events {
		writes = append(writes, store.Write{Collection: model.EventsCollection, ID: e.ID, Doc: e})
	}
	for _, r := range rows {
		writes = append(writes, store.Write{Collection: model.RankingsCollection, ID: r.ID, Doc: r})
	}
	require.NoError(t, s.BatchWrite(context.Background(), writes))
}

func newBuilder(t *testing.T) (Builder, store.Store, *fakeImages) {
	t.Helper()
	s, err := store.OpenMemory(context.Background())
	require.NoError(t, err)
	seed(t, s)
	images := &fakeImages{}
	clock := chrono.FixedImpl{At: time.Date(2025, 3, 8, 6, 0, 0, 0, chrono.JST)}
	return NewBuilder(s, images, clock, telemetry.NewRecorder(nil)), s, images
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	builder, s, _ := newBuilder(t)

	result, err := builder.Build(ctx, "20250307", false, nil)
	require.NoError(t, err)
	require.Equal(t, []CategoryResult{
		{Category: model.CategoryOpen, Status: StatusWritten, Rows: 6, Groups: 2},
		{Category: model.CategorySenior, Status: StatusSkippedEmpty},
		{Category: model.CategoryJunior, Status: StatusWritten, Rows: 1, Groups: 1},
	}, result.Categories)

	open, err := store.GetAs[model.DailySnapshot](ctx, s, model.SnapshotsCollection, "20250307-Open")
	require.NoError(t, err)
	require.Equal(t, "3/7", open.DateLabel)
	require.Equal(t, model.SnapshotSchemaVersion, open.SchemaVersion)

	ranks := []int{}
	groupIDs := []string{}
	for _, r := range open.Rankings {
		ranks = append(ranks, r.Rank)
		groupIDs = append(groupIDs, r.GroupID)
	}
	require.Equal(t, []int{1, 1, 3, 3, 5, 9}, ranks)
	require.Equal(t, []string{
		"20250307_event-20250307-open-001_1_0",
		"20250307_event-20250307-open-002_1_0",
		"20250307_event-20250307-open-001_3_0",
		"20250307_event-20250307-open-001_3_1",
		"",
		"",
	}, groupIDs)
	require.Equal(t, "Dragapult ex", open.Rankings[0].DeckName)
	require.NotNil(t, open.Rankings[0].ImageURL)

	require.Len(t, open.Groups, 2)
	require.Equal(t, "Shop A", open.Groups[0].Organizer)
	require.Len(t, open.Groups[0].Rankings, 4)
	require.Equal(t, "unknown", open.Groups[1].Organizer)
	require.Len(t, open.Groups[1].Rankings, 2)

	_, err = s.Get(ctx, model.SnapshotsCollection, "20250307-Senior")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBuildSkipsExisting(t *testing.T) {
	ctx := context.Background()
	builder, _, images := newBuilder(t)

	_, err := builder.Build(ctx, "20250307", false, nil)
	require.NoError(t, err)
	calls := images.calls

	result, err := builder.Build(ctx, "20250307", false, nil)
	require.NoError(t, err)
	require.Equal(t, StatusSkippedExisting, result.Categories[0].Status)
	require.Equal(t, StatusSkippedEmpty, result.Categories[1].Status)
	require.Equal(t, StatusSkippedExisting, result.Categories[2].Status)
	require.Equal(t, 0, result.Written())
	require.Equal(t, calls, images.calls)
}

func TestRebuildDeterminism(t *testing.T) {
	ctx := context.Background()
	builder, s, _ := newBuilder(t)

	_, err := builder.Build(ctx, "20250307", true, nil)
	require.NoError(t, err)
	first, err := store.GetAs[model.DailySnapshot](ctx, s, model.SnapshotsCollection, "20250307-Open")
	require.NoError(t, err)

	result, err := builder.Build(ctx, "20250307", true, []string{"event-20250307-open-001"})
	require.NoError(t, err)
	require.Equal(t, 2, result.Written())
	second, err := store.GetAs[model.DailySnapshot](ctx, s, model.SnapshotsCollection, "20250307-Open")
	require.NoError(t, err)

	diff := cmp.Diff(first, second, cmpopts.IgnoreFields(model.DailySnapshot{}, "GeneratedAt"))
	require.Empty(t, diff)
}

func TestAssembleIsOrderIndependent(t *testing.T) {
	rows := []model.RankingRow{
		rankingRow("b", "x", model.CategoryOpen, 2, 0),
		rankingRow("a", "x", model.CategoryOpen, 1, 0),
		rankingRow("a", "x", model.CategoryOpen, 1, 1),
		rankingRow("b", "y", model.CategoryOpen, 1, 0),
	}
	reversed := []model.RankingRow{rows[3], rows[2], rows[1], rows[0]}

	now := time.Date(2025, 3, 8, 0, 0, 0, 0, chrono.JST)
	first := Assemble("20250307", model.CategoryOpen, rows, nil, now)
	second := Assemble("20250307", model.CategoryOpen, reversed, nil, now)
	require.Empty(t, cmp.Diff(first.Rankings, second.Rankings))
	require.Equal(t, "20250307_a_1_1", first.Rankings[1].GroupID)
	require.Equal(t, "20250307_b_1_0", first.Rankings[2].GroupID)
}
