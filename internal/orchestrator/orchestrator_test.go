package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/acquire"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/retry"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/notify"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"leaguedecks-backend/internal/store"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedTime = chrono.FixedImpl{At: time.Date(2025, 3, 8, 6, 0, 0, 0, chrono.JST)}

type fakeListing struct {
	pages map[int][]cardsite.ListingRow
	err   error
}

func (f fakeListing) ListingPage(ctx context.Context, page int) ([]cardsite.ListingRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[page], nil
}

type fakeLadder struct{}

func (fakeLadder) AcquireWithRescue(ctx context.Context, event model.Event, rescue bool) (acquire.Result, error) {
	rows := []acquire.Row{}
	for i, rank := range []int{1, 2, 3, 3} {
		rows = append(rows, acquire.Row{
			Rank:     rank,
			PlayerID: fmt.Sprintf("%s-player-%d", event.ID, i),
			DeckID:   fmt.Sprintf("deck-%d", i),
			DeckURL:  fmt.Sprintf("https://www.pokemon-card.com/deck/confirm.html/deckID/deck-%d", i),
			Tier:     "api",
		})
	}
	return acquire.Result{Rows: rows, Tier: "api"}, nil
}

type fakeImages struct{}

func (fakeImages) ImageURL(ctx context.Context, deckURL string) *string {
	url := deckURL + ".png"
	return &url
}

type recordingNotifier struct {
	mutex    *sync.Mutex
	messages *[]notify.Message
	err      error
}

func newRecordingNotifier(err error) recordingNotifier {
	return recordingNotifier{mutex: &sync.Mutex{}, messages: &[]notify.Message{}, err: err}
}

func (n recordingNotifier) Notify(ctx context.Context, msg notify.Message) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	*n.messages = append(*n.messages, msg)
	return n.err
}

func (n recordingNotifier) sent() []notify.Message {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return append([]notify.Message{}, *n.messages...)
}

func listingRow(date, title, id string) cardsite.ListingRow {
	return cardsite.ListingRow{
		DateText:  date,
		Title:     title,
		Organizer: "Shop " + id,
		DetailURL: "https://players.pokemon-card.com/event/detail/" + id + "/result",
	}
}

func setup(t *testing.T, listing fakeListing, notifier notify.Notifier) (Orchestrator, store.Store) {
	t.Helper()
	mem, err := store.OpenMemory(context.Background())
	require.NoError(t, err)
	policy := retry.Policy{
		MaxRetry:  1,
		BaseDelay: time.Millisecond,
		MaxDelay:  time.Millisecond,
		Sleep:     func(ctx context.Context, d time.Duration) error { return nil },
	}
	o := NewOrchestrator(Dependencies{
		Store:    store.NewRetrying(mem, policy, nil),
		Listing:  listing,
		Ladder:   fakeLadder{},
		Images:   fakeImages{},
		Notifier: notifier,
		Time:     fixedTime,
		Tel:      telemetry.NewRecorder(nil),
	})
	return o, mem
}

func TestTargetDate(t *testing.T) {
	cases := []struct {
		override string
		expected string
		err      bool
	}{
		{override: "", expected: "20250307"},
		{override: " 20250301 ", expected: "20250301"},
		{override: "2025031", err: true},
		{override: "2025-03-01", err: true},
		{override: "20251345", err: true},
	}
	for _, tc := range cases {
		date, err := TargetDate(tc.override, fixedTime)
		if tc.err {
			require.ErrorIs(t, err, ErrInvalidDate, tc.override)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.expected, date)
	}
}

func TestRun(t *testing.T) {
	notifier := newRecordingNotifier(nil)
	o, s := setup(t, fakeListing{pages: map[int][]cardsite.ListingRow{
		1: {
			listingRow("3/7(金)", "シティリーグ オープン", "612345"),
			listingRow("3/8(土)", "シティリーグ オープン", "612346"),
		},
	}}, notifier)

	ctx := context.Background()
	record, err := o.Run(ctx, Request{})
	require.NoError(t, err)
	require.True(t, record.OK)
	require.Equal(t, model.StatusFinished, record.Status)
	require.Equal(t, model.PhaseFinish, record.Phase)
	require.Equal(t, "20250307", record.TargetDate)
	require.NotNil(t, record.EndedAt)
	require.Equal(t, "0s", record.DurationHuman)

	require.NotNil(t, record.Summary)
	require.Equal(t, 1, record.Summary.ProbedEvents)
	require.Equal(t, 1, record.Summary.NewEvents)
	require.Equal(t, 4, record.Summary.CollectedRows)
	require.Equal(t, model.CategoryCounts{
		Events:      1,
		Rankings:    4,
		Deckable:    4,
		Snapshotted: true,
	}, record.Summary.Categories[model.CategoryOpen])

	sent := notifier.sent()
	require.Len(t, sent, 1)
	require.Equal(t, notify.KindSummary, sent[0].Kind)
	require.Equal(t, record.ID, sent[0].ExecutionID)

	snapshot, err := store.GetAs[model.DailySnapshot](ctx, s, model.SnapshotsCollection, "20250307-Open")
	require.NoError(t, err)
	require.Len(t, snapshot.Rankings, 4)

	latest, err := o.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, record.ID, latest.ID)
	require.True(t, latest.OK)

	// a rerun finds the same event and writes nothing new
	again, err := o.Run(ctx, Request{Date: "20250307"})
	require.NoError(t, err)
	require.Equal(t, 0, again.Summary.NewEvents)
	require.Equal(t, 1, again.Summary.ProbedEvents)
	require.Equal(t, 0, again.Summary.CollectedRows)
	require.Equal(t, 4, again.Summary.Categories[model.CategoryOpen].Rankings)
}

func TestRunZeroEvents(t *testing.T) {
	notifier := newRecordingNotifier(nil)
	o, s := setup(t, fakeListing{pages: map[int][]cardsite.ListingRow{
		1: {listingRow("3/8(土)", "シティリーグ オープン", "612346")},
	}}, notifier)

	ctx := context.Background()
	record, err := o.Run(ctx, Request{})
	require.NoError(t, err)
	require.True(t, record.OK)
	require.Equal(t, model.PhaseFinish, record.Phase)
	require.Equal(t, 0, record.Summary.ProbedEvents)

	sent := notifier.sent()
	require.Len(t, sent, 1)
	require.Equal(t, notify.KindEmpty, sent[0].Kind)

	docs, err := s.Query(ctx, store.Query{Collection: model.SnapshotsCollection})
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestRunError(t *testing.T) {
	notifier := newRecordingNotifier(nil)
	o, _ := setup(t, fakeListing{err: errors.New("503 service unavailable")}, notifier)

	ctx := context.Background()
	record, err := o.Run(ctx, Request{Force: true})
	require.ErrorContains(t, err, "probe")
	require.False(t, record.OK)
	require.Equal(t, model.StatusError, record.Status)
	require.Equal(t, model.PhaseError, record.Phase)
	require.Contains(t, record.Error, "503 service unavailable")
	require.Empty(t, notifier.sent())

	latest, err := o.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, model.StatusError, latest.Status)
	require.True(t, latest.Force)
}

func TestRunNotifyFailure(t *testing.T) {
	o, _ := setup(t, fakeListing{pages: map[int][]cardsite.ListingRow{
		1: {listingRow("3/7(金)", "シティリーグ シニア", "612345")},
	}}, newRecordingNotifier(errors.New("smtp down")))

	record, err := o.Run(context.Background(), Request{})
	require.NoError(t, err)
	require.True(t, record.OK)
	require.Equal(t, model.StatusFinished, record.Status)

	found := false
	for _, line := range record.Logs {
		if line == "WARN run.notify-failed smtp down" {
			found = true
		}
	}
	require.True(t, found, record.Logs)
}

func TestStart(t *testing.T) {
	o, _ := setup(t, fakeListing{pages: map[int][]cardsite.ListingRow{
		1: {listingRow("3/7(金)", "シティリーグ ジュニア", "612345")},
	}}, newRecordingNotifier(nil))

	ctx := context.Background()
	_, err := o.Start(ctx, Request{Date: "March 7"})
	require.ErrorIs(t, err, ErrInvalidDate)

	id, err := o.Start(ctx, Request{})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Eventually(t, func() bool {
		record, err := o.Get(ctx, id)
		return err == nil && record.Status == model.StatusFinished
	}, 5*time.Second, 10*time.Millisecond)
}

func TestLatestEmpty(t *testing.T) {
	o, _ := setup(t, fakeListing{}, newRecordingNotifier(nil))
	_, err := o.Latest(context.Background())
	require.ErrorIs(t, err, store.ErrNotFound)
}
