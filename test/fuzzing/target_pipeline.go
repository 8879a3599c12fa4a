package fuzzing

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/acquire"
	"leaguedecks-backend/internal/collector"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/retry"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/probe"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"leaguedecks-backend/internal/snapshot"
	"leaguedecks-backend/internal/store"
	testutil "leaguedecks-backend/test/util"
	"math/rand"
	"sort"
	"time"

	"github.com/google/go-cmp/cmp"
)

// steps:
// - add a listing row (target date 80%, another date 20%; classified 90%)
// - probe the target date
// - collect the target date (forced 30%)
// - build snapshots (forced 50%)
// - rebuild snapshots twice without faults and compare
// - fault inject: failed store operations and lost write acknowledgements

// properties of the system:
// - a detail url is persisted as at most one event
// - ranking row ids are rank-{event}-{rank}-{seq} with contiguous sequences per rank
// - an event either has no rows or exactly the rows its acquisition yields
// - snapshots are sorted by rank and only podium placements carry a group id
// - rebuilding a snapshot from the same rows produces the same rankings and groups

const targetDate = "20250307"

var fuzzTime = chrono.FixedImpl{At: time.Date(2025, 3, 8, 6, 0, 0, 0, chrono.JST)}

var rankPattern = []int{1, 2, 3, 3, 5, 5, 5, 5, 9, 9, 9, 9}

var categoryKeywords = []string{"オープン", "シニア", "ジュニア"}

type fuzzListing struct {
	rows *[]cardsite.ListingRow
}

func (l fuzzListing) ListingPage(ctx context.Context, page int) ([]cardsite.ListingRow, error) {
	const pageSize = 5
	rows := *l.rows
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil, nil
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end], nil
}

// fuzzLadder answers the same rows for an event every time it is asked.
type fuzzLadder struct {
	rows map[string][]acquire.Row
}

func (l fuzzLadder) AcquireWithRescue(ctx context.Context, event model.Event, rescue bool) (acquire.Result, error) {
	rows := l.rows[event.DetailURL]
	return acquire.Result{Rows: rows, Tier: "api"}, nil
}

type fuzzImages struct{}

func (fuzzImages) ImageURL(ctx context.Context, deckURL string) *string {
	if deckURL == "" {
		return nil
	}
	url := deckURL + "/thumb.png"
	return &url
}

type PipelineTarget struct {
	rndm *rand.Rand
	tel  telemetry.API

	store     store.Store
	faultRate *float64
	listing   fuzzListing
	ladder    fuzzLadder
	nextID    *int

	pickDate     func(rndm *rand.Rand) int
	pickClassify func(rndm *rand.Rand) int
}

type PipelineProvider struct{}

func (PipelineProvider) CreateTarget(tel telemetry.API, rndm *rand.Rand) (Target, error) {
	mem, err := store.OpenMemory(context.Background())
	if err != nil {
		return nil, err
	}
	rate := 0.0
	faulty := faultyStore{inner: mem, rndm: rndm, rate: &rate}
	policy := retry.Policy{
		MaxRetry:  2,
		BaseDelay: time.Millisecond,
		MaxDelay:  time.Millisecond,
		Sleep:     func(ctx context.Context, d time.Duration) error { return nil },
	}

	nextID := 600000
	return PipelineTarget{
		rndm:         rndm,
		tel:          tel,
		store:        store.NewRetrying(faulty, policy, nil),
		faultRate:    &rate,
		listing:      fuzzListing{rows: &[]cardsite.ListingRow{}},
		ladder:       fuzzLadder{rows: map[string][]acquire.Row{}},
		nextID:       &nextID,
		pickDate:     testutil.RandomSwitch(4, 1),
		pickClassify: testutil.RandomSwitch(9, 1),
	}, nil
}

func ignoreInjected(err error) error {
	if errors.Is(err, errInjected) {
		return nil
	}
	return err
}

func (t PipelineTarget) probe() probe.Probe {
	return probe.NewProbe(t.listing, t.store, probe.DefaultConfig(), fuzzTime, t.tel)
}

func (t PipelineTarget) collector() collector.Collector {
	return collector.NewCollector(t.store, t.ladder, true, fuzzTime, t.tel)
}

func (t PipelineTarget) builder() snapshot.Builder {
	return snapshot.NewBuilder(t.store, fuzzImages{}, fuzzTime, t.tel)
}

func (t PipelineTarget) StepAddListingRow(ctx context.Context, res *Results) error {
	*t.nextID++
	id := *t.nextID

	date := "3/7(金)"
	if t.pickDate(t.rndm) == 1 {
		date = "3/8(土)"
	}
	title := "シティリーグ " + testutil.RandomPick(t.rndm, categoryKeywords)
	if t.pickClassify(t.rndm) == 1 {
		title = "ジムバトル"
	}
	detailURL := fmt.Sprintf("https://players.pokemon-card.com/event/detail/%d/result", id)

	*t.listing.rows = append(*t.listing.rows, cardsite.ListingRow{
		DateText:  date,
		Title:     title,
		Organizer: testutil.RandomPick(t.rndm, []string{"Shop A", " Shop A ", "Shop B", ""}),
		DetailURL: detailURL,
	})

	count := t.rndm.Intn(len(rankPattern) + 1)
	rows := []acquire.Row{}
	for i := 0; i < count; i++ {
		row := acquire.Row{
			Rank:     rankPattern[i],
			PlayerID: fmt.Sprintf("%d-player-%d", id, i),
			DeckID:   fmt.Sprintf("%d-deck-%d", id, i),
			DeckURL:  fmt.Sprintf("https://www.pokemon-card.com/deck/confirm.html/deckID/%d-deck-%d", id, i),
			Tier:     "api",
		}
		if t.rndm.Intn(10) == 0 {
			row.PlayerID = ""
		}
		rows = append(rows, row)
	}
	t.ladder.rows[detailURL] = rows
	return nil
}

func (t PipelineTarget) StepToggleFaults(ctx context.Context, res *Results) error {
	*t.faultRate = testutil.RandomPick(t.rndm, []float64{0, 0, 0.1, 0.3})
	return nil
}

func (t PipelineTarget) StepProbe(ctx context.Context, res *Results) error {
	result, err := t.probe().Run(ctx, targetDate)
	if err != nil {
		return ignoreInjected(err)
	}
	seen := map[string]bool{}
	for _, id := range result.EventIDs {
		if seen[id] {
			return fmt.Errorf("event %s reported twice", id)
		}
		seen[id] = true
	}
	return t.checkEvents(ctx)
}

func (t PipelineTarget) StepCollect(ctx context.Context, res *Results) error {
	_, err := t.collector().Run(ctx, targetDate, nil, t.rndm.Intn(10) < 3)
	if err != nil {
		return ignoreInjected(err)
	}
	return t.checkRows(ctx)
}

func (t PipelineTarget) StepBuild(ctx context.Context, res *Results) error {
	_, err := t.builder().Build(ctx, targetDate, t.rndm.Intn(2) == 0, nil)
	if err != nil {
		return ignoreInjected(err)
	}
	return t.checkSnapshots(ctx)
}

func (t PipelineTarget) StepRebuildDeterminism(ctx context.Context, res *Results) error {
	rate := *t.faultRate
	*t.faultRate = 0
	defer func() { *t.faultRate = rate }()

	first, err := t.snapshots(ctx, true)
	if err != nil {
		return err
	}
	second, err := t.snapshots(ctx, true)
	if err != nil {
		return err
	}
	for id, snap := range first {
		other := second[id]
		if diff := cmp.Diff(snap.Rankings, other.Rankings); diff != "" {
			return fmt.Errorf("rankings of %s changed on rebuild (-first +second):\n%s", id, diff)
		}
		if diff := cmp.Diff(snap.Groups, other.Groups); diff != "" {
			return fmt.Errorf("groups of %s changed on rebuild (-first +second):\n%s", id, diff)
		}
	}
	return nil
}

// OnEnd settles the state without faults and checks the final documents.
func (t PipelineTarget) OnEnd(ctx context.Context, res *Results) {
	*t.faultRate = 0

	_, err := t.probe().Run(ctx, targetDate)
	if err != nil {
		res.Fail(fmt.Errorf("OnEnd: probe: %w", err))
		return
	}
	_, err = t.collector().Run(ctx, targetDate, nil, false)
	if err != nil {
		res.Fail(fmt.Errorf("OnEnd: collect: %w", err))
		return
	}
	snapshots, err := t.snapshots(ctx, true)
	if err != nil {
		res.Fail(fmt.Errorf("OnEnd: build: %w", err))
		return
	}

	for _, check := range []func(context.Context) error{t.checkEvents, t.checkRows, t.checkSnapshots} {
		err := check(ctx)
		if err != nil {
			res.Fail(fmt.Errorf("OnEnd: %w", err))
		}
	}

	rows, err := store.QueryAs[model.RankingRow](ctx, t.store, store.Query{
		Collection: model.RankingsCollection,
		Filters:    []store.Filter{store.Eq("dateKey", targetDate)},
	})
	if err != nil {
		res.Fail(fmt.Errorf("OnEnd: rows: %w", err))
		return
	}
	perCategory := map[model.Category]int{}
	for _, r := range rows {
		perCategory[r.Category]++
	}
	for _, category := range model.Categories {
		snap, ok := snapshots[model.SnapshotID(targetDate, category)]
		if perCategory[category] == 0 {
			if ok {
				res.Fail(fmt.Errorf("OnEnd: snapshot for %s without rows", category))
			}
			continue
		}
		if !ok || len(snap.Rankings) != perCategory[category] {
			res.Fail(fmt.Errorf(
				"OnEnd: snapshot for %s does not hold all %d rows",
				category, perCategory[category],
			))
		}
	}
}

func (t PipelineTarget) snapshots(ctx context.Context, force bool) (map[string]model.DailySnapshot, error) {
	_, err := t.builder().Build(ctx, targetDate, force, nil)
	if err != nil {
		return nil, err
	}
	docs, err := store.QueryAs[model.DailySnapshot](ctx, t.store, store.Query{
		Collection: model.SnapshotsCollection,
		Filters:    []store.Filter{store.Eq("dateKey", targetDate)},
	})
	if err != nil {
		return nil, err
	}
	out := map[string]model.DailySnapshot{}
	for _, d := range docs {
		out[d.ID] = d
	}
	return out, nil
}

func (t PipelineTarget) checkEvents(ctx context.Context) error {
	events, err := store.QueryAs[model.Event](ctx, t.store, store.Query{
		Collection: model.EventsCollection,
	})
	if err != nil {
		return ignoreInjected(err)
	}
	urls := map[string]string{}
	for _, e := range events {
		if other, ok := urls[e.DetailURL]; ok {
			return fmt.Errorf("%s and %s share the detail url %s", other, e.ID, e.DetailURL)
		}
		urls[e.DetailURL] = e.ID
		if e.DateKey != targetDate {
			return fmt.Errorf("event %s was persisted for %s", e.ID, e.DateKey)
		}
	}
	return nil
}

func (t PipelineTarget) checkRows(ctx context.Context) error {
	rows, err := store.QueryAs[model.RankingRow](ctx, t.store, store.Query{
		Collection: model.RankingsCollection,
	})
	if err != nil {
		return ignoreInjected(err)
	}
	events, err := store.QueryAs[model.Event](ctx, t.store, store.Query{
		Collection: model.EventsCollection,
	})
	if err != nil {
		return ignoreInjected(err)
	}
	detailURLs := map[string]string{}
	for _, e := range events {
		detailURLs[e.ID] = e.DetailURL
	}

	perEvent := map[string][]model.RankingRow{}
	for _, r := range rows {
		if r.ID != model.RankingRowID(r.EventID, r.Rank, r.SequenceWithinRank) {
			return fmt.Errorf("row %s does not match its rank and sequence", r.ID)
		}
		perEvent[r.EventID] = append(perEvent[r.EventID], r)
	}

	for eventID, stored := range perEvent {
		expected, _ := collector.BuildRows(
			model.Event{ID: eventID, DetailURL: detailURLs[eventID]},
			t.ladder.rows[detailURLs[eventID]],
			fuzzTime.Now(),
		)
		expectedIDs := []string{}
		for _, r := range expected {
			expectedIDs = append(expectedIDs, r.ID)
		}
		storedIDs := []string{}
		for _, r := range stored {
			storedIDs = append(storedIDs, r.ID)
		}
		sort.Strings(expectedIDs)
		sort.Strings(storedIDs)
		if diff := cmp.Diff(expectedIDs, storedIDs); diff != "" {
			return fmt.Errorf("rows of %s differ from acquisition (-expected +stored):\n%s", eventID, diff)
		}
	}
	return nil
}

func (t PipelineTarget) checkSnapshots(ctx context.Context) error {
	docs, err := store.QueryAs[model.DailySnapshot](ctx, t.store, store.Query{
		Collection: model.SnapshotsCollection,
	})
	if err != nil {
		return ignoreInjected(err)
	}
	for _, snap := range docs {
		if len(snap.Rankings) == 0 {
			return fmt.Errorf("snapshot %s is empty", snap.ID)
		}
		grouped := 0
		for _, g := range snap.Groups {
			grouped += len(g.Rankings)
		}
		if grouped != len(snap.Rankings) {
			return fmt.Errorf("snapshot %s groups %d of %d rankings", snap.ID, grouped, len(snap.Rankings))
		}

		groupIDs := map[string]bool{}
		for i, r := range snap.Rankings {
			if i > 0 && snap.Rankings[i-1].Rank > r.Rank {
				return fmt.Errorf("snapshot %s is not sorted by rank at %d", snap.ID, i)
			}
			podium := r.Rank <= 3
			if podium != (r.GroupID != "") {
				return fmt.Errorf("snapshot %s: rank %d has group id '%s'", snap.ID, r.Rank, r.GroupID)
			}
			if r.GroupID == "" {
				continue
			}
			if groupIDs[r.GroupID] {
				return fmt.Errorf("snapshot %s: group id %s is not unique", snap.ID, r.GroupID)
			}
			groupIDs[r.GroupID] = true
		}
	}
	return nil
}
