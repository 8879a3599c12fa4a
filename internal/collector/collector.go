// Package collector acquires the ranking rows of every pending event and persists them under
// deterministic ids.
package collector

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/acquire"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
	"time"
)

const (
	report_collector_malformed_event = "collector.malformed-event"
	report_collector_no_player       = "collector.row-without-player"
	report_collector_empty           = "collector.empty"
	report_collector_rows            = "collector.rows"
)

// Acquirer is satisfied by acquire.Ladder.
//
// note: fault injection point
type Acquirer interface {
	AcquireWithRescue(ctx context.Context, event model.Event, rescue bool) (acquire.Result, error)
}

type EventStatus string

const (
	StatusCollected EventStatus = "collected"
	StatusEmpty     EventStatus = "empty"
	StatusMalformed EventStatus = "malformed"
)

type EventOutcome struct {
	EventID string
	Status  EventStatus
	Tier    string
	Rescued bool
	Written int
	Skipped int
}

type Result struct {
	Events []EventOutcome
	// Rows is the amount of ranking rows written in total.
	Rows int
}

func (r Result) count(status EventStatus) int {
	n := 0
	for _, e := range r.Events {
		if e.Status == status {
			n++
		}
	}
	return n
}

func (r Result) Collected() int { return r.count(StatusCollected) }
func (r Result) Empty() int     { return r.count(StatusEmpty) }
func (r Result) Malformed() int { return r.count(StatusMalformed) }

type Collector struct {
	store  store.Store
	ladder Acquirer
	// rescueOnForce enables force-rescue of empty categories on forced runs.
	rescueOnForce bool
	time          chrono.API
	tel           telemetry.API
}

func NewCollector(s store.Store, ladder Acquirer, rescueOnForce bool, time chrono.API, tel telemetry.API) Collector {
	assert.NotNil(s, "store")
	assert.NotNil(ladder, "ladder")
	assert.NotNil(time, "time")
	assert.NotNil(tel, "tel")

	return Collector{
		store:         s,
		ladder:        ladder,
		rescueOnForce: rescueOnForce,
		time:          time,
		tel:           telemetry.NewScopedAPI("collector", tel),
	}
}

// pending returns the events of dateKey together with the given ids, ordered by id, that still
// need collection.
func (c Collector) pending(ctx context.Context, dateKey string, eventIDs []string, force bool) ([]model.Event, error) {
	events, err := store.QueryAs[model.Event](ctx, c.store, store.Query{
		Collection: model.EventsCollection,
		Filters:    []store.Filter{store.Eq("dateKey", dateKey)},
		OrderBy:    []store.Order{{Field: store.IDField}},
	})
	if err != nil {
		return nil, err
	}

	known := map[string]bool{}
	for _, e := range events {
		known[e.ID] = true
	}
	var missing []string
	for _, id := range eventIDs {
		if !known[id] {
			missing = append(missing, id)
			known[id] = true
		}
	}
	if len(missing) > 0 {
		extra, err := store.QueryInAs[model.Event](ctx, c.store, store.Query{Collection: model.EventsCollection}, "id", missing)
		if err != nil {
			return nil, err
		}
		events = append(events, extra...)
	}

	var out []model.Event
	for _, e := range events {
		if !e.Category.Known() {
			continue
		}
		if e.RankingsCollected && !force {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Run collects every pending event of dateKey one at a time. Acquisition trouble of a single event
// never stops the loop, a failing store write does.
func (c Collector) Run(ctx context.Context, dateKey string, eventIDs []string, force bool) (Result, error) {
	events, err := c.pending(ctx, dateKey, eventIDs, force)
	if err != nil {
		return Result{}, fmt.Errorf("load events: %w", err)
	}

	var result Result
	for _, event := range events {
		outcome, err := c.collectEvent(ctx, event, force)
		if err != nil {
			return result, fmt.Errorf("collect %s: %w", event.ID, err)
		}
		result.Events = append(result.Events, outcome)
		result.Rows += outcome.Written
	}
	c.tel.ReportCount(report_collector_rows, int64(result.Rows))
	return result, nil
}

func (c Collector) collectEvent(ctx context.Context, event model.Event, force bool) (EventOutcome, error) {
	outcome := EventOutcome{EventID: event.ID}

	acquired, err := c.ladder.AcquireWithRescue(ctx, event, force && c.rescueOnForce)
	if errors.Is(err, acquire.ErrMalformedEvent) {
		c.tel.ReportWarning(report_collector_malformed_event, err)
		outcome.Status = StatusMalformed
		return outcome, nil
	}
	if err != nil {
		return outcome, err
	}
	outcome.Tier = acquired.Tier
	outcome.Rescued = acquired.Rescued

	if len(acquired.Rows) == 0 {
		// left uncollected so that a later run tries again
		c.tel.ReportWarning(report_collector_empty, telemetry.KV{Key: "event", Value: event.ID})
		outcome.Status = StatusEmpty
		return outcome, nil
	}

	written, skipped, err := c.Persist(ctx, event, acquired.Rows)
	if err != nil {
		return outcome, err
	}
	outcome.Written = written
	outcome.Skipped = skipped
	outcome.Status = StatusCollected
	if written == 0 {
		outcome.Status = StatusEmpty
	}
	return outcome, nil
}

// BuildRows assigns every row with a player a sequence within its rank in acquisition order and
// returns the ranking rows along with the amount of rows skipped.
func BuildRows(event model.Event, rows []acquire.Row, collectedAt time.Time) ([]model.RankingRow, int) {
	sequences := map[int]int{}
	skipped := 0
	var out []model.RankingRow
	for _, row := range rows {
		if row.PlayerID == "" {
			skipped++
			continue
		}
		seq := sequences[row.Rank]
		sequences[row.Rank] = seq + 1

		out = append(out, model.RankingRow{
			ID:                 model.RankingRowID(event.ID, row.Rank, seq),
			EventID:            event.ID,
			DateKey:            event.DateKey,
			Organizer:          event.Organizer,
			Category:           event.Category,
			Rank:               row.Rank,
			SequenceWithinRank: seq,
			PlayerID:           row.PlayerID,
			PlayerLabel:        row.PlayerLabel,
			Points:             row.Points,
			DeckURL:            row.DeckURL,
			DeckID:             row.DeckID,
			ImageStored:        false,
			Tier:               row.Tier,
			CollectedAt:        collectedAt,
		})
	}
	return out, skipped
}

// staleRows returns the ids of stored rows of the event that the new acquisition no longer
// produces.
func (c Collector) staleRows(ctx context.Context, eventID string, rankings []model.RankingRow) ([]string, error) {
	existing, err := c.store.Query(ctx, store.Query{
		Collection: model.RankingsCollection,
		Filters:    []store.Filter{store.Eq("eventId", eventID)},
	})
	if err != nil {
		return nil, err
	}
	fresh := make(map[string]bool, len(rankings))
	for _, r := range rankings {
		fresh[r.ID] = true
	}
	var stale []string
	for _, doc := range existing {
		if !fresh[doc.ID] {
			stale = append(stale, doc.ID)
		}
	}
	return stale, nil
}

// Persist writes the rows of an event in a single batch and marks the event collected. Rows a
// previous acquisition produced that are not part of this one are removed in the same batch.
// Fields owned by other processes (imageStored, deckName) survive a rewrite.
func (c Collector) Persist(ctx context.Context, event model.Event, rows []acquire.Row) (int, int, error) {
	now := c.time.Now()
	rankings, skipped := BuildRows(event, rows, now)
	if skipped > 0 {
		c.tel.ReportWarning(
			report_collector_no_player,
			telemetry.KV{Key: "event", Value: event.ID},
			telemetry.KV{Key: "skipped", Value: skipped},
		)
	}
	if len(rankings) == 0 {
		return 0, skipped, nil
	}

	stale, err := c.staleRows(ctx, event.ID, rankings)
	if err != nil {
		return 0, skipped, fmt.Errorf("load existing rankings: %w", err)
	}

	writes := make([]store.Write, 0, len(rankings)+len(stale))
	for _, r := range rankings {
		writes = append(writes, store.Write{
			Collection: model.RankingsCollection,
			ID:         r.ID,
			Doc:        r,
			Merge:      true,
			Preserve:   []string{"imageStored", "deckName"},
		})
	}
	for _, id := range stale {
		writes = append(writes, store.Write{
			Collection: model.RankingsCollection,
			ID:         id,
			Delete:     true,
		})
	}
	if len(stale) > 0 {
		c.tel.ReportDebug(
			"removing stale rankings",
			telemetry.KV{Key: "event", Value: event.ID},
			telemetry.KV{Key: "count", Value: len(stale)},
		)
	}
	err = c.store.BatchWrite(ctx, writes)
	if err != nil {
		return 0, skipped, fmt.Errorf("write rankings: %w", err)
	}

	err = c.store.Update(ctx, model.EventsCollection, event.ID, map[string]any{
		"rankingsCollected":   true,
		"rankingsCollectedAt": now,
	})
	if err != nil {
		return 0, skipped, fmt.Errorf("mark collected: %w", err)
	}
	return len(rankings), skipped, nil
}
