// Package acquire fetches the ranking rows of an event from an unreliable source by trying
// a ladder of strategies until one of them returns something.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/scrapers/cardsite"
)

const (
	report_ladder_tier_failed = "ladder.tier-failed"
	report_ladder_tier_empty  = "ladder.tier-empty"
	report_ladder_rescue      = "ladder.rescue"
)

// ErrMalformedEvent is returned when an event cannot be acquired no matter how often it is
// tried, for example when its detail url carries no event id.
var ErrMalformedEvent = errors.New("malformed event")

// Row is a single placement as acquired from the source.
type Row struct {
	Rank        int
	PlayerID    string
	PlayerLabel string
	Points      int
	DeckID      string
	DeckURL     string
	// Tier is the name of the strategy that produced the row.
	Tier string
}

// Strategy is a single tier of the ladder. An empty result with a nil error means the tier
// found nothing, errors other than ErrMalformedEvent are treated the same way by the ladder.
type Strategy interface {
	Name() string
	TryAcquire(ctx context.Context, event model.Event, category model.Category) ([]Row, error)
}

// SourceEventID returns the event holding id of the event, wrapped ErrMalformedEvent if it has
// none.
func SourceEventID(event model.Event) (string, error) {
	if event.SourceEventID != "" {
		return event.SourceEventID, nil
	}
	id, err := cardsite.ParseEventID(event.DetailURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedEvent, event.ID, err)
	}
	return id, nil
}

// Result is what the ladder acquired for an event.
type Result struct {
	Rows []Row
	// Tier is the name of the winning strategy, empty when every tier came up empty.
	Tier    string
	Rescued bool
}

type Ladder struct {
	strategies []Strategy
	tel        telemetry.API
}

// NewLadder creates a ladder that tries strategies in the given order.
func NewLadder(tel telemetry.API, strategies ...Strategy) Ladder {
	assert.NotNil(tel, "tel")
	if len(strategies) == 0 {
		panic("a ladder needs at least one strategy")
	}
	for _, s := range strategies {
		assert.NotNil(s, "strategy")
	}
	return Ladder{
		strategies: strategies,
		tel:        telemetry.NewScopedAPI("acquire", tel),
	}
}

// Acquire returns the rows of the first strategy that yields any, later strategies are not
// invoked once one has.
func (l Ladder) Acquire(ctx context.Context, event model.Event, category model.Category) (Result, error) {
	_, err := SourceEventID(event)
	if err != nil {
		return Result{}, err
	}

	for _, strategy := range l.strategies {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}

		rows, err := strategy.TryAcquire(ctx, event, category)
		if errors.Is(err, ErrMalformedEvent) {
			return Result{}, err
		}
		if err != nil {
			l.tel.ReportWarning(
				report_ladder_tier_failed,
				telemetry.KV{Key: "tier", Value: strategy.Name()},
				telemetry.KV{Key: "event", Value: event.ID},
				telemetry.KV{Key: "category", Value: category},
				err,
			)
			continue
		}
		if len(rows) == 0 {
			l.tel.ReportDebug(
				report_ladder_tier_empty,
				telemetry.KV{Key: "tier", Value: strategy.Name()},
				telemetry.KV{Key: "event", Value: event.ID},
			)
			continue
		}

		for i := range rows {
			rows[i].Tier = strategy.Name()
		}
		return Result{Rows: rows, Tier: strategy.Name()}, nil
	}
	return Result{}, nil
}

// AcquireWithRescue is Acquire for the event's own category, when that comes up empty and
// rescue is set the whole ladder is run for the other categories as well. Rescued rows are
// merged and de-duplicated by player id, rows without one are dropped.
func (l Ladder) AcquireWithRescue(ctx context.Context, event model.Event, rescue bool) (Result, error) {
	result, err := l.Acquire(ctx, event, event.Category)
	if err != nil || len(result.Rows) > 0 || !rescue {
		return result, err
	}

	seen := map[string]bool{}
	merged := Result{Rescued: true}
	for _, other := range event.Category.Others() {
		otherResult, err := l.Acquire(ctx, event, other)
		if err != nil {
			return Result{}, err
		}
		if len(otherResult.Rows) == 0 {
			continue
		}
		for _, row := range otherResult.Rows {
			if row.PlayerID == "" || seen[row.PlayerID] {
				continue
			}
			seen[row.PlayerID] = true
			merged.Rows = append(merged.Rows, row)
		}
		if merged.Tier == "" {
			merged.Tier = otherResult.Tier
		}
		l.tel.ReportWarning(
			report_ladder_rescue,
			telemetry.KV{Key: "event", Value: event.ID},
			telemetry.KV{Key: "assigned", Value: event.Category},
			telemetry.KV{Key: "found", Value: other},
			telemetry.KV{Key: "rows", Value: len(otherResult.Rows)},
		)
	}
	if len(merged.Rows) == 0 {
		return Result{}, nil
	}
	return merged, nil
}
