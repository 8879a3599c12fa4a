// Package summary recomputes the per-category counts of a date from the persisted events and
// ranking rows.
package summary

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
)

// Counts returns the totals of every category on dateKey, every category is present even when
// its counts are zero.
func Counts(ctx context.Context, s store.Store, dateKey string) (map[model.Category]model.CategoryCounts, error) {
	out := map[model.Category]model.CategoryCounts{}
	for _, category := range model.Categories {
		counts, err := categoryCounts(ctx, s, dateKey, category)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", category, err)
		}
		out[category] = counts
	}
	return out, nil
}

func categoryCounts(ctx context.Context, s store.Store, dateKey string, category model.Category) (model.CategoryCounts, error) {
	var counts model.CategoryCounts

	events, err := s.Query(ctx, store.Query{
		Collection: model.EventsCollection,
		Filters: []store.Filter{
			store.Eq("dateKey", dateKey),
			store.Eq("category", string(category)),
		},
	})
	if err != nil {
		return counts, err
	}
	counts.Events = len(events)

	rows, err := store.QueryAs[model.RankingRow](ctx, s, store.Query{
		Collection: model.RankingsCollection,
		Filters: []store.Filter{
			store.Eq("dateKey", dateKey),
			store.Eq("category", string(category)),
		},
	})
	if err != nil {
		return counts, err
	}
	counts.Rankings = len(rows)
	for _, row := range rows {
		if row.DeckID != "" {
			counts.Deckable++
		}
		if row.ImageStored {
			counts.ImageStored++
		}
	}

	_, err = s.Get(ctx, model.SnapshotsCollection, model.SnapshotID(dateKey, category))
	switch {
	case err == nil:
		counts.Snapshotted = true
	case !errors.Is(err, store.ErrNotFound):
		return counts, err
	}
	return counts, nil
}
