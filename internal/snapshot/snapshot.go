// Package snapshot rebuilds the daily per-category documents read by consumers.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
	"sort"
	"strings"
	"time"
)

const (
	report_builder_written = "builder.written"
	report_builder_skipped = "builder.skipped"
)

const unknownOrganizer = "unknown"

// ImageResolver returns the display image of a deck, nil when there is none.
//
// note: fault injection point
type ImageResolver interface {
	ImageURL(ctx context.Context, deckURL string) *string
}

type Status string

const (
	StatusWritten         Status = "written"
	StatusSkippedExisting Status = "skipped-existing"
	StatusSkippedEmpty    Status = "skipped-empty"
)

type CategoryResult struct {
	Category model.Category
	Status   Status
	Rows     int
	Groups   int
}

type Result struct {
	Categories []CategoryResult
}

// Written is the amount of snapshots that were written.
func (r Result) Written() int {
	n := 0
	for _, c := range r.Categories {
		if c.Status == StatusWritten {
			n++
		}
	}
	return n
}

type Builder struct {
	store  store.Store
	images ImageResolver
	time   chrono.API
	tel    telemetry.API
}

func NewBuilder(s store.Store, images ImageResolver, time chrono.API, tel telemetry.API) Builder {
	assert.NotNil(s, "store")
	assert.NotNil(images, "images")
	assert.NotNil(time, "time")
	assert.NotNil(tel, "tel")

	return Builder{
		store:  s,
		images: images,
		time:   time,
		tel:    telemetry.NewScopedAPI("snapshot", tel),
	}
}

// Build rebuilds the snapshot of every category of dateKey. Existing snapshots are left alone
// unless force is set.
func (b Builder) Build(ctx context.Context, dateKey string, force bool, probedIDs []string) (Result, error) {
	var result Result
	for _, category := range model.Categories {
		res, err := b.buildCategory(ctx, dateKey, category, force, probedIDs)
		if err != nil {
			return result, fmt.Errorf("%s: %w", category, err)
		}
		result.Categories = append(result.Categories, res)
	}
	return result, nil
}

func (b Builder) eventIDs(ctx context.Context, dateKey string, category model.Category, probedIDs []string) ([]string, error) {
	stored, err := store.QueryAs[model.Event](ctx, b.store, store.Query{
		Collection: model.EventsCollection,
		Filters: []store.Filter{
			store.Eq("dateKey", dateKey),
			store.Eq("category", string(category)),
		},
	})
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var ids []string
	for _, e := range stored {
		seen[e.ID] = true
		ids = append(ids, e.ID)
	}

	var unknown []string
	for _, id := range probedIDs {
		if !seen[id] {
			unknown = append(unknown, id)
			seen[id] = true
		}
	}
	if len(unknown) > 0 {
		probed, err := store.QueryInAs[model.Event](ctx, b.store, store.Query{Collection: model.EventsCollection}, "id", unknown)
		if err != nil {
			return nil, err
		}
		for _, e := range probed {
			if e.Category == category {
				ids = append(ids, e.ID)
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (b Builder) buildCategory(ctx context.Context, dateKey string, category model.Category, force bool, probedIDs []string) (CategoryResult, error) {
	out := CategoryResult{Category: category}
	id := model.SnapshotID(dateKey, category)

	if !force {
		_, err := b.store.Get(ctx, model.SnapshotsCollection, id)
		if err == nil {
			out.Status = StatusSkippedExisting
			b.tel.ReportDebug(report_builder_skipped, id, out.Status)
			return out, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return out, err
		}
	}

	eventIDs, err := b.eventIDs(ctx, dateKey, category, probedIDs)
	if err != nil {
		return out, fmt.Errorf("event ids: %w", err)
	}
	var rows []model.RankingRow
	if len(eventIDs) > 0 {
		rows, err = store.QueryInAs[model.RankingRow](ctx, b.store, store.Query{
			Collection: model.RankingsCollection,
			Filters:    []store.Filter{store.Eq("category", string(category))},
		}, "eventId", eventIDs)
		if err != nil {
			return out, fmt.Errorf("ranking rows: %w", err)
		}
	}
	if len(rows) == 0 {
		out.Status = StatusSkippedEmpty
		b.tel.ReportDebug(report_builder_skipped, id, out.Status)
		return out, nil
	}

	snapshot := Assemble(dateKey, category, rows, func(row model.RankingRow) *string {
		return b.images.ImageURL(ctx, row.DeckURL)
	}, b.time.Now())

	err = b.store.BatchWrite(ctx, []store.Write{{
		Collection: model.SnapshotsCollection,
		ID:         snapshot.ID,
		Doc:        snapshot,
	}})
	if err != nil {
		return out, fmt.Errorf("write snapshot: %w", err)
	}

	out.Status = StatusWritten
	out.Rows = len(snapshot.Rankings)
	out.Groups = len(snapshot.Groups)
	b.tel.ReportCount(report_builder_written+"."+category.Code(), int64(out.Rows))
	return out, nil
}

// Assemble builds a snapshot from scratch out of the ranking rows of a date and category.
func Assemble(
	dateKey string,
	category model.Category,
	rows []model.RankingRow,
	imageURL func(row model.RankingRow) *string,
	generatedAt time.Time,
) model.DailySnapshot {
	sorted := make([]model.RankingRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.EventID != b.EventID {
			return a.EventID < b.EventID
		}
		return a.SequenceWithinRank < b.SequenceWithinRank
	})

	occurrences := map[string]int{}
	rankings := make([]model.SnapshotRanking, 0, len(sorted))
	groupIndex := map[string]int{}
	var groups []model.OrganizerGroup

	for _, row := range sorted {
		organizer := strings.TrimSpace(row.Organizer)
		if organizer == "" {
			organizer = unknownOrganizer
		}

		ranking := model.SnapshotRanking{
			RankingID:          row.ID,
			EventID:            row.EventID,
			Organizer:          organizer,
			Rank:               row.Rank,
			SequenceWithinRank: row.SequenceWithinRank,
			PlayerLabel:        row.PlayerLabel,
			Points:             row.Points,
			DeckURL:            row.DeckURL,
			DeckID:             row.DeckID,
			DeckName:           row.DeckName,
		}
		if imageURL != nil {
			ranking.ImageURL = imageURL(row)
		}
		if row.Rank >= 1 && row.Rank <= 3 {
			occurrenceKey := fmt.Sprintf("%s/%d", row.EventID, row.Rank)
			occurrence := occurrences[occurrenceKey]
			occurrences[occurrenceKey] = occurrence + 1
			ranking.GroupID = model.GroupID(dateKey, row.EventID, row.Rank, occurrence)
		}
		rankings = append(rankings, ranking)

		idx, ok := groupIndex[organizer]
		if !ok {
			idx = len(groups)
			groupIndex[organizer] = idx
			groups = append(groups, model.OrganizerGroup{Organizer: organizer})
		}
		groups[idx].Rankings = append(groups[idx].Rankings, ranking)
	}

	return model.DailySnapshot{
		ID:            model.SnapshotID(dateKey, category),
		DateKey:       dateKey,
		DateLabel:     model.DateLabel(dateKey),
		Category:      category,
		Rankings:      rankings,
		Groups:        groups,
		GeneratedAt:   generatedAt,
		SchemaVersion: model.SnapshotSchemaVersion,
	}
}
