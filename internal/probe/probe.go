// Package probe discovers the league events of a date on the listing pages and stores the ones
// that are not known yet.
package probe

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/chrono"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"leaguedecks-backend/internal/store"
)

const (
	report_probe_listing_page = "probe.listing-page"
	report_probe_unclassified = "probe.unclassified"
	report_probe_matches      = "probe.matches"
	report_probe_persisted    = "probe.persisted"
)

// Listing is the part of the site client the probe uses.
//
// note: fault injection point
type Listing interface {
	ListingPage(ctx context.Context, page int) ([]cardsite.ListingRow, error)
}

type Result struct {
	// RawMatches is the amount of listing rows displayed on the target date.
	RawMatches int
	Persisted  int
	Raw        []cardsite.ListingRow
	// EventIDs holds every classified event of the target date, new and already known.
	EventIDs []string
	// NewEventIDs is the subset of EventIDs that was created by this run.
	NewEventIDs []string
}

type Probe struct {
	listing Listing
	store   store.Store
	config  Config
	time    chrono.API
	tel     telemetry.API
}

func NewProbe(listing Listing, s store.Store, config Config, time chrono.API, tel telemetry.API) Probe {
	assert.NotNil(listing, "listing")
	assert.NotNil(s, "store")
	assert.NotNil(time, "time")
	assert.NotNil(tel, "tel")

	if config.MaxListingPages <= 0 {
		config.MaxListingPages = DefaultConfig().MaxListingPages
	}
	if len(config.Keywords) == 0 {
		config.Keywords = DefaultConfig().Keywords
	}

	return Probe{
		listing: listing,
		store:   s,
		config:  config,
		time:    time,
		tel:     telemetry.NewScopedAPI("probe", tel),
	}
}

// fetch walks the listing pages and keeps the rows displayed on dateKey.
func (p Probe) fetch(ctx context.Context, dateKey string) ([]cardsite.ListingRow, error) {
	label := model.DateLabel(dateKey)

	var matches []cardsite.ListingRow
	for page := 1; page <= p.config.MaxListingPages; page++ {
		rows, err := p.listing.ListingPage(ctx, page)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("listing page 1: %w", err)
			}
			p.tel.ReportWarning(report_probe_listing_page, err, telemetry.KV{Key: "page", Value: page})
			break
		}
		if len(rows) == 0 {
			break
		}
		for _, row := range rows {
			if normalizeDateText(row.DateText) == label {
				matches = append(matches, row)
			}
		}
	}
	return matches, nil
}

func (p Probe) findByDetailURL(ctx context.Context, detailURL string) (model.Event, bool, error) {
	events, err := store.QueryAs[model.Event](ctx, p.store, store.Query{
		Collection: model.EventsCollection,
		Filters:    []store.Filter{store.Eq("detailUrl", detailURL)},
		Limit:      1,
	})
	if err != nil {
		return model.Event{}, false, err
	}
	if len(events) == 0 {
		return model.Event{}, false, nil
	}
	return events[0], true, nil
}

func (p Probe) countExisting(ctx context.Context, dateKey string, category model.Category) (int, error) {
	docs, err := p.store.Query(ctx, store.Query{
		Collection: model.EventsCollection,
		Filters: []store.Filter{
			store.Eq("dateKey", dateKey),
			store.Eq("category", string(category)),
		},
	})
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// nextID returns the first free id at or after seq.
func (p Probe) nextID(ctx context.Context, dateKey string, category model.Category, seq int, taken map[string]bool) (string, int, error) {
	for {
		id := model.EventID(dateKey, category, seq)
		if taken[id] {
			seq++
			continue
		}
		_, err := p.store.Get(ctx, model.EventsCollection, id)
		if errors.Is(err, store.ErrNotFound) {
			return id, seq, nil
		}
		if err != nil {
			return "", 0, err
		}
		seq++
	}
}

// Run discovers the events of dateKey, it is safe to run any amount of times for the same date.
func (p Probe) Run(ctx context.Context, dateKey string) (Result, error) {
	matches, err := p.fetch(ctx, dateKey)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		RawMatches: len(matches),
		Raw:        matches,
	}
	p.tel.ReportCount(report_probe_matches, int64(len(matches)))

	now := p.time.Now()
	nextSeq := map[model.Category]int{}
	seenURLs := map[string]bool{}
	takenIDs := map[string]bool{}
	var writes []store.Write

	for _, row := range matches {
		category := p.config.classify(row.Title)
		if !category.Known() {
			p.tel.ReportDebug(report_probe_unclassified, row.Title)
			continue
		}
		if seenURLs[row.DetailURL] {
			continue
		}
		seenURLs[row.DetailURL] = true

		existing, found, err := p.findByDetailURL(ctx, row.DetailURL)
		if err != nil {
			return Result{}, fmt.Errorf("dedup check: %w", err)
		}
		if found {
			result.EventIDs = append(result.EventIDs, existing.ID)
			continue
		}

		seq, ok := nextSeq[category]
		if !ok {
			count, err := p.countExisting(ctx, dateKey, category)
			if err != nil {
				return Result{}, fmt.Errorf("count events: %w", err)
			}
			seq = count + 1
		}
		id, seq, err := p.nextID(ctx, dateKey, category, seq, takenIDs)
		if err != nil {
			return Result{}, fmt.Errorf("allocate event id: %w", err)
		}
		nextSeq[category] = seq + 1
		takenIDs[id] = true

		sourceID, _ := cardsite.ParseEventID(row.DetailURL)
		event := model.Event{
			ID:            id,
			DateKey:       dateKey,
			DateLabel:     model.DateLabel(dateKey),
			Title:         row.Title,
			Location:      row.Location,
			Organizer:     row.Organizer,
			DetailURL:     row.DetailURL,
			SourceEventID: sourceID,
			Category:      category,
			DiscoveredAt:  now,
		}
		writes = append(writes, store.Write{
			Collection: model.EventsCollection,
			ID:         id,
			Doc:        event,
		})
		result.EventIDs = append(result.EventIDs, id)
		result.NewEventIDs = append(result.NewEventIDs, id)
	}

	err = p.store.BatchWrite(ctx, writes)
	if err != nil {
		return Result{}, fmt.Errorf("persist events: %w", err)
	}
	result.Persisted = len(writes)
	p.tel.ReportCount(report_probe_persisted, int64(result.Persisted))

	return result, nil
}
