package acquire

import (
	"bytes"
	"context"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/scrapers/browser"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Source is the part of the site client the strategies use.
//
// note: fault injection point
type Source interface {
	CategoryCode(category string) (string, error)
	SearchURL(eventID, categoryCode string, offset int) string
	ResultsPageURL(eventID, categoryCode string, page int) string
	SearchResults(ctx context.Context, eventID, categoryCode string, offset int) ([]cardsite.ResultEntry, error)
}

// pages is how many result pages are read for a category.
func pages(category model.Category, available int) int {
	if category == model.CategoryOpen {
		return available
	}
	return min(1, available)
}

func toRows(entries []cardsite.ResultEntry) []Row {
	var rows []Row
	for _, e := range entries {
		if !model.IsAllowedRank(e.Rank) {
			continue
		}
		rows = append(rows, Row{
			Rank:        e.Rank,
			PlayerID:    e.PlayerID,
			PlayerLabel: e.PlayerLabel,
			Points:      e.Points,
			DeckID:      e.DeckID,
			DeckURL:     e.DeckURL,
		})
	}
	return rows
}

func resolveTarget(source Source, event model.Event, category model.Category) (string, string, error) {
	eventID, err := SourceEventID(event)
	if err != nil {
		return "", "", err
	}
	code, err := source.CategoryCode(string(category))
	if err != nil {
		return "", "", err
	}
	return eventID, code, nil
}

// APIStrategy queries the json search endpoint directly.
type APIStrategy struct {
	source Source
	config Config
}

func NewAPIStrategy(source Source, config Config) APIStrategy {
	assert.NotNil(source, "source")
	return APIStrategy{source: source, config: config}
}

func (APIStrategy) Name() string {
	return "api"
}

func (s APIStrategy) TryAcquire(ctx context.Context, event model.Event, category model.Category) ([]Row, error) {
	eventID, code, err := resolveTarget(s.source, event, category)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for page := 0; page < pages(category, 2); page++ {
		entries, err := s.source.SearchResults(ctx, eventID, code, page*s.config.pageSize())
		if err != nil {
			if page == 0 {
				return nil, err
			}
			// the second page is a bonus, keep what the first one had
			break
		}
		rows = append(rows, toRows(entries)...)
	}
	return rows, nil
}

// BrowserAPIStrategy issues the same query as APIStrategy from inside a browser session.
type BrowserAPIStrategy struct {
	source  Source
	browser browser.API
	config  Config
}

func NewBrowserAPIStrategy(source Source, b browser.API, config Config) BrowserAPIStrategy {
	assert.NotNil(source, "source")
	assert.NotNil(b, "browser")
	return BrowserAPIStrategy{source: source, browser: b, config: config}
}

func (BrowserAPIStrategy) Name() string {
	return "browser-api"
}

func (s BrowserAPIStrategy) TryAcquire(ctx context.Context, event model.Event, category model.Category) ([]Row, error) {
	eventID, code, err := resolveTarget(s.source, event, category)
	if err != nil {
		return nil, err
	}

	pageURL := s.source.ResultsPageURL(eventID, code, 1)
	var rows []Row
	for page := 0; page < pages(category, 2); page++ {
		body, err := s.browser.FetchJSON(ctx, pageURL, s.source.SearchURL(eventID, code, page*s.config.pageSize()))
		if err == nil {
			var entries []cardsite.ResultEntry
			entries, err = cardsite.ParseSearchResults(body)
			rows = append(rows, toRows(entries)...)
		}
		if err != nil {
			if page == 0 {
				return nil, err
			}
			break
		}
	}
	return rows, nil
}

// PositionalStrategy reads the deck links of the rendered results pages in order and assigns
// ranks by their position.
type PositionalStrategy struct {
	source  Source
	browser browser.API
	config  Config
}

func NewPositionalStrategy(source Source, b browser.API, config Config) PositionalStrategy {
	assert.NotNil(source, "source")
	assert.NotNil(b, "browser")
	return PositionalStrategy{source: source, browser: b, config: config}
}

func (PositionalStrategy) Name() string {
	return "positional"
}

func (s PositionalStrategy) TryAcquire(ctx context.Context, event model.Event, category model.Category) ([]Row, error) {
	eventID, code, err := resolveTarget(s.source, event, category)
	if err != nil {
		return nil, err
	}

	buckets := s.config.buckets()
	var rows []Row
	for page := 1; page <= pages(category, len(buckets)); page++ {
		pageURL := s.source.ResultsPageURL(eventID, code, page)
		html, err := s.browser.RenderedHTML(ctx, pageURL, cardsite.DeckLinkSelector)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			break
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(html))
		if err != nil {
			return nil, fmt.Errorf("parse rendered page %d: %w", page, err)
		}
		base, err := url.Parse(pageURL)
		if err != nil {
			return nil, err
		}

		bucket := buckets[page-1]
		for i, entry := range cardsite.ParseRenderedResults(base, doc) {
			if i >= len(bucket) {
				break
			}
			playerID := entry.PlayerID
			if playerID == "" {
				playerID = "deck:" + entry.DeckID
			}
			rows = append(rows, Row{
				Rank:        bucket[i],
				PlayerID:    playerID,
				PlayerLabel: entry.PlayerLabel,
				DeckID:      entry.DeckID,
				DeckURL:     entry.DeckURL,
			})
		}
	}
	return rows, nil
}

// NewStandardLadder is the api, browser api and positional tiers in that order.
func NewStandardLadder(source Source, b browser.API, config Config, tel telemetry.API) Ladder {
	return NewLadder(
		tel,
		NewAPIStrategy(source, config),
		NewBrowserAPIStrategy(source, b, config),
		NewPositionalStrategy(source, b, config),
	)
}
