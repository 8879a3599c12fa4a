package acquire

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/scrapers/cardsite"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	name  string
	rows  map[model.Category][]Row
	err   error
	calls int
}

func (f *fakeStrategy) Name() string {
	return f.name
}

func (f *fakeStrategy) TryAcquire(ctx context.Context, event model.Event, category model.Category) ([]Row, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rows := f.rows[category]
	out := make([]Row, len(rows))
	copy(out, rows)
	return out, nil
}

func testEvent() model.Event {
	return model.Event{
		ID:        "event-20250307-open-001",
		DateKey:   "20250307",
		DetailURL: "https://players.pokemon-card.com/event/detail/612345/result",
		Category:  model.CategoryOpen,
	}
}

func TestEscalationStopsAtFirstNonEmpty(t *testing.T) {
	a := &fakeStrategy{name: "a", rows: map[model.Category][]Row{
		model.CategoryOpen: {{Rank: 1, PlayerID: "p1"}},
	}}
	b := &fakeStrategy{name: "b", rows: map[model.Category][]Row{
		model.CategoryOpen: {{Rank: 2, PlayerID: "p2"}},
	}}
	c := &fakeStrategy{name: "c"}

	ladder := NewLadder(telemetry.NewRecorder(nil), a, b, c)
	result, err := ladder.Acquire(context.Background(), testEvent(), model.CategoryOpen)
	require.NoError(t, err)
	require.Equal(t, "a", result.Tier)
	require.Equal(t, []Row{{Rank: 1, PlayerID: "p1", Tier: "a"}}, result.Rows)
	require.Equal(t, 1, a.calls)
	require.Equal(t, 0, b.calls)
	require.Equal(t, 0, c.calls)
}

func TestEscalationToLastTier(t *testing.T) {
	a := &fakeStrategy{name: "a", err: errors.New("403 forbidden")}
	b := &fakeStrategy{name: "b"}
	c := &fakeStrategy{name: "c", rows: map[model.Category][]Row{
		model.CategoryOpen: {{Rank: 1, PlayerID: "p1"}, {Rank: 1, PlayerID: "p2"}},
	}}

	tel := telemetry.NewRecorder(nil)
	ladder := NewLadder(tel, a, b, c)
	result, err := ladder.Acquire(context.Background(), testEvent(), model.CategoryOpen)
	require.NoError(t, err)
	require.Equal(t, "c", result.Tier)
	require.Len(t, result.Rows, 2)
	for _, row := range result.Rows {
		require.Equal(t, "c", row.Tier)
	}
	require.True(t, tel.Contains("403 forbidden"))
	require.Equal(t, 1, b.calls)
}

func TestAllTiersEmpty(t *testing.T) {
	ladder := NewLadder(
		telemetry.NewRecorder(nil),
		&fakeStrategy{name: "a", err: errors.New("timeout")},
		&fakeStrategy{name: "b"},
	)
	result, err := ladder.Acquire(context.Background(), testEvent(), model.CategoryOpen)
	require.NoError(t, err)
	require.Empty(t, result.Rows)
	require.Empty(t, result.Tier)
}

func TestMalformedEvent(t *testing.T) {
	a := &fakeStrategy{name: "a"}
	ladder := NewLadder(telemetry.NewRecorder(nil), a)

	event := testEvent()
	event.DetailURL = "https://players.pokemon-card.com/event/search"
	_, err := ladder.Acquire(context.Background(), event, model.CategoryOpen)
	require.ErrorIs(t, err, ErrMalformedEvent)
	require.Equal(t, 0, a.calls)

	b := &fakeStrategy{name: "b", err: fmt.Errorf("%w: broken", ErrMalformedEvent)}
	c := &fakeStrategy{name: "c"}
	ladder = NewLadder(telemetry.NewRecorder(nil), b, c)
	_, err = ladder.Acquire(context.Background(), testEvent(), model.CategoryOpen)
	require.ErrorIs(t, err, ErrMalformedEvent)
	require.Equal(t, 0, c.calls)
}

func TestForceRescue(t *testing.T) {
	a := &fakeStrategy{name: "a", rows: map[model.Category][]Row{
		model.CategorySenior: {
			{Rank: 1, PlayerID: "p1"},
			{Rank: 2, PlayerID: ""},
			{Rank: 3, PlayerID: "p3"},
		},
	}}
	c := &fakeStrategy{name: "c", rows: map[model.Category][]Row{
		model.CategoryJunior: {
			{Rank: 1, PlayerID: "p3"},
			{Rank: 2, PlayerID: "p4"},
		},
	}}
	ladder := NewLadder(telemetry.NewRecorder(nil), a, c)

	result, err := ladder.AcquireWithRescue(context.Background(), testEvent(), false)
	require.NoError(t, err)
	require.Empty(t, result.Rows)

	result, err = ladder.AcquireWithRescue(context.Background(), testEvent(), true)
	require.NoError(t, err)
	require.True(t, result.Rescued)
	require.Equal(t, "a", result.Tier)
	ids := []string{}
	for _, row := range result.Rows {
		ids = append(ids, row.PlayerID)
	}
	require.Equal(t, []string{"p1", "p3", "p4"}, ids)
}

type fakeSource struct {
	pages map[int][]cardsite.ResultEntry
	err   map[int]error
	calls []int
}

func (f *fakeSource) CategoryCode(category string) (string, error) {
	return strings.ToLower(category), nil
}

func (f *fakeSource) SearchURL(eventID, code string, offset int) string {
	return fmt.Sprintf("https://site/search?id=%s&c=%s&offset=%d", eventID, code, offset)
}

func (f *fakeSource) ResultsPageURL(eventID, code string, page int) string {
	return fmt.Sprintf("https://site/event/result/%s?c=%s&page=%d", eventID, code, page)
}

func (f *fakeSource) SearchResults(ctx context.Context, eventID, code string, offset int) ([]cardsite.ResultEntry, error) {
	f.calls = append(f.calls, offset)
	if err := f.err[offset]; err != nil {
		return nil, err
	}
	return f.pages[offset], nil
}

func entries(ranks ...int) []cardsite.ResultEntry {
	out := []cardsite.ResultEntry{}
	for i, rank := range ranks {
		out = append(out, cardsite.ResultEntry{
			Rank:     rank,
			PlayerID: fmt.Sprintf("p-%d-%d", rank, i),
			DeckID:   fmt.Sprintf("deck-%d-%d", rank, i),
		})
	}
	return out
}

func TestAPIStrategyPages(t *testing.T) {
	source := &fakeSource{pages: map[int][]cardsite.ResultEntry{
		0: entries(1, 2, 3, 3, 4, 5, 5, 5),
		8: entries(9, 9, 17),
	}}
	strategy := NewAPIStrategy(source, DefaultConfig())

	rows, err := strategy.TryAcquire(context.Background(), testEvent(), model.CategoryOpen)
	require.NoError(t, err)
	require.Equal(t, []int{0, 8}, source.calls)
	ranks := []int{}
	for _, row := range rows {
		ranks = append(ranks, row.Rank)
	}
	require.Equal(t, []int{1, 2, 3, 3, 5, 5, 5, 9, 9}, ranks)

	source.calls = nil
	rows, err = strategy.TryAcquire(context.Background(), testEvent(), model.CategorySenior)
	require.NoError(t, err)
	require.Equal(t, []int{0}, source.calls)
	require.Len(t, rows, 7)

	source.err = map[int]error{0: errors.New("status 403")}
	_, err = strategy.TryAcquire(context.Background(), testEvent(), model.CategoryOpen)
	require.Error(t, err)
}

type fakeBrowser struct {
	json  map[string]string
	html  map[string]string
	pages []string
}

func (f *fakeBrowser) FetchJSON(ctx context.Context, pageURL, apiURL string) ([]byte, error) {
	body, ok := f.json[apiURL]
	if !ok {
		return nil, errors.New("net::ERR_BLOCKED")
	}
	return []byte(body), nil
}

func (f *fakeBrowser) RenderedHTML(ctx context.Context, pageURL, waitSelector string) (string, error) {
	f.pages = append(f.pages, pageURL)
	html, ok := f.html[pageURL]
	if !ok {
		return "", context.DeadlineExceeded
	}
	return html, nil
}

func renderedPage(players int, prefix string) string {
	var b strings.Builder
	b.WriteString("<table>")
	for i := 0; i < players; i++ {
		if i%2 == 0 {
			fmt.Fprintf(&b, `<tr><td><a href="/player/%s%d">P%d</a></td><td><a href="/deck/confirm.html/deckID/%s-%d">deck</a></td></tr>`, prefix, i, i, prefix, i)
		} else {
			fmt.Fprintf(&b, `<tr><td><a href="/deck/confirm.html/deckID/%s-%d">P%d</a></td></tr>`, prefix, i, i)
		}
	}
	b.WriteString("</table>")
	return b.String()
}

func TestPositionalStrategyBuckets(t *testing.T) {
	source := &fakeSource{}
	browser := &fakeBrowser{html: map[string]string{
		source.ResultsPageURL("612345", "open", 1): renderedPage(10, "a"),
		source.ResultsPageURL("612345", "open", 2): renderedPage(3, "b"),
	}}
	strategy := NewPositionalStrategy(source, browser, DefaultConfig())

	rows, err := strategy.TryAcquire(context.Background(), testEvent(), model.CategoryOpen)
	require.NoError(t, err)

	ranks := []int{}
	for _, row := range rows {
		ranks = append(ranks, row.Rank)
	}
	require.Equal(t, []int{1, 1, 1, 3, 3, 3, 3, 3, 9, 9, 9}, ranks)
	require.Equal(t, "a0", rows[0].PlayerID)
	require.Equal(t, "deck:a-1", rows[1].PlayerID)
	require.Equal(t, "a-1", rows[1].DeckID)

	browser.pages = nil
	_, err = strategy.TryAcquire(context.Background(), testEvent(), model.CategoryJunior)
	require.Error(t, err)
	require.Len(t, browser.pages, 1)
}

func TestPositionalStrategyCustomBuckets(t *testing.T) {
	source := &fakeSource{}
	browser := &fakeBrowser{html: map[string]string{
		source.ResultsPageURL("612345", "senior", 1): renderedPage(4, "s"),
	}}
	cfg := DefaultConfig()
	cfg.Buckets = [][]int{{1, 2, 3, 3}}
	strategy := NewPositionalStrategy(source, browser, cfg)

	rows, err := strategy.TryAcquire(context.Background(), testEvent(), model.CategorySenior)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, 2, rows[1].Rank)
}

func TestBrowserAPIStrategy(t *testing.T) {
	source := &fakeSource{}
	browser := &fakeBrowser{json: map[string]string{
		source.SearchURL("612345", "open", 0): `{"results":[{"rank":1,"player_id":"p1","deck_id":"d1"},{"rank":4,"player_id":"p4"}]}`,
	}}
	strategy := NewBrowserAPIStrategy(source, browser, DefaultConfig())

	rows, err := strategy.TryAcquire(context.Background(), testEvent(), model.CategoryOpen)
	require.NoError(t, err)
	diff := cmp.Diff([]Row{{Rank: 1, PlayerID: "p1", DeckID: "d1"}}, rows)
	require.Empty(t, diff)

	_, err = strategy.TryAcquire(context.Background(), testEvent(), model.CategoryJunior)
	require.Error(t, err)
}

func TestStandardLadderFallsBackToPositional(t *testing.T) {
	source := &fakeSource{err: map[int]error{0: errors.New("status 403")}}
	browser := &fakeBrowser{html: map[string]string{
		source.ResultsPageURL("612345", "senior", 1): renderedPage(2, "s"),
	}}
	ladder := NewStandardLadder(source, browser, DefaultConfig(), telemetry.NewRecorder(nil))

	event := testEvent()
	event.Category = model.CategorySenior
	result, err := ladder.Acquire(context.Background(), event, model.CategorySenior)
	require.NoError(t, err)
	require.Equal(t, "positional", result.Tier)
	require.Len(t, result.Rows, 2)
}
