package notify

import (
	"context"
	"errors"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleSummary() model.Summary {
	return model.Summary{
		DateKey:       "20250307",
		ProbedEvents:  3,
		NewEvents:     2,
		CollectedRows: 13,
		Categories: map[model.Category]model.CategoryCounts{
			model.CategoryOpen:   {Events: 2, Rankings: 13, Deckable: 12, ImageStored: 10, Snapshotted: true},
			model.CategoryJunior: {Events: 1},
		},
	}
}

func TestMessageText(t *testing.T) {
	msg := Message{Kind: KindSummary, ExecutionID: "x", DateKey: "20250307", Summary: sampleSummary()}
	require.Equal(t, "[leaguedecks] 20250307: 3 events, 13 rankings", msg.Subject())

	text := msg.Text()
	require.Contains(t, text, "probed events: 3 (new: 2)")
	require.Contains(t, text, "Open: events=2 rankings=13 deckable=12 imageStored=10 snapshot=true")
	require.Less(t, strings.Index(text, "Junior:"), strings.Index(text, "Open:"), "categories are sorted")

	empty := Message{Kind: KindEmpty, DateKey: "20250307"}
	require.Equal(t, "[leaguedecks] 20250307: no events", empty.Subject())
	require.Contains(t, empty.Text(), "no league events")
}

type failingNotifier struct {
	calls *int
}

func (f failingNotifier) Notify(ctx context.Context, msg Message) error {
	*f.calls++
	return errors.New("smtp down")
}

func TestMulti(t *testing.T) {
	rec := telemetry.NewRecorder(nil)
	calls := 0
	multi := Multi{failingNotifier{calls: &calls}, NewTelemetryNotifier(rec)}

	err := multi.Notify(context.Background(), Message{Kind: KindSummary, DateKey: "20250307", Summary: sampleSummary()})
	require.ErrorContains(t, err, "smtp down")
	require.Equal(t, 1, calls)
	require.True(t, rec.Contains("notify: rankings.open"))
}
