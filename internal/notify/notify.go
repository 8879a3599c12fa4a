// Package notify delivers the outcome of a run, only the shape of the message is fixed, how it
// reaches people depends on the notifier.
package notify

import (
	"context"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"sort"
	"strings"
)

type Kind string

const (
	// KindEmpty is sent when no events were found for the target date.
	KindEmpty   Kind = "empty"
	KindSummary Kind = "summary"
)

// Message is the contract between a run and its notifiers.
type Message struct {
	Kind        Kind
	ExecutionID string
	DateKey     string
	Summary     model.Summary
}

// Subject is a one line description of the message.
func (m Message) Subject() string {
	if m.Kind == KindEmpty {
		return fmt.Sprintf("[leaguedecks] %s: no events", m.DateKey)
	}
	return fmt.Sprintf(
		"[leaguedecks] %s: %d events, %d rankings",
		m.DateKey,
		m.Summary.ProbedEvents,
		m.Summary.CollectedRows,
	)
}

// Text renders the message as plain text.
func (m Message) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "execution: %s\n", m.ExecutionID)
	fmt.Fprintf(&b, "date: %s\n", m.DateKey)
	if m.Kind == KindEmpty {
		b.WriteString("no league events were found for this date.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "probed events: %d (new: %d)\n", m.Summary.ProbedEvents, m.Summary.NewEvents)
	fmt.Fprintf(&b, "collected rows: %d\n\n", m.Summary.CollectedRows)

	categories := make([]string, 0, len(m.Summary.Categories))
	for c := range m.Summary.Categories {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	for _, c := range categories {
		counts := m.Summary.Categories[model.Category(c)]
		fmt.Fprintf(
			&b,
			"%s: events=%d rankings=%d deckable=%d imageStored=%d snapshot=%t\n",
			c,
			counts.Events,
			counts.Rankings,
			counts.Deckable,
			counts.ImageStored,
			counts.Snapshotted,
		)
	}
	return b.String()
}

// Notifier delivers a message.
//
// note: fault injection point
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// TelemetryNotifier reports the message through telemetry.
type TelemetryNotifier struct {
	tel telemetry.API
}

func NewTelemetryNotifier(tel telemetry.API) TelemetryNotifier {
	return TelemetryNotifier{tel: telemetry.NewScopedAPI("notify", tel)}
}

func (n TelemetryNotifier) Notify(ctx context.Context, msg Message) error {
	n.tel.ReportDebug(msg.Subject(), telemetry.KV{Key: "text", Value: msg.Text()})
	for category, counts := range msg.Summary.Categories {
		n.tel.ReportCount("rankings."+category.Code(), int64(counts.Rankings))
	}
	return nil
}

// Multi sends a message to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		err := n.Notify(ctx, msg)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
