// Package model contains the documents persisted by the pipeline.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Category is the division an event is held for.
type Category string

const (
	CategoryOpen    Category = "Open"
	CategorySenior  Category = "Senior"
	CategoryJunior  Category = "Junior"
	CategoryUnknown Category = "unknown"
)

// Categories is the fixed order every per-category loop runs in.
var Categories = []Category{CategoryOpen, CategorySenior, CategoryJunior}

// Code is the lowercase form used inside event ids.
func (c Category) Code() string {
	return strings.ToLower(string(c))
}

func (c Category) Known() bool {
	return c == CategoryOpen || c == CategorySenior || c == CategoryJunior
}

// ParseCategory accepts both "Open" and "open".
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category '%s'", s)
}

// Others returns the two categories that are not c.
func (c Category) Others() []Category {
	out := make([]Category, 0, 2)
	for _, other := range Categories {
		if other != c {
			out = append(out, other)
		}
	}
	return out
}

// Collection names.
const (
	EventsCollection     = "events"
	RankingsCollection   = "rankings"
	SnapshotsCollection  = "daily_snapshots"
	ExecutionsCollection = "executions"
)

type Event struct {
	ID                  string    `json:"id"`
	DateKey             string    `json:"dateKey"`
	DateLabel           string    `json:"dateLabel"`
	Title               string    `json:"title"`
	Location            string    `json:"location"`
	Organizer           string    `json:"organizer"`
	DetailURL           string    `json:"detailUrl"`
	SourceEventID       string    `json:"sourceEventId"`
	Category            Category  `json:"category"`
	RankingsCollected   bool      `json:"rankingsCollected"`
	RankingsCollectedAt time.Time `json:"rankingsCollectedAt"`
	DiscoveredAt        time.Time `json:"discoveredAt"`
}

// AllowedRanks are the placements the pipeline keeps.
var AllowedRanks = []int{1, 2, 3, 5, 9}

func IsAllowedRank(rank int) bool {
	for _, r := range AllowedRanks {
		if r == rank {
			return true
		}
	}
	return false
}

type RankingRow struct {
	ID                 string    `json:"id"`
	EventID            string    `json:"eventId"`
	DateKey            string    `json:"dateKey"`
	Organizer          string    `json:"organizer"`
	Category           Category  `json:"category"`
	Rank               int       `json:"rank"`
	SequenceWithinRank int       `json:"sequenceWithinRank"`
	PlayerID           string    `json:"playerId"`
	PlayerLabel        string    `json:"playerLabel"`
	Points             int       `json:"points"`
	DeckURL            string    `json:"deckUrl"`
	DeckID             string    `json:"deckId"`
	ImageStored        bool      `json:"imageStored"`
	DeckName           string    `json:"deckName,omitempty"`
	Tier               string    `json:"tier"`
	CollectedAt        time.Time `json:"collectedAt"`
}

// RankingRowID is deterministic so a rerun overwrites instead of duplicating.
func RankingRowID(eventID string, rank, sequence int) string {
	return fmt.Sprintf("rank-%s-%d-%02d", eventID, rank, sequence)
}

// EventID builds `event-{dateKey}-{category}-{seq:03d}`.
func EventID(dateKey string, category Category, seq int) string {
	return fmt.Sprintf("event-%s-%s-%03d", dateKey, category.Code(), seq)
}

// SnapshotRanking is a ranking row as it appears in a snapshot.
type SnapshotRanking struct {
	RankingID          string  `json:"rankingId"`
	EventID            string  `json:"eventId"`
	Organizer          string  `json:"organizer"`
	Rank               int     `json:"rank"`
	SequenceWithinRank int     `json:"sequenceWithinRank"`
	PlayerLabel        string  `json:"playerLabel"`
	Points             int     `json:"points"`
	DeckURL            string  `json:"deckUrl"`
	DeckID             string  `json:"deckId"`
	DeckName           string  `json:"deckName,omitempty"`
	ImageURL           *string `json:"imageUrl"`
	GroupID            string  `json:"groupId,omitempty"`
}

type OrganizerGroup struct {
	Organizer string            `json:"organizer"`
	Rankings  []SnapshotRanking `json:"rankings"`
}

const SnapshotSchemaVersion = 2

type DailySnapshot struct {
	ID            string            `json:"id"`
	DateKey       string            `json:"dateKey"`
	DateLabel     string            `json:"dateLabel"`
	Category      Category          `json:"category"`
	Rankings      []SnapshotRanking `json:"rankings"`
	Groups        []OrganizerGroup  `json:"groups"`
	GeneratedAt   time.Time         `json:"generatedAt"`
	SchemaVersion int               `json:"schemaVersion"`
}

func SnapshotID(dateKey string, category Category) string {
	return dateKey + "-" + string(category)
}

// GroupID addresses a podium placement for curation.
func GroupID(dateKey, eventID string, rank, occurrence int) string {
	return fmt.Sprintf("%s_%s_%d_%d", dateKey, eventID, rank, occurrence)
}

// DateLabel turns "20250307" into "3/7".
func DateLabel(dateKey string) string {
	t, err := time.Parse("20060102", dateKey)
	if err != nil {
		return dateKey
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

type ExecutionStatus string

const (
	StatusRunning  ExecutionStatus = "running"
	StatusFinished ExecutionStatus = "finished"
	StatusError    ExecutionStatus = "error"
)

// Phase is a state of a run.
type Phase string

const (
	PhaseStart          Phase = "start"
	PhaseTargetDate     Phase = "determine-target-date"
	PhaseProbe          Phase = "probe"
	PhaseNotifyEmpty    Phase = "notify-empty"
	PhaseCollect        Phase = "collect"
	PhaseBuildSnapshots Phase = "build-snapshots"
	PhaseSummarize      Phase = "summarize-counts"
	PhaseNotify         Phase = "notify"
	PhaseFinish         Phase = "finish"
	PhaseError          Phase = "error"
)

type ExecutionRecord struct {
	ID            string          `json:"id"`
	Status        ExecutionStatus `json:"status"`
	Phase         Phase           `json:"phase"`
	TargetDate    string          `json:"targetDate"`
	Force         bool            `json:"force"`
	StartedAt     time.Time       `json:"startedAt"`
	EndedAt       *time.Time      `json:"endedAt,omitempty"`
	DurationHuman string          `json:"durationHuman,omitempty"`
	Logs          []string        `json:"logs"`
	OK            bool            `json:"ok"`
	Error         string          `json:"error,omitempty"`
	Summary       *Summary        `json:"summary,omitempty"`
}

// CategoryCounts are the totals for one category on one date.
type CategoryCounts struct {
	Events      int  `json:"events"`
	Rankings    int  `json:"rankings"`
	Deckable    int  `json:"deckable"`
	ImageStored int  `json:"imageStored"`
	Snapshotted bool `json:"snapshotted"`
}

// Summary is recomputed from persisted events and ranking rows.
type Summary struct {
	DateKey       string                      `json:"dateKey"`
	ProbedEvents  int                         `json:"probedEvents"`
	NewEvents     int                         `json:"newEvents"`
	CollectedRows int                         `json:"collectedRows"`
	Categories    map[Category]CategoryCounts `json:"categories"`
}

// HumanDuration renders d as "1h2m3s" style text rounded to seconds.
func HumanDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Second {
		return "0s"
	}
	return d.String()
}
