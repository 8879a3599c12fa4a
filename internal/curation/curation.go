// Package curation assigns deck names to podium placements addressed by their snapshot groupId.
package curation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	report_curation_failed  = "curation.failed"
	report_curation_updated = "curation.updated"
)

// suggestionThreshold is the least similarity a known deck name needs to be suggested.
const suggestionThreshold = 0.85

var dateKeyRegex = regexp.MustCompile(`^\d{8}$`)

var ErrInvalidGroupID = errors.New("invalid group id")

// GroupRef is a parsed groupId.
type GroupRef struct {
	DateKey    string
	EventID    string
	Rank       int
	Occurrence int
}

// ParseGroupID parses `{dateKey}_{eventId}_{rank}_{occurrence}`, event ids never contain an
// underscore.
func ParseGroupID(groupID string) (GroupRef, error) {
	parts := strings.Split(groupID, "_")
	if len(parts) != 4 {
		return GroupRef{}, fmt.Errorf("%w: '%s'", ErrInvalidGroupID, groupID)
	}
	if !dateKeyRegex.MatchString(parts[0]) || !strings.HasPrefix(parts[1], "event-") {
		return GroupRef{}, fmt.Errorf("%w: '%s'", ErrInvalidGroupID, groupID)
	}
	rank, err := strconv.Atoi(parts[2])
	if err != nil || rank < 1 || rank > 3 {
		return GroupRef{}, fmt.Errorf("%w: rank in '%s'", ErrInvalidGroupID, groupID)
	}
	occurrence, err := strconv.Atoi(parts[3])
	if err != nil || occurrence < 0 {
		return GroupRef{}, fmt.Errorf("%w: occurrence in '%s'", ErrInvalidGroupID, groupID)
	}
	return GroupRef{
		DateKey:    parts[0],
		EventID:    parts[1],
		Rank:       rank,
		Occurrence: occurrence,
	}, nil
}

type Assignment struct {
	GroupID  string `json:"groupId"`
	DeckName string `json:"deckName"`
}

type Updated struct {
	GroupID   string `json:"groupId"`
	RankingID string `json:"rankingId"`
	DeckName  string `json:"deckName"`
	// Suggestion is a similar deck name that is already in use, empty if the name is known
	// or nothing is close enough.
	Suggestion string `json:"suggestion,omitempty"`
}

type Failure struct {
	GroupID string `json:"groupId"`
	Error   string `json:"error"`
}

// Result carries every item of a batch, either as an update or as a failure.
type Result struct {
	Updated []Updated `json:"updated"`
	Failed  []Failure `json:"failed"`
}

type Service struct {
	store store.Store
	tel   telemetry.API
}

func NewService(s store.Store, tel telemetry.API) Service {
	assert.NotNil(s, "store")
	return Service{
		store: s,
		tel:   telemetry.NewScopedAPI("curation", tel),
	}
}

// AssignDeckNames applies every assignment independently, a failing item does not stop the
// others.
func (s Service) AssignDeckNames(ctx context.Context, assignments []Assignment) (Result, error) {
	known, err := s.KnownDeckNames(ctx)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Updated: []Updated{},
		Failed:  []Failure{},
	}
	for _, a := range assignments {
		rankingID, err := s.assign(ctx, a)
		if err != nil {
			s.tel.ReportWarning(report_curation_failed, a.GroupID, err)
			result.Failed = append(result.Failed, Failure{
				GroupID: a.GroupID,
				Error:   err.Error(),
			})
			continue
		}
		result.Updated = append(result.Updated, Updated{
			GroupID:    a.GroupID,
			RankingID:  rankingID,
			DeckName:   strings.TrimSpace(a.DeckName),
			Suggestion: Suggest(strings.TrimSpace(a.DeckName), known),
		})
	}
	s.tel.ReportCount(report_curation_updated, int64(len(result.Updated)))
	return result, nil
}

func (s Service) assign(ctx context.Context, a Assignment) (string, error) {
	name := strings.TrimSpace(a.DeckName)
	if name == "" {
		return "", errors.New("deck name is empty")
	}
	ref, err := ParseGroupID(a.GroupID)
	if err != nil {
		return "", err
	}

	row, err := s.findRow(ctx, ref)
	if err != nil {
		return "", err
	}
	err = s.store.Update(ctx, model.RankingsCollection, row.ID, map[string]any{
		"deckName": name,
	})
	if err != nil {
		return "", err
	}

	err = s.store.Transact(
		ctx,
		model.SnapshotsCollection,
		model.SnapshotID(ref.DateKey, row.Category),
		func(current json.RawMessage) (any, error) {
			if current == nil {
				return nil, nil
			}
			var snapshot model.DailySnapshot
			err := json.Unmarshal(current, &snapshot)
			if err != nil {
				return nil, err
			}
			setDeckName(snapshot.Rankings, a.GroupID, name)
			for _, g := range snapshot.Groups {
				setDeckName(g.Rankings, a.GroupID, name)
			}
			return snapshot, nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("update snapshot: %w", err)
	}
	return row.ID, nil
}

func setDeckName(rankings []model.SnapshotRanking, groupID, name string) {
	for i := range rankings {
		if rankings[i].GroupID == groupID {
			rankings[i].DeckName = name
		}
	}
}

// findRow resolves the n-th row of a rank in an event, the same ordering snapshots assign
// occurrences in.
func (s Service) findRow(ctx context.Context, ref GroupRef) (model.RankingRow, error) {
	rows, err := store.QueryAs[model.RankingRow](ctx, s.store, store.Query{
		Collection: model.RankingsCollection,
		Filters: []store.Filter{
			store.Eq("eventId", ref.EventID),
			store.Eq("rank", ref.Rank),
		},
	})
	if err != nil {
		return model.RankingRow{}, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SequenceWithinRank < rows[j].SequenceWithinRank
	})
	if ref.Occurrence >= len(rows) {
		return model.RankingRow{}, fmt.Errorf(
			"no ranking for rank %d occurrence %d in %s",
			ref.Rank, ref.Occurrence, ref.EventID,
		)
	}
	row := rows[ref.Occurrence]
	if row.DateKey != ref.DateKey {
		return model.RankingRow{}, fmt.Errorf("ranking %s is not on %s", row.ID, ref.DateKey)
	}
	return row, nil
}

// KnownDeckNames lists every deck name that has been assigned so far, sorted.
func (s Service) KnownDeckNames(ctx context.Context) ([]string, error) {
	rows, err := store.QueryAs[model.RankingRow](ctx, s.store, store.Query{
		Collection: model.RankingsCollection,
		Filters: []store.Filter{
			{Field: "deckName", Op: store.OpGt, Value: ""},
		},
	})
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var names []string
	for _, r := range rows {
		if _, ok := seen[r.DeckName]; ok {
			continue
		}
		seen[r.DeckName] = struct{}{}
		names = append(names, r.DeckName)
	}
	sort.Strings(names)
	return names, nil
}

// Suggest returns the known name most similar to name when it is not known itself.
func Suggest(name string, known []string) string {
	var best string
	var bestSimilarity float64
	for _, k := range known {
		if k == name {
			return ""
		}
		similarity := matchr.JaroWinkler(name, k, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = k
		}
	}
	if bestSimilarity < suggestionThreshold {
		return ""
	}
	return best
}
