package curation

import (
	"context"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/internal/model"
	"leaguedecks-backend/internal/store"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGroupID(t *testing.T) {
	ref, err := ParseGroupID("20250307_event-20250307-open-001_3_1")
	require.NoError(t, err)
	require.Equal(t, GroupRef{
		DateKey:    "20250307",
		EventID:    "event-20250307-open-001",
		Rank:       3,
		Occurrence: 1,
	}, ref)

	for _, invalid := range []string{
		"",
		"20250307_event-20250307-open-001_3",
		"2025037_event-20250307-open-001_1_0",
		"20250307_other_1_0",
		"20250307_event-20250307-open-001_5_0",
		"20250307_event-20250307-open-001_1_-1",
	} {
		_, err := ParseGroupID(invalid)
		require.ErrorIs(t, err, ErrInvalidGroupID, invalid)
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"Dragapult ex", "Gardevoir ex", "Lost Box"}
	require.Equal(t, "", Suggest("Gardevoir ex", known))
	require.Equal(t, "Gardevoir ex", Suggest("Gardevoir ex.", known))
	require.Equal(t, "", Suggest("Charizard", known))
	require.Equal(t, "", Suggest("anything", nil))
}

func TestAssignDeckNames(t *testing.T) {
	ctx := context.Background()
	s, err := store.OpenMemory(ctx)
	require.NoError(t, err)

	eventID := "event-20250307-open-001"
	rows := []model.RankingRow{
		{ID: model.RankingRowID(eventID, 1, 0), EventID: eventID, DateKey: "20250307", Category: model.CategoryOpen, Rank: 1},
		{ID: model.RankingRowID(eventID, 3, 0), EventID: eventID, DateKey: "20250307", Category: model.CategoryOpen, Rank: 3},
		{ID: model.RankingRowID(eventID, 3, 1), EventID: eventID, DateKey: "20250307", Category: model.CategoryOpen, Rank: 3, SequenceWithinRank: 1},
		{ID: "rank-other", EventID: "event-20250301-open-001", DateKey: "20250301", Category: model.CategoryOpen, Rank: 1, DeckName: "Gardevoir ex"},
	}
	groupID := model.GroupID("20250307", eventID, 3, 1)
	snapshot := model.DailySnapshot{
		ID:       model.SnapshotID("20250307", model.CategoryOpen),
		DateKey:  "20250307",
		Category: model.CategoryOpen,
		Rankings: []model.SnapshotRanking{{RankingID: rows[2].ID, GroupID: groupID}},
		Groups: []model.OrganizerGroup{{
			Organizer: "shop",
			Rankings:  []model.SnapshotRanking{{RankingID: rows[2].ID, GroupID: groupID}},
		}},
	}

	var writes []store.Write
	for _, r := range rows {
		writes = append(writes, store.Write{Collection: model.RankingsCollection, ID: r.ID, Doc: r})
	}
	writes = append(writes, store.Write{Collection: model.SnapshotsCollection, ID: snapshot.ID, Doc: snapshot})
	require.NoError(t, s.BatchWrite(ctx, writes))

	svc := NewService(s, telemetry.NewRecorder(nil))
	result, err := svc.AssignDeckNames(ctx, []Assignment{
		{GroupID: groupID, DeckName: " Gardevoir ex. "},
		{GroupID: "broken", DeckName: "x"},
		{GroupID: model.GroupID("20250307", eventID, 2, 0), DeckName: "x"},
		{GroupID: model.GroupID("20250307", eventID, 1, 0), DeckName: ""},
	})
	require.NoError(t, err)
	require.Equal(t, []Updated{{
		GroupID:    groupID,
		RankingID:  rows[2].ID,
		DeckName:   "Gardevoir ex.",
		Suggestion: "Gardevoir ex",
	}}, result.Updated)
	require.Len(t, result.Failed, 3)

	row, err := store.GetAs[model.RankingRow](ctx, s, model.RankingsCollection, rows[2].ID)
	require.NoError(t, err)
	require.Equal(t, "Gardevoir ex.", row.DeckName)

	stored, err := store.GetAs[model.DailySnapshot](ctx, s, model.SnapshotsCollection, snapshot.ID)
	require.NoError(t, err)
	require.Equal(t, "Gardevoir ex.", stored.Rankings[0].DeckName)
	require.Equal(t, "Gardevoir ex.", stored.Groups[0].Rankings[0].DeckName)

	names, err := svc.KnownDeckNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Gardevoir ex", "Gardevoir ex."}, names)
}
