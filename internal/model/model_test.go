package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIDs(t *testing.T) {
	eventID := EventID("20250307", CategoryOpen, 4)
	require.Equal(t, "event-20250307-open-004", eventID)
	require.Equal(t, "rank-event-20250307-open-004-3-01", RankingRowID(eventID, 3, 1))
	require.Equal(t, "20250307-Open", SnapshotID("20250307", CategoryOpen))
	require.Equal(t, "20250307_event-20250307-open-004_1_0", GroupID("20250307", eventID, 1, 0))
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		in       string
		expected Category
		err      bool
	}{
		{in: "Open", expected: CategoryOpen},
		{in: "senior", expected: CategorySenior},
		{in: "JUNIOR", expected: CategoryJunior},
		{in: "masters", expected: CategoryUnknown, err: true},
	}
	for _, tc := range testCases {
		got, err := ParseCategory(tc.in)
		if tc.err {
			require.Error(t, err, tc.in)
		} else {
			require.NoError(t, err, tc.in)
		}
		require.Equal(t, tc.expected, got, tc.in)
	}

	require.Equal(t, []Category{CategorySenior, CategoryJunior}, CategoryOpen.Others())
	require.False(t, CategoryUnknown.Known())
}

func TestAllowedRanks(t *testing.T) {
	for _, rank := range []int{1, 2, 3, 5, 9} {
		require.True(t, IsAllowedRank(rank), rank)
	}
	for _, rank := range []int{0, 4, 8, 17} {
		require.False(t, IsAllowedRank(rank), rank)
	}
}

func TestDateLabel(t *testing.T) {
	require.Equal(t, "3/7", DateLabel("20250307"))
	require.Equal(t, "12/31", DateLabel("20241231"))
	require.Equal(t, "bad", DateLabel("bad"))
}

func TestHumanDuration(t *testing.T) {
	require.Equal(t, "0s", HumanDuration(200*time.Millisecond))
	require.Equal(t, "1s", HumanDuration(800*time.Millisecond))
	require.Equal(t, "1h2m3s", HumanDuration(time.Hour+2*time.Minute+3*time.Second))
}
