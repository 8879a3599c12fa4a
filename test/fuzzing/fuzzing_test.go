package fuzzing

import (
	"context"
	"leaguedecks-backend/internal/components/telemetry"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTargetMethods(t *testing.T) {
	target, err := PipelineProvider{}.CreateTarget(telemetry.NoopAPI{}, nil)
	require.NoError(t, err)

	steps, onEnd := getTargetMethods(target)
	names := []string{}
	for _, s := range steps {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	require.Equal(t, []string{
		"StepAddListingRow",
		"StepBuild",
		"StepCollect",
		"StepProbe",
		"StepRebuildDeterminism",
		"StepToggleFaults",
	}, names)
	require.NotNil(t, onEnd)
}

func TestParsePath(t *testing.T) {
	path, err := ParsePath("42:100")
	require.NoError(t, err)
	require.Equal(t, Path{Seed: 42, Steps: 100}, path)
	require.Equal(t, "42:100", path.String())

	for _, invalid := range []string{"", "42", "a:1", "1:b", "1:2:3"} {
		_, err := ParsePath(invalid)
		require.Error(t, err, invalid)
	}
}

func TestPipelinePaths(t *testing.T) {
	f, err := New(telemetry.NoopAPI{}, PipelineProvider{}, 10, 60, Path{})
	require.NoError(t, err)

	for seed := int64(1); seed <= 20; seed++ {
		path := Path{Seed: seed, Steps: 60}
		results, err := f.RunPath(context.Background(), telemetry.NoopAPI{}, path)
		require.NoError(t, err)
		require.Empty(t, results.Failures(), "path %s:\n%s", path, results.formatFails())
	}
}
