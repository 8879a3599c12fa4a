package chrono

import (
	"sync/atomic"
	"testing"
	"time"

	"leaguedecks-backend/internal/components/telemetry"

	"github.com/stretchr/testify/require"
)

func TestStandardCron(t *testing.T) {
	cron := NewStandardCron(telemetry.NoopAPI{})
	defer cron.Stop()

	var fired atomic.Int32
	err := cron.Cron("@every 1s", func() {
		fired.Add(1)
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return fired.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)

	err = cron.Cron("not a schedule", func() {})
	require.Error(t, err)
}
