package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersTrackSnapshot(t *testing.T) {
	m := NewMetrics()

	m.IncProduced()
	m.IncProduced()
	m.IncRelayed()
	m.IncWritten()
	m.IncHeaderSkipped()

	snap := m.GetSnapshot()
	assert.Equal(t, int64(2), snap.RecordsProduced)
	assert.Equal(t, int64(1), snap.RecordsRelayed)
	assert.Equal(t, int64(1), snap.RecordsWritten)
	assert.Equal(t, int64(1), snap.HeaderSkipped)

	// Prometheus counters stay in lockstep with the snapshot
	assert.Equal(t, float64(2), testutil.ToFloat64(m.RecordsProduced))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsWritten))
}

func TestIndependentRegistries(t *testing.T) {
	// Two collectors must not collide on metric registration
	m1 := NewMetrics()
	m2 := NewMetrics()

	m1.IncProduced()

	assert.Equal(t, float64(1), testutil.ToFloat64(m1.RecordsProduced))
	assert.Equal(t, float64(0), testutil.ToFloat64(m2.RecordsProduced))
}

func TestRunLifecycle(t *testing.T) {
	m := NewMetrics()

	start := time.Now()
	m.RunStarted()
	m.RunFinished(start)

	snap := m.GetSnapshot()
	assert.Equal(t, int64(1), snap.Runs)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["superreader_runs_total"])
	assert.True(t, names["superreader_run_duration_seconds"])
}
