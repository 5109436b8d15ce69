package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romware/superreader/internal/logging"
	"github.com/romware/superreader/internal/pipeline"
)

func openFDCount(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("fd accounting requires /proc")
	}
	return len(ents)
}

func TestGlobJobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("end_header\nbody\n"), 0o644))
	}

	jobs, err := globJobs(logging.NewNop(), filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	defer closeJobs(jobs)

	require.Len(t, jobs, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), jobs[0].inPath)
	assert.Equal(t, filepath.Join(dir, "a.txt.out"), jobs[0].outPath)
}

func TestGlobJobsNoMatch(t *testing.T) {
	_, err := globJobs(logging.NewNop(), filepath.Join(t.TempDir(), "*.txt"))
	assert.Error(t, err)
}

// A batch that fails to open partway through must close the handles of
// the jobs already opened.
func TestGlobJobsClosesOnPartialFailure(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("end_header\nbody\n"), 0o644))
	}
	// b.txt.out is a directory, so creating b's output fails after a's
	// input and output are already open
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b.txt.out"), 0o755))

	before := openFDCount(t)

	_, err := globJobs(logging.NewNop(), filepath.Join(dir, "*.txt"))
	require.Error(t, err)

	assert.Equal(t, before, openFDCount(t), "file handles leaked on the error path")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"channel creation", pipeline.ErrChannel, exitChannel},
		{"channel write", pipeline.ErrChannelWrite, exitChannelIO},
		{"channel read", pipeline.ErrChannelRead, exitChannelIO},
		{"bad config", pipeline.ErrConfig, exitConfig},
		{"anything else", errors.New("stage blew up"), exitStage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
