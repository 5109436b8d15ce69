// Package id provides run and job identifiers for the pipeline.
//
// IDs are prefixed ULIDs: lexicographically sortable, unique, and
// readable in logs (run_*, job_*).
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunID identifies one pipeline invocation.
type RunID string

// JobID identifies one file job within a batch run.
type JobID string

const (
	RunPrefix = "run"
	JobPrefix = "job"
)

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator with secure entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRunID generates a new run ID.
func NewRunID() RunID {
	return RunID(Default().GenerateWithPrefix(RunPrefix))
}

// NewJobID generates a new job ID.
func NewJobID() JobID {
	return JobID(Default().GenerateWithPrefix(JobPrefix))
}

func (id RunID) String() string { return string(id) }
func (id JobID) String() string { return string(id) }
