package id

import (
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	for _, prefix := range []string{RunPrefix, JobPrefix} {
		id := gen.GenerateWithPrefix(prefix)

		if !strings.HasPrefix(id, prefix+"_") {
			t.Errorf("ID should start with '%s_', got: %s", prefix, id)
		}

		parts := strings.Split(id, "_")
		if len(parts) != 2 {
			t.Errorf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
		}

		if _, err := ulid.Parse(parts[1]); err != nil {
			t.Errorf("ULID part should be valid: %s", parts[1])
		}
	}
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()

	if !strings.HasPrefix(id.String(), "run_") {
		t.Errorf("run ID should start with 'run_', got: %s", id)
	}
}

func TestNewJobID(t *testing.T) {
	id := NewJobID()

	if !strings.HasPrefix(id.String(), "job_") {
		t.Errorf("job ID should start with 'job_', got: %s", id)
	}
}
