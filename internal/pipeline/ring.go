package pipeline

import "context"

// Stage identifies one of the three pipeline workers.
type Stage int

const (
	StageProducer Stage = iota
	StageRelay
	StageConsumer

	numStages = 3
)

func (s Stage) String() string {
	switch s {
	case StageProducer:
		return "producer"
	case StageRelay:
		return "relay"
	case StageConsumer:
		return "consumer"
	default:
		return "unknown"
	}
}

// Ring is the synchronization baton: one token circulating through three
// single-slot hand-off channels, one per directed edge of the cycle.
// edges[s] carries the token that activates stage s. Only the stage that
// holds the token may touch the shared pipeline state, and releasing it
// publishes every write to the next holder.
type Ring struct {
	edges [numStages]chan struct{}
}

// NewRing creates a ring with the token parked on the producer's edge,
// so the producer is the first stage to run.
func NewRing() *Ring {
	r := &Ring{}
	for i := range r.edges {
		r.edges[i] = make(chan struct{}, 1)
	}
	r.edges[StageProducer] <- struct{}{}
	return r
}

// Acquire blocks until the token reaches stage s or ctx is cancelled.
// Cancellation wins over an available token.
func (r *Ring) Acquire(ctx context.Context, s Stage) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case <-r.edges[s]:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release hands the token to the next stage in the cycle.
func (r *Ring) Release(s Stage) {
	r.edges[(s+1)%numStages] <- struct{}{}
}
