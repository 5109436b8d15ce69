package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/romware/superreader/internal/logging"
	"github.com/romware/superreader/internal/monitoring"
)

// Record size bounds.
const (
	// MinLineCap matches the smallest buffer bufio.Reader will accept.
	MinLineCap = 16
	// MaxLineCap keeps a full frame below the OS pipe capacity, so a
	// channel write never blocks while the producer holds the token.
	MaxLineCap = 32768
)

// Config holds the transfer parameters.
type Config struct {
	// LineCap is the maximum record size in bytes, terminator included.
	LineCap int
	// Marker ends the header block, matched by substring containment.
	// A body line containing the marker text is misread as the end of
	// the header; kept as a documented ambiguity.
	Marker string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger attaches a logger to the pipeline.
func WithLogger(log *logging.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithMetrics attaches a metrics collector to the pipeline.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// Pipeline is the shared context of the three stages. All fields below
// the ring are guarded by token ownership: a stage touches them only
// between Acquire and Release, and the hand-off orders the accesses.
type Pipeline struct {
	cfg    Config
	marker []byte

	ring *Ring

	// Byte channel between producer and relay.
	chanR *os.File
	chanW *os.File

	in  io.Reader
	out io.Writer

	// Reused line buffer. Never cleared between circulations; frames
	// are length-delimited so stale bytes past n are never observed.
	buf []byte
	n   int

	// Set once by the producer during the terminating circulation.
	end bool

	log     *logging.Logger
	metrics *monitoring.Metrics

	closeWriteOnce sync.Once
	closeReadOnce  sync.Once
}

// New validates cfg, creates the byte channel, and assembles a pipeline
// reading from in and writing to out. The caller owns both handles;
// filename acquisition and file lifecycle stay outside the core.
func New(cfg Config, in io.Reader, out io.Writer, opts ...Option) (*Pipeline, error) {
	if cfg.LineCap < MinLineCap || cfg.LineCap > MaxLineCap {
		return nil, fmt.Errorf("%w: line cap %d out of range [%d, %d]", ErrConfig, cfg.LineCap, MinLineCap, MaxLineCap)
	}
	if cfg.Marker == "" {
		return nil, fmt.Errorf("%w: empty header marker", ErrConfig)
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChannel, err)
	}

	p := &Pipeline{
		cfg:     cfg,
		marker:  []byte(cfg.Marker),
		ring:    NewRing(),
		chanR:   r,
		chanW:   w,
		in:      in,
		out:     out,
		buf:     make([]byte, cfg.LineCap),
		log:     logging.NewNop(),
		metrics: monitoring.NewMetrics(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes the three stages and blocks until all have terminated.
// The first fatal error cancels the remaining stages and is returned.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.metrics.RunStarted()

	g, ctx := errgroup.WithContext(ctx)

	// Unblock any stage stuck in channel I/O once a sibling fails.
	// The errgroup context is also done after a clean Wait, so the
	// goroutine never leaks; both closes are once-guarded.
	go func() {
		<-ctx.Done()
		p.closeChannel()
	}()

	g.Go(func() error { return p.produce(ctx) })
	g.Go(func() error { return p.relay(ctx) })
	g.Go(func() error { return p.consume(ctx) })

	err := g.Wait()
	p.closeChannel()
	p.metrics.RunFinished(start)

	if err != nil {
		return err
	}
	p.log.Info("transfer complete",
		zap.Int64("records", p.metrics.GetSnapshot().RecordsProduced),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// closeWrite closes the channel write end. Called by the producer after
// the terminating circulation, and again harmlessly during teardown.
func (p *Pipeline) closeWrite() {
	p.closeWriteOnce.Do(func() { p.chanW.Close() })
}

func (p *Pipeline) closeChannel() {
	p.closeWrite()
	p.closeReadOnce.Do(func() { p.chanR.Close() })
}
