package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// produce reads records from the input and pushes each one through the
// byte channel, one circulation per record. A source line longer than
// the line cap is split into unmarked continuation records, the way
// sizing-limited line reads have always behaved here.
func (p *Pipeline) produce(ctx context.Context) error {
	log := p.log.Named(StageProducer.String())
	br := bufio.NewReaderSize(p.in, p.cfg.LineCap)

	for {
		line, err := br.ReadSlice('\n')
		if len(line) > 0 {
			if aerr := p.ring.Acquire(ctx, StageProducer); aerr != nil {
				return aerr
			}
			if werr := WriteFrame(p.chanW, line); werr != nil {
				return fmt.Errorf("%w: %v", ErrChannelWrite, werr)
			}
			p.metrics.IncProduced()
			log.Debug("produced record", zap.Int("bytes", len(line)))
			p.ring.Release(StageProducer)
		}

		switch err {
		case nil:
		case bufio.ErrBufferFull:
			// Long line: keep emitting continuation records.
		case io.EOF:
			return p.finish(ctx)
		default:
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// finish runs the terminating circulation: no payload, just the
// end-of-input flag. Closing the write end happens under token
// ownership so the relay never races a read against it.
func (p *Pipeline) finish(ctx context.Context) error {
	if err := p.ring.Acquire(ctx, StageProducer); err != nil {
		return err
	}
	p.end = true
	p.closeWrite()
	p.log.Named(StageProducer.String()).Debug("input exhausted, end flag set")
	p.ring.Release(StageProducer)
	return nil
}

// relay moves one frame per circulation from the byte channel into the
// shared line buffer. It performs no file I/O; it exists to decouple
// the channel from the header filter.
func (p *Pipeline) relay(ctx context.Context) error {
	log := p.log.Named(StageRelay.String())

	for {
		if err := p.ring.Acquire(ctx, StageRelay); err != nil {
			return err
		}

		if p.end {
			p.ring.Release(StageRelay)
			return nil
		}

		n, err := ReadFrame(p.chanR, p.buf)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrChannelRead, err)
		}
		if n <= 0 {
			return fmt.Errorf("%w: empty frame", ErrChannelRead)
		}
		p.n = n
		p.metrics.IncRelayed()
		log.Debug("relayed record", zap.Int("bytes", n))

		p.ring.Release(StageRelay)
	}
}

// consume filters the header block and writes body records verbatim,
// terminator included. headerPassed transitions once; the marker line
// itself is swallowed.
func (p *Pipeline) consume(ctx context.Context) error {
	log := p.log.Named(StageConsumer.String())
	headerPassed := false
	bw := bufio.NewWriter(p.out)

	for {
		if err := p.ring.Acquire(ctx, StageConsumer); err != nil {
			return err
		}

		if p.end {
			break
		}

		line := p.buf[:p.n]
		switch {
		case headerPassed:
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			p.metrics.IncWritten()
			log.Debug("wrote record", zap.Int("bytes", len(line)))
		case bytes.Contains(line, p.marker):
			headerPassed = true
			p.metrics.IncHeaderSkipped()
			log.Debug("header marker reached")
		default:
			p.metrics.IncHeaderSkipped()
			log.Debug("skipped header record")
		}

		p.ring.Release(StageConsumer)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
