package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"domainscout/internal/domain"
)

const (
	ContentType   = "application/x-ndjson"
	DefaultBuffer = 16
)

var ErrConsumerGone = errors.New("stream consumer gone")

type flusher interface {
	Flush()
}

// Emitter writes newline-delimited JSON records. Emit and Done are called
// by one producer goroutine, Run by one writer goroutine. The bounded
// channel between them applies backpressure to the producer.
type Emitter struct {
	w       io.Writer
	enc     *json.Encoder
	flusher flusher
	records chan any
	stopped chan struct{}

	stopOnce sync.Once
	doneOnce sync.Once
	doneErr  error
	finished atomic.Bool
	written  atomic.Int64
}

func NewEmitter(w io.Writer, buffer int) *Emitter {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	e := &Emitter{
		w:       w,
		enc:     json.NewEncoder(w),
		records: make(chan any, buffer),
		stopped: make(chan struct{}),
	}
	if f, ok := w.(flusher); ok {
		e.flusher = f
	}
	return e
}

// Run writes records until Done has been drained or a write fails. A write
// failure means the consumer is gone: the returned error wraps
// ErrConsumerGone and later Emit calls fail with it.
func (e *Emitter) Run() error {
	for rec := range e.records {
		if err := e.enc.Encode(rec); err != nil {
			e.stop()
			return fmt.Errorf("%w: %w", ErrConsumerGone, err)
		}
		if e.flusher != nil {
			e.flusher.Flush()
		}
		e.written.Add(1)
	}
	return nil
}

func (e *Emitter) Emit(ctx context.Context, o domain.Outcome) error {
	if e.finished.Load() {
		return errors.New("emit after done")
	}
	select {
	case <-e.stopped:
		return ErrConsumerGone
	default:
	}

	select {
	case e.records <- o:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.stopped:
		return ErrConsumerGone
	}
}

// Done enqueues the terminal record and closes the stream. Only the first
// call has an effect.
func (e *Emitter) Done() error {
	e.doneOnce.Do(func() {
		e.finished.Store(true)
		select {
		case e.records <- domain.Done:
		case <-e.stopped:
			e.doneErr = ErrConsumerGone
		}
		close(e.records)
	})
	return e.doneErr
}

// Close ends the stream if Done was never called.
func (e *Emitter) Close() {
	_ = e.Done()
}

// Written is the number of records delivered, the done record included.
func (e *Emitter) Written() int {
	return int(e.written.Load())
}

func (e *Emitter) stop() {
	e.stopOnce.Do(func() { close(e.stopped) })
}
