/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scan

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/suparena/tablekit/errors"
)

// Chunk is one page of scan results. A nil NextCursor means the last page
// has been fetched.
type Chunk struct {
	Items      []Record
	NextCursor Cursor
}

// ChunkProvider is the externally supplied capability the reader pulls
// pages through. It reports failures as errors and never silently drops
// data. The cursor is nil on the first call of a scan.
type ChunkProvider interface {
	ScanChunk(ctx context.Context, s *Scan, cursor Cursor) (*Chunk, error)
}

// Consumer receives the reader's output. OnBatch returns true when the
// consumer has capacity for more pushes; returning false pauses the reader
// until the next Pull. OnEnd is called exactly once when the sequence
// completes, whether exhausted or errored. OnError is called exactly once,
// after OnEnd, if a page fetch failed.
type Consumer interface {
	OnBatch(items []Record) bool
	OnEnd()
	OnError(err error)
}

// State is the reader's position in its lifecycle.
type State int32

const (
	StateIdle State = iota
	StateReading
	StatePaused
	StateExhausted
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StatePaused:
		return "paused"
	case StateExhausted:
		return "exhausted"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// StreamReader drives a paginated scan as a pull-based sequence of result
// batches. At most one fetch loop runs at a time; reader state is mutated
// only inside that loop, so no additional locking guards the cursor or the
// scanned counter.
type StreamReader struct {
	provider ChunkProvider
	scan     *Scan
	consumer Consumer
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	cursor  Cursor
	scanned int64
}

// NewStreamReader builds a reader over the given provider capability.
// The logger may be nil.
func NewStreamReader(provider ChunkProvider, s *Scan, consumer Consumer, logger *slog.Logger) *StreamReader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &StreamReader{
		provider: provider,
		scan:     s,
		consumer: consumer,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the reader's current state.
func (r *StreamReader) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Scanned returns the running total of items pushed so far.
func (r *StreamReader) Scanned() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scanned
}

// Pull requests more data. If a fetch loop is already running the request
// is a no-op (reentrancy guard), as it is once the reader is exhausted or
// errored. Otherwise the reader enters Reading and runs the fetch loop
// until backpressure, exhaustion, or a provider failure stops it.
func (r *StreamReader) Pull(ctx context.Context) {
	r.mu.Lock()
	switch r.state {
	case StateReading, StateExhausted, StateErrored:
		r.mu.Unlock()
		return
	}
	r.state = StateReading
	r.mu.Unlock()

	r.fetchLoop(ctx)
}

func (r *StreamReader) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// fetchLoop pulls pages until the consumer declines a push, the provider
// reports the last page, or a fetch fails. Pages are pushed in fetch order;
// empty intermediate pages advance the cursor without pushing anything.
func (r *StreamReader) fetchLoop(ctx context.Context) {
	for {
		chunk, err := r.provider.ScanChunk(ctx, r.scan, r.cursor)
		if err != nil {
			r.setState(StateErrored)
			r.logger.Error("scan page fetch failed", "table", r.scan.TableName(), "error", err)
			r.consumer.OnEnd()
			r.consumer.OnError(errors.NewProviderError("ScanChunk", err))
			return
		}

		last := len(chunk.NextCursor) == 0
		r.mu.Lock()
		r.cursor = chunk.NextCursor
		r.scanned += int64(len(chunk.Items))
		r.mu.Unlock()

		if len(chunk.Items) == 0 {
			if last {
				r.setState(StateExhausted)
				r.consumer.OnEnd()
				return
			}
			// Empty intermediate page: advance the cursor, push nothing.
			continue
		}

		accepted := r.consumer.OnBatch(chunk.Items)
		if last {
			r.setState(StateExhausted)
			r.consumer.OnEnd()
			return
		}
		if !accepted {
			r.setState(StatePaused)
			r.logger.Debug("consumer backpressure, pausing", "table", r.scan.TableName(), "scanned", r.Scanned())
			return
		}
	}
}
