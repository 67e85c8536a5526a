// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

type job struct {
	ctx   context.Context
	run   func(ctx context.Context)
	abort func(err error)
}

// MethodQueue runs bridge calls on a fixed pool of goroutines. Submitting
// never blocks: a full or closed queue rejects the call at once.
type MethodQueue struct {
	jobs    chan job
	workers int

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewMethodQueue sizes the queue from cfg. Non-positive values fall back to
// one worker and one queue slot.
func NewMethodQueue(cfg config.Bridge, logger *logger.Logger) *MethodQueue {
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &MethodQueue{
		jobs:    make(chan job, size),
		workers: workers,
		logger:  logger,
	}
}

// Run starts the worker goroutines. Jobs dispatched after ctx is done are
// aborted with ErrQueueClosed. Calling Run twice is a no-op.
func (q *MethodQueue) Run(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.closed {
		return
	}
	q.started = true

	q.logger.Info().Int("workers", q.workers).Int("queue_size", cap(q.jobs)).Msg("starting bridge method queue")
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work(ctx)
	}
}

func (q *MethodQueue) work(runCtx context.Context) {
	defer q.wg.Done()

	for j := range q.jobs {
		switch {
		case runCtx.Err() != nil:
			j.abort(ErrQueueClosed)
		case j.ctx.Err() != nil:
			j.abort(j.ctx.Err())
		default:
			j.run(j.ctx)
		}
	}
}

// Stop closes the queue and waits for queued calls to finish. Calls
// submitted afterwards are rejected with ErrQueueClosed.
func (q *MethodQueue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	started := q.started
	close(q.jobs)
	q.mu.Unlock()

	if !started {
		for j := range q.jobs {
			j.abort(ErrQueueClosed)
		}
	}
	q.wg.Wait()
	q.logger.Info().Msg("bridge method queue stopped")
}

func (q *MethodQueue) submit(j job) error {
	if err := j.ctx.Err(); err != nil {
		return err
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- j:
		return nil
	default:
		return ErrQueueFull
	}
}
