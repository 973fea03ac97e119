// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package workers

import (
	"context"
	"sync"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
)

// Job is one unit of pool work. Every job accepted by Submit runs
// exactly once, even if its context ends while queued; the job itself
// observes the context state. That guarantee is what lets callers wait
// on a batch without leaking.
type Job func(ctx context.Context)

type job struct {
	ctx context.Context
	fn  Job
}

// DocumentPool is the fixed-size worker pool that drains document
// processing jobs. Submission blocks while the queue is full; that
// backpressure is what keeps a large batch upload from flooding a
// small machine.
type DocumentPool struct {
	jobs chan job
	size int

	wg        sync.WaitGroup
	closeOnce sync.Once

	logger *logger.Logger
}

// NewDocumentPool sizes a pool from configuration. Non-positive sizes
// fall back to serial processing with a minimal queue.
func NewDocumentPool(cfg config.Workers, log *logger.Logger) *DocumentPool {
	size := cfg.DocumentPoolSize
	if size <= 0 {
		size = 1
	}
	queueSize := cfg.DocumentQueueSize
	if queueSize <= 0 {
		queueSize = size
	}

	return &DocumentPool{
		jobs:   make(chan job, queueSize),
		size:   size,
		logger: log,
	}
}

// Run implements [Worker]. It starts the pool goroutines and returns.
// Call it once.
func (p *DocumentPool) Run() {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	p.logger.Info().
		Str("func", "DocumentPool.Run").
		Int("size", p.size).
		Int("queue", cap(p.jobs)).
		Msg("document pool started")
}

// Submit queues one job. It blocks while the queue is full and returns
// the context error if ctx ends first.
func (p *DocumentPool) Submit(ctx context.Context, fn Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case p.jobs <- job{ctx: ctx, fn: fn}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake and waits for in-flight jobs to finish. Safe
// to call more than once.
func (p *DocumentPool) Shutdown() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}

func (p *DocumentPool) worker() {
	defer p.wg.Done()

	for j := range p.jobs {
		p.execute(j)
	}
}

func (p *DocumentPool) execute(j job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "DocumentPool.execute").
				Any("panic", r).
				Msg("document job panicked")
		}
	}()

	j.fn(j.ctx)
}
