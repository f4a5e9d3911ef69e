// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package processor simulates the analysis backend. Each submission becomes a
// Task that waits out a configurable latency, then either fails with a fixed
// probability or resolves to a synthesized QueryResult.
//
// Latency and failure probability are plain configuration so tests can force
// either branch deterministically (zero latency, failure rate 0 or 1).
package processor

import (
	"context"
	"math/rand"
	"time"

	"querydash/cli/internal/analytics"
	"querydash/cli/internal/logging"

	"github.com/pterm/pterm"
)

// Messages carried by rejected outcomes.
const (
	FailureMessage   = "Failed to process query. Please try again."
	CancelledMessage = "query processing cancelled"
)

// Config tunes the simulated backend.
type Config struct {
	// Latency is how long each submission waits before resolving.
	Latency time.Duration
	// FailureRate is the probability in [0,1] that a submission is rejected.
	FailureRate float64
}

// DefaultConfig matches the behaviour of the hosted dashboard: 1.5s latency,
// one failure in ten.
func DefaultConfig() Config {
	return Config{Latency: 1500 * time.Millisecond, FailureRate: 0.1}
}

// Processor starts submissions against the simulated backend.
type Processor struct {
	cfg    Config
	synth  *analytics.Synthesizer
	roll   func() float64
	logger *pterm.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithSynthesizer replaces the default result synthesizer.
func WithSynthesizer(s *analytics.Synthesizer) Option {
	return func(p *Processor) { p.synth = s }
}

// WithRoll replaces the random source used for failure injection. The
// function must return values in [0,1).
func WithRoll(roll func() float64) Option {
	return func(p *Processor) { p.roll = roll }
}

// WithLogger attaches a logger for task lifecycle messages.
func WithLogger(l *pterm.Logger) Option {
	return func(p *Processor) { p.logger = l }
}

// New creates a Processor.
func New(cfg Config, opts ...Option) *Processor {
	p := &Processor{
		cfg:    cfg,
		synth:  analytics.NewSynthesizer(),
		roll:   rand.Float64,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the processor's configuration.
func (p *Processor) Config() Config { return p.cfg }

// Start begins processing query and returns immediately. The task is
// cancelled when ctx is done or Task.Cancel is called before it resolves.
func (p *Processor) Start(ctx context.Context, query string) *Task {
	tctx, cancel := context.WithCancel(ctx)
	t := newTask(query, cancel)
	p.logger.Debug("task started", p.logger.Args(
		"query", logging.Truncate(logging.Sanitize(query), 60),
		"latency", p.cfg.Latency.String(),
	))
	go p.run(tctx, t)
	return t
}

// Process runs a submission to completion and returns its outcome.
func (p *Processor) Process(ctx context.Context, query string) Outcome {
	return p.Start(ctx, query).Wait(context.Background())
}

func (p *Processor) run(ctx context.Context, t *Task) {
	defer t.cancel()

	if p.cfg.Latency > 0 {
		timer := time.NewTimer(p.cfg.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			p.logger.Debug("task cancelled", p.logger.Args("reason", ctx.Err().Error()))
			t.resolve(Rejected(CancelledMessage))
			return
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		t.resolve(Rejected(CancelledMessage))
		return
	}

	if p.roll() < p.cfg.FailureRate {
		p.logger.Debug("task rejected", p.logger.Args("message", FailureMessage))
		t.resolve(Rejected(FailureMessage))
		return
	}
	result := p.synth.Synthesize(t.query)
	p.logger.Debug("task fulfilled", p.logger.Args(
		"id", result.ID,
		"chart", string(result.ChartType),
		"title", result.Title,
	))
	t.resolve(Fulfilled(result))
}
