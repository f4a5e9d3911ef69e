// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	qerrors "querydash/cli/internal/errors"
	"querydash/cli/internal/logging"
	"querydash/cli/internal/processor"

	"github.com/pterm/pterm"
)

// Listener receives a snapshot after every applied transition.
type Listener func(State)

// Store is the single owner of a session's State. All mutation goes through
// Dispatch or Submit; readers get deep-copied snapshots.
//
// Only one submission may be in flight at a time. Submit returns a
// SubmissionInFlight error while another one is pending. Reset cancels the
// pending submission and its late resolution, if any, is discarded.
//
// Listeners see transitions in the order they were applied. They must not
// call Dispatch, Submit or the wrappers, which would deadlock.
type Store struct {
	// notifyMu is held from applying a transition until its listeners return.
	notifyMu sync.Mutex

	mu         sync.Mutex
	state      State
	listeners  []subscription
	nextSubID  int
	generation uint64
	busy       bool
	inflight   *processor.Task

	proc   *processor.Processor
	clock  func() time.Time
	logger *pterm.Logger
}

type subscription struct {
	id int
	fn Listener
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the clock used to timestamp history entries.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// WithStoreLogger attaches a logger for transition messages.
func WithStoreLogger(l *pterm.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// WithInitialState replaces the default initial state.
func WithInitialState(st State) StoreOption {
	return func(s *Store) { s.state = st.Clone() }
}

// NewStore creates a store that submits queries to proc.
func NewStore(proc *processor.Processor, opts ...StoreOption) *Store {
	s := &Store{
		state:  InitialState(),
		proc:   proc,
		clock:  time.Now,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to be called after every transition and returns a
// function that removes it. Listeners run in registration order on the
// goroutine that applied the transition, outside the store lock.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Dispatch applies ev atomically and notifies listeners. A reset event also
// cancels any pending submission.
//
// Pending, fulfilled and rejected belong to the submission lifecycle and are
// only applied by Submit; Dispatch ignores them.
func (s *Store) Dispatch(ev Event) {
	if ev.Type.lifecycle() {
		s.logger.Debug("dispatch ignored", s.logger.Args("event", string(ev.Type)))
		return
	}
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if ev.Type == EventReset {
		s.invalidateLocked()
	}
	snap, listeners := s.applyLocked(ev)
	s.mu.Unlock()
	notify(listeners, snap)
}

func (s *Store) SetCurrentQuery(text string) { s.Dispatch(SetQuery(text)) }

func (s *Store) SelectSuggestion(index int) { s.Dispatch(SelectSuggestion(index)) }

func (s *Store) ClearError() { s.Dispatch(ClearError()) }

func (s *Store) ClearResults() { s.Dispatch(ClearResults()) }

func (s *Store) ClearHistory() { s.Dispatch(ClearHistory()) }

// Reset returns the session to its initial state and abandons any pending submission.
func (s *Store) Reset() { s.Dispatch(Reset()) }

// SubmitCurrent submits the text currently in the query box.
func (s *Store) SubmitCurrent(ctx context.Context) (*Submission, error) {
	return s.Submit(ctx, s.Snapshot().CurrentQuery)
}

// Submit starts processing text. Whitespace-only text is refused with an
// EmptyQuery error and no transition. While another submission is pending
// it is refused with a SubmissionInFlight error.
//
// On acceptance the pending transition is applied before Submit returns;
// the fulfilled or rejected transition follows when the processor resolves.
func (s *Store) Submit(ctx context.Context, text string) (*Submission, error) {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil, qerrors.New(qerrors.EmptyQuery, "query is empty")
	}

	s.notifyMu.Lock()
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		s.notifyMu.Unlock()
		s.logger.Debug("submission refused", s.logger.Args("reason", "in flight"))
		return nil, qerrors.New(qerrors.SubmissionInFlight, "a query is already being processed")
	}
	s.busy = true
	gen := s.generation
	snap, listeners := s.applyLocked(Pending())
	s.mu.Unlock()
	notify(listeners, snap)
	s.notifyMu.Unlock()

	task := s.proc.Start(ctx, query)

	s.mu.Lock()
	if gen != s.generation {
		// Reset happened between the pending transition and the task start.
		s.mu.Unlock()
		task.Cancel()
	} else {
		s.inflight = task
		s.mu.Unlock()
	}

	sub := &Submission{query: query, task: task, done: make(chan struct{})}
	go s.await(gen, sub)
	return sub, nil
}

func (s *Store) await(gen uint64, sub *Submission) {
	<-sub.task.Done()
	outcome := sub.task.Outcome()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("stale resolution discarded", s.logger.Args("status", outcome.Status.String()))
		sub.finish(outcome, false)
		return
	}
	s.busy = false
	s.inflight = nil

	var ev Event
	switch outcome.Status {
	case processor.StatusFulfilled:
		if outcome.Result == nil || !outcome.Result.Data.Valid() {
			ev = Rejected(UnknownErrorMessage)
			break
		}
		ev = Fulfilled(*outcome.Result, sub.query, s.clock().UTC())
	case processor.StatusRejected:
		ev = Rejected(outcome.Message)
	default:
		ev = Rejected(UnknownErrorMessage)
	}
	snap, listeners := s.applyLocked(ev)
	s.mu.Unlock()

	sub.finish(outcome, true)
	notify(listeners, snap)
}

// invalidateLocked abandons the pending submission. Callers hold s.mu.
func (s *Store) invalidateLocked() {
	s.generation++
	s.busy = false
	if s.inflight != nil {
		s.inflight.Cancel()
		s.inflight = nil
	}
}

// applyLocked reduces ev into the state. Callers hold s.mu.
func (s *Store) applyLocked(ev Event) (State, []Listener) {
	s.state = Reduce(s.state, ev)
	s.logger.Trace("transition", s.logger.Args(
		"event", string(ev.Type),
		"loading", s.state.IsLoading,
		"results", len(s.state.Results),
		"queries", len(s.state.Queries),
	))
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.fn
	}
	return s.state.Clone(), listeners
}

func notify(listeners []Listener, snap State) {
	for _, fn := range listeners {
		fn(snap.Clone())
	}
}

// Submission tracks one accepted Submit call.
type Submission struct {
	query string
	task  *processor.Task

	done    chan struct{}
	outcome processor.Outcome
	applied bool
}

// Query returns the trimmed submitted text.
func (sub *Submission) Query() string { return sub.query }

// Done is closed once the submission's outcome has been applied to the
// store, or discarded after a reset.
func (sub *Submission) Done() <-chan struct{} { return sub.done }

// Wait blocks until the submission settles or ctx is done. A rejected
// outcome is reported as a ProcessingFailed error, a discarded one as
// SessionReset.
func (sub *Submission) Wait(ctx context.Context) (processor.Outcome, error) {
	select {
	case <-sub.done:
	case <-ctx.Done():
		return processor.Outcome{Status: processor.StatusPending}, ctx.Err()
	}
	if !sub.applied {
		return sub.outcome, qerrors.New(qerrors.SessionReset, "session was reset before the query resolved")
	}
	if sub.outcome.Status == processor.StatusRejected {
		return sub.outcome, qerrors.New(qerrors.ProcessingFailed, sub.outcome.Message)
	}
	return sub.outcome, nil
}

func (sub *Submission) finish(o processor.Outcome, applied bool) {
	sub.outcome = o
	sub.applied = applied
	close(sub.done)
}
