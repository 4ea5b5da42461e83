package loader

import (
	"context"
	"errors"
	"sync"

	"condo-cli/logger"
)

// ErrSuperseded reports that a newer date selection was issued while
// this load was in flight. The stale result must be discarded, never
// rendered.
var ErrSuperseded = errors.New("selection superseded by a newer date")

// Session serializes date selections with last-request-wins semantics.
// Issuing a new date cancels the in-flight load; a load that finishes
// after being superseded returns ErrSuperseded regardless of arrival
// order. Winning is keyed by an explicit generation token claimed at
// issue time, not by the scheduling order of whoever waits.
type Session struct {
	backend Backend
	scope   string

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewSession(backend Backend, scope string) *Session {
	return &Session{backend: backend, scope: scope}
}

// Pending is one issued date selection. Wait may run on any goroutine;
// the generation token was already claimed when Issue returned.
type Pending struct {
	session *Session
	date    string
	gen     uint64
	ctx     context.Context
	cancel  context.CancelFunc
}

// Issue claims the next generation token and cancels the in-flight
// load. It never blocks, so callers can issue in the order requests
// arrive and hand the load itself to a goroutine.
func (s *Session) Issue(ctx context.Context, date string) *Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	return &Pending{
		session: s,
		date:    date,
		gen:     s.gen,
		ctx:     loadCtx,
		cancel:  cancel,
	}
}

// Wait performs the load and reports ErrSuperseded if a newer date was
// issued in the meantime, even when this load finished last.
func (p *Pending) Wait() (*Snapshot, error) {
	snap, err := LoadDay(p.ctx, p.session.backend, p.date, p.session.scope)

	s := p.session
	s.mu.Lock()
	current := s.gen == p.gen
	if current {
		s.cancel = nil
	}
	s.mu.Unlock()
	p.cancel()

	if !current {
		logger.Debug("discarding superseded load", "date", p.date, "generation", p.gen)
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Select issues and waits in one call.
func (s *Session) Select(ctx context.Context, date string) (*Snapshot, error) {
	return s.Issue(ctx, date).Wait()
}
