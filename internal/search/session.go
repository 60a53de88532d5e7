package search

import (
	"context"
	"sync"

	"github.com/danialhaz/gigmate/internal/types"
)

// State is the session controller's current phase.
type State string

const (
	StateIdle        State = "idle"
	StateSearching   State = "searching"
	StateReady       State = "ready"
	StateLoadingMore State = "loading_more"
	StateRefreshing  State = "refreshing"
	StateFailed      State = "failed"
)

// Searcher is the transport dependency of a session. Both the live API client
// and the demo fixtures satisfy it.
type Searcher interface {
	SearchCandidates(ctx context.Context, filters types.SearchFilters) (*types.CandidatePage, error)
}

// Session orchestrates one screen's search interaction: it owns the
// accumulated result set and the applied-jobs set, enforces at-most-one
// in-flight load-more, and discards stale resolutions so the latest submitted
// search always wins.
type Session struct {
	mu      sync.Mutex
	client  Searcher
	acc     Accumulator
	applied *AppliedSet
	state   State
	lastErr error
	gen     int  // bumped by every Search/Refresh; stale responses carry an older value
	loading bool // a load-more fetch is in flight
	logf    func(format string, args ...any)
}

// Option configures a Session.
type Option func(*Session)

// WithDiagnostics routes silent stale-result discards to a log function.
func WithDiagnostics(logf func(format string, args ...any)) Option {
	return func(s *Session) { s.logf = logf }
}

// NewSession creates a session bound to one search screen's lifetime.
func NewSession(client Searcher, opts ...Option) *Session {
	s := &Session{
		client:  client,
		applied: NewAppliedSet(),
		state:   StateIdle,
		logf:    func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search issues a fresh search for the given filters, replacing any
// accumulated results on success. A search submitted while another is in
// flight preempts it: the newest request wins and the stale resolution is
// discarded silently.
func (s *Session) Search(ctx context.Context, filters types.SearchFilters) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = StateSearching
	s.mu.Unlock()

	page, err := s.client.SearchCandidates(ctx, filters.WithPage(1))

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logf("discarding stale search result for filters %s", filters.Key())
		return nil
	}
	if err != nil {
		// Non-fatal: previously accumulated results stay visible.
		s.state = StateFailed
		s.lastErr = err
		return err
	}
	s.acc.Replace(filters, page)
	s.state = StateReady
	s.lastErr = nil
	return nil
}

// LoadMore fetches the next page. It is a no-op unless the session is Ready
// with more pages available, and while a fetch is already in flight repeated
// scroll triggers are ignored.
func (s *Session) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateReady || !s.acc.HasMore() || s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	gen := s.gen
	base := s.acc.Filters()
	next := base.WithPage(s.acc.CurrentPage() + 1)
	s.state = StateLoadingMore
	s.mu.Unlock()

	page, err := s.client.SearchCandidates(ctx, next)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if gen != s.gen {
		// A newer search preempted this page; its result no longer applies.
		s.logf("discarding stale page %d for filters %s", next.Page, base.Key())
		return nil
	}
	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return err
	}
	if !s.acc.Append(base, page) {
		s.logf("ignoring out-of-order page %d (current %d)", page.Page, s.acc.CurrentPage())
	}
	s.state = StateReady
	s.lastErr = nil
	return nil
}

// Refresh re-issues the last-known filters as a fresh search. Before any
// search has run it is a no-op.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.acc.CurrentPage() == 0 {
		s.mu.Unlock()
		return nil
	}
	s.gen++
	gen := s.gen
	filters := s.acc.Filters()
	s.state = StateRefreshing
	s.mu.Unlock()

	page, err := s.client.SearchCandidates(ctx, filters.WithPage(1))

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logf("discarding stale refresh for filters %s", filters.Key())
		return nil
	}
	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return err
	}
	s.acc.Replace(filters, page)
	s.state = StateReady
	s.lastErr = nil
	return nil
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the retryable error set by the last failure, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Results returns the accumulated entries in server order.
func (s *Session) Results() []types.CandidateResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.Results()
}

// Total returns the server-reported total result count.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.Total()
}

// CurrentPage returns the last merged page number.
func (s *Session) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.CurrentPage()
}

// TotalPages returns the page count for the current filter set.
func (s *Session) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.TotalPages()
}

// HasMore reports whether another page can be loaded.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.HasMore()
}

// Applied exposes the session-scoped set of applied job ids.
func (s *Session) Applied() *AppliedSet {
	return s.applied
}
