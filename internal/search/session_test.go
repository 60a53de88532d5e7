package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danialhaz/gigmate/internal/api"
	"github.com/danialhaz/gigmate/internal/types"
)

// fakeSearcher scripts transport behaviour per call.
type fakeSearcher struct {
	mu    sync.Mutex
	calls []types.SearchFilters
	fn    func(filters types.SearchFilters) (*types.CandidatePage, error)
}

func (f *fakeSearcher) SearchCandidates(_ context.Context, filters types.SearchFilters) (*types.CandidatePage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, filters)
	fn := f.fn
	f.mu.Unlock()
	return fn(filters)
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSession_SearchSuccess(t *testing.T) {
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		return makePage(filters.Page, 45, 20, 20), nil
	}}
	session := NewSession(searcher)

	require.NoError(t, session.Search(context.Background(), reactFilters()))

	assert.Equal(t, StateReady, session.State())
	assert.Equal(t, 45, session.Total())
	assert.Equal(t, 1, session.CurrentPage())
	assert.Equal(t, 3, session.TotalPages())
	assert.Len(t, session.Results(), 20)
}

func TestSession_SearchFailureKeepsPreviousResults(t *testing.T) {
	failing := false
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		if failing {
			return nil, &api.Error{Kind: api.KindNetwork, Message: "timeout"}
		}
		return makePage(filters.Page, 45, 20, 20), nil
	}}
	session := NewSession(searcher)

	require.NoError(t, session.Search(context.Background(), reactFilters()))
	failing = true

	err := session.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, session.State())
	assert.True(t, api.IsRetryable(session.Err()))
	// Failure is non-fatal: the accumulated results stay visible.
	assert.Len(t, session.Results(), 20)
}

func TestSession_StaleSearchDiscarded(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		if filters.SkillNames[0] == "slow" {
			close(started)
			<-gate
			return makePage(1, 99, 20, 20), nil
		}
		return makePage(1, 7, 20, 7), nil
	}}
	session := NewSession(searcher)

	slow := types.SearchFilters{SkillNames: []string{"slow"}, Page: 1, PageSize: 20}
	fast := types.SearchFilters{SkillNames: []string{"fast"}, Page: 1, PageSize: 20}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = session.Search(context.Background(), slow)
	}()
	<-started

	// The user changes filters before the first search resolves.
	require.NoError(t, session.Search(context.Background(), fast))
	require.Len(t, session.Results(), 7)

	// The slow response finally arrives and must be dropped on the floor.
	close(gate)
	wg.Wait()

	assert.Equal(t, StateReady, session.State())
	assert.Equal(t, 7, session.Total())
	assert.Len(t, session.Results(), 7)
}

func TestSession_LoadMoreAppends(t *testing.T) {
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		return makePage(filters.Page, 45, 20, 20), nil
	}}
	session := NewSession(searcher)
	require.NoError(t, session.Search(context.Background(), reactFilters()))

	require.NoError(t, session.LoadMore(context.Background()))
	assert.Equal(t, 2, session.CurrentPage())
	assert.Len(t, session.Results(), 40)
	assert.True(t, session.HasMore())
}

func TestSession_LoadMoreStopsAtLastPage(t *testing.T) {
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		count := 20
		if filters.Page == 3 {
			count = 5
		}
		return makePage(filters.Page, 45, 20, count), nil
	}}
	session := NewSession(searcher)
	require.NoError(t, session.Search(context.Background(), reactFilters()))
	require.NoError(t, session.LoadMore(context.Background()))
	require.NoError(t, session.LoadMore(context.Background()))

	assert.Equal(t, 3, session.CurrentPage())
	assert.False(t, session.HasMore())
	calls := searcher.callCount()

	// Past the last page the trigger is a no-op.
	require.NoError(t, session.LoadMore(context.Background()))
	assert.Equal(t, calls, searcher.callCount())
}

func TestSession_RapidLoadMoreIssuesOneRequest(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		if filters.Page == 2 {
			close(started)
			<-gate
		}
		return makePage(filters.Page, 45, 20, 20), nil
	}}
	session := NewSession(searcher)
	require.NoError(t, session.Search(context.Background(), reactFilters()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = session.LoadMore(context.Background())
	}()
	<-started

	// Repeated scroll-threshold triggers while the fetch is in flight.
	require.NoError(t, session.LoadMore(context.Background()))
	require.NoError(t, session.LoadMore(context.Background()))
	assert.Equal(t, 2, searcher.callCount(), "only the first trigger reaches the transport")

	close(gate)
	wg.Wait()
	assert.Len(t, session.Results(), 40)
}

func TestSession_LoadMoreFailurePreservesPartialResults(t *testing.T) {
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		if filters.Page > 1 {
			return nil, &api.Error{Kind: api.KindServer, Message: "server error"}
		}
		return makePage(filters.Page, 45, 20, 20), nil
	}}
	session := NewSession(searcher)
	require.NoError(t, session.Search(context.Background(), reactFilters()))

	err := session.LoadMore(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, session.State())
	assert.Len(t, session.Results(), 20)
}

func TestSession_RefreshReusesLastFilters(t *testing.T) {
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		return makePage(filters.Page, 45, 20, 20), nil
	}}
	session := NewSession(searcher)
	require.NoError(t, session.Search(context.Background(), reactFilters()))
	require.NoError(t, session.LoadMore(context.Background()))

	require.NoError(t, session.Refresh(context.Background()))

	searcher.mu.Lock()
	last := searcher.calls[len(searcher.calls)-1]
	searcher.mu.Unlock()
	assert.Equal(t, 1, last.Page, "refresh restarts at page 1")
	wantFilters := reactFilters()
	assert.Equal(t, wantFilters.Key(), last.Key())
	assert.Len(t, session.Results(), 20, "refresh replaces accumulated pages")
}

func TestSession_RefreshBeforeSearchIsNoop(t *testing.T) {
	searcher := &fakeSearcher{fn: func(types.SearchFilters) (*types.CandidatePage, error) {
		t.Fatal("no request expected")
		return nil, nil
	}}
	session := NewSession(searcher)

	require.NoError(t, session.Refresh(context.Background()))
	assert.Equal(t, StateIdle, session.State())
}

func TestSession_DiagnosticsLoggedForStaleResults(t *testing.T) {
	var mu sync.Mutex
	var logged []string
	logf := func(format string, args ...any) {
		mu.Lock()
		logged = append(logged, format)
		mu.Unlock()
	}

	gate := make(chan struct{})
	started := make(chan struct{})
	searcher := &fakeSearcher{fn: func(filters types.SearchFilters) (*types.CandidatePage, error) {
		if filters.SkillNames[0] == "slow" {
			close(started)
			<-gate
		}
		return makePage(1, 10, 20, 10), nil
	}}
	session := NewSession(searcher, WithDiagnostics(logf))

	go func() {
		_ = session.Search(context.Background(), types.SearchFilters{SkillNames: []string{"slow"}, Page: 1, PageSize: 20})
	}()
	<-started
	require.NoError(t, session.Search(context.Background(), types.SearchFilters{SkillNames: []string{"fast"}, Page: 1, PageSize: 20}))
	close(gate)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(logged) == 1
	}, time.Second, 10*time.Millisecond)
}
