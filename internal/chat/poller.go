// Package chat provides the periodic message refresh used while a conversation
// screen is visible. The original fixed-interval refresh is reframed as a task
// with an explicit start/stop handle bound to the screen's lifetime, so
// navigating away never leaks a timer.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danialhaz/gigmate/internal/types"
)

// DefaultInterval is how often the poller refreshes when unconfigured.
const DefaultInterval = 5 * time.Second

// Fetcher fetches messages newer than afterID; a nil afterID means from the
// beginning. The live API client's Messages method satisfies it.
type Fetcher interface {
	Messages(ctx context.Context, conversationID uuid.UUID, afterID *uuid.UUID) ([]types.Message, error)
}

// Poller periodically delta-fetches one conversation's messages.
type Poller struct {
	fetcher        Fetcher
	conversationID uuid.UUID
	interval       time.Duration
	onMessages     func([]types.Message)
	onError        func(error)

	mu      sync.Mutex
	lastID  *uuid.UUID
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Options configures a Poller. OnMessages receives only new messages, in
// server order. OnError is optional; fetch failures do not stop the poller.
type Options struct {
	Interval   time.Duration
	OnMessages func([]types.Message)
	OnError    func(error)
}

// NewPoller creates a poller for one conversation.
func NewPoller(fetcher Fetcher, conversationID uuid.UUID, opts Options) *Poller {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	onMessages := opts.OnMessages
	if onMessages == nil {
		onMessages = func([]types.Message) {}
	}
	onError := opts.OnError
	if onError == nil {
		onError = func(error) {}
	}
	return &Poller{
		fetcher:        fetcher,
		conversationID: conversationID,
		interval:       interval,
		onMessages:     onMessages,
		onError:        onError,
	}
}

// Start begins polling: one immediate fetch, then one per interval. Calling
// Start on a running poller is a no-op. The poller also stops when ctx is
// cancelled.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	p.running = true
	go p.loop(ctx)
}

// Stop cancels polling and waits for the loop to exit. Stop is idempotent and
// safe to call on a never-started poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.running = false
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	p.mu.Lock()
	after := p.lastID
	p.mu.Unlock()

	messages, err := p.fetcher.Messages(ctx, p.conversationID, after)
	if err != nil {
		if ctx.Err() == nil {
			p.onError(err)
		}
		return
	}
	if len(messages) == 0 {
		return
	}

	last := messages[len(messages)-1].ID
	p.mu.Lock()
	p.lastID = &last
	p.mu.Unlock()

	p.onMessages(messages)
}
