// Package fetch issues the single outstanding network request for a
// remote group-definition document.
//
// A Fetcher owns at most one in-flight Handle. That is a structural
// invariant: starting a new fetch while one is outstanding cancels the
// previous handle and joins its goroutine before the new request begins
// (replace policy), so a prior handle is never leaked and never delivers
// a late completion.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/installkit/netinstall/pkg/httpclient"
)

// ErrInvalidURL reports a URL on which no transport can be started. No
// handle is created in that case.
var ErrInvalidURL = errors.New("invalid groups document URL")

// ErrClosed reports a fetch attempt on a fetcher that has been torn down.
var ErrClosed = errors.New("fetcher is closed")

// CompletionFunc receives the outcome of a fetch, exactly once per
// started handle, outside the initiator's call stack. The handle's
// transport resources are already released when it runs.
type CompletionFunc func(h *Handle, body []byte, err error)

// Handle is the reference to one in-flight network operation.
type Handle struct {
	id  uuid.UUID
	url string

	cancel   context.CancelFunc
	done     chan struct{}
	finished atomic.Bool
}

// ID identifies the handle in logs.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// URL is the document location this handle is fetching.
func (h *Handle) URL() string {
	return h.url
}

// Finished reports whether the transport has delivered a result.
func (h *Handle) Finished() bool {
	return h.finished.Load()
}

// Release frees the handle's transport resources. Safe to call on any
// path, any number of times.
func (h *Handle) Release() {
	if h.cancel != nil {
		h.cancel()
	}
}

// Fetcher issues one outstanding GET with fixed transport options and
// reports completion exactly once per started handle.
type Fetcher struct {
	client httpclient.Client
	onDone CompletionFunc

	// mu guards the single-flight state. inflight is the only handle
	// allowed to deliver a completion.
	mu       sync.Mutex
	inflight *Handle
	closed   bool

	// wg tracks the fetch goroutine so Cancel and Close can join a
	// completion that is already being delivered.
	wg sync.WaitGroup
}

// New creates a Fetcher delivering completions to onDone.
func New(client httpclient.Client, onDone CompletionFunc) *Fetcher {
	return &Fetcher{
		client: client,
		onDone: onDone,
	}
}

// Start validates the URL and launches the fetch goroutine. It fails
// immediately, creating no handle, when the URL is structurally invalid
// or the fetcher is closed. Any previously outstanding handle is
// cancelled and joined first.
func (f *Fetcher) Start(ctx context.Context, rawURL string) (*Handle, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	// Detach a previous in-flight handle, if any, before starting the
	// replacement. Detaching suppresses its completion delivery.
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrClosed
	}
	prev := f.inflight
	f.inflight = nil
	f.mu.Unlock()
	if prev != nil {
		prev.Release()
		<-prev.done
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:     uuid.New(),
		url:    rawURL,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		cancel()
		close(h.done)
		return nil, ErrClosed
	}
	f.inflight = h
	f.mu.Unlock()

	logger := logr.FromContextOrDiscard(ctx)
	logger.V(1).Info("loading groups document", "url", rawURL, "handle", h.id.String())

	f.wg.Add(1)
	go f.run(fetchCtx, h)

	return h, nil
}

// run performs the transfer and delivers the completion if the handle is
// still current. The handle's resources are released on every path.
func (f *Fetcher) run(ctx context.Context, h *Handle) {
	defer f.wg.Done()
	defer close(h.done)
	defer h.Release()

	body, err := f.client.Get(ctx, h.url)
	h.finished.Store(true)

	f.mu.Lock()
	current := f.inflight == h && !f.closed
	if current {
		f.inflight = nil
	}
	f.mu.Unlock()

	// A detached handle (replaced or torn down) stays silent.
	if current {
		f.onDone(h, body, err)
	}
}

// Outstanding reports whether a fetch is currently in flight.
func (f *Fetcher) Outstanding() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inflight != nil
}

// Cancel aborts any outstanding fetch and joins its goroutine. The
// aborted handle delivers no completion.
func (f *Fetcher) Cancel() {
	f.mu.Lock()
	prev := f.inflight
	f.inflight = nil
	f.mu.Unlock()

	if prev != nil {
		prev.Release()
		<-prev.done
	}
	f.wg.Wait()
}

// Close cancels any outstanding fetch and rejects further Start calls.
// When Close returns, no completion callback will fire anymore.
func (f *Fetcher) Close() {
	f.mu.Lock()
	f.closed = true
	prev := f.inflight
	f.inflight = nil
	f.mu.Unlock()

	if prev != nil {
		prev.Release()
		<-prev.done
	}
	f.wg.Wait()
}

// validateURL rejects URLs on which no transport can be started.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%w: empty URL", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
	}
	return nil
}
