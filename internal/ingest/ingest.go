// Package ingest orchestrates the group-definition load: configuration
// parsing, source selection, fetch-or-embedded-load triggering, and
// publication to the module's collaborators.
package ingest

import (
	"context"
	"errors"
	"sync"

	"github.com/go-logr/logr"

	"github.com/installkit/netinstall/internal/config"
	"github.com/installkit/netinstall/internal/fetch"
	"github.com/installkit/netinstall/internal/groups"
	"github.com/installkit/netinstall/internal/metrics"
	"github.com/installkit/netinstall/internal/sources"
	"github.com/installkit/netinstall/internal/status"
	"github.com/installkit/netinstall/pkg/httpclient"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks -source=ingest.go GroupSink,KeyValue,Events

// GroupsURLKey is the shared key/value store key the raw groupsUrl
// scalar is published under. Kept for cross-module data passing even
// though nothing in this module reads it back.
const GroupsURLKey = "groupsUrl"

// GroupSink is the external selection model. Record ownership transfers
// on publication.
type GroupSink interface {
	// PublishGroups replaces the model's record sequence.
	PublishGroups(records []groups.Record)
}

// KeyValue is the shared process-wide key/value store collaborator.
type KeyValue interface {
	// Put stores a value under the given key.
	Put(key string, value any)
}

// Events receives the module's notifications.
type Events interface {
	// StatusChanged carries the user-facing description of the new
	// status; empty means no failure.
	StatusChanged(description string)

	// Ready signals that data (possibly empty) is available for the
	// model to render. Distinct from status: it only fires on paths
	// that yield usable data.
	Ready()

	// SidebarLabelChanged and TitleLabelChanged carry the configured
	// UI labels.
	SidebarLabelChanged(label string)
	TitleLabelChanged(label string)
}

// Loader drives one group-definition load attempt at a time.
type Loader struct {
	sink   GroupSink
	kv     KeyValue
	events Events

	fetcher *fetch.Fetcher

	// mu serializes all state below; completion callbacks and API
	// callers land on it, making the loader's logic effectively
	// single-threaded.
	mu      sync.Mutex
	logger  logr.Logger
	cfg     *config.ModuleConfig
	srcs    []sources.Source
	status  status.Status
	pending *fetch.Handle
}

// Option configures a Loader.
type Option func(*loaderOptions)

type loaderOptions struct {
	client httpclient.Client
}

// WithHTTPClient overrides the transport used for remote sources.
func WithHTTPClient(client httpclient.Client) Option {
	return func(o *loaderOptions) {
		o.client = client
	}
}

// New creates a Loader publishing to the given collaborators.
func New(sink GroupSink, kv KeyValue, events Events, opts ...Option) *Loader {
	o := &loaderOptions{
		client: httpclient.NewDefaultClient(0),
	}
	for _, opt := range opts {
		opt(o)
	}

	l := &Loader{
		sink:   sink,
		kv:     kv,
		events: events,
		logger: logr.Discard(),
	}
	l.fetcher = fetch.New(o.client, l.handleCompletion)
	return l
}

// Configure starts a fresh load attempt from a raw configuration map.
//
// It resets the status to Ok, publishes the raw groupsUrl scalar to the
// shared key/value store, resolves every configured source, and triggers
// exactly one load: the "local" sentinel publishes the embedded groups
// synchronously, any other scalar URL starts an asynchronous fetch, and
// an absent scalar triggers nothing.
func (l *Loader) Configure(ctx context.Context, configurationMap map[string]any) {
	// Abort a previous attempt before touching state; the replaced
	// fetch must not deliver into the new attempt.
	l.fetcher.Cancel()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger = logr.FromContextOrDiscard(ctx)
	l.cfg = config.ParseMap(configurationMap)
	l.srcs = sources.ResolveAll(l.cfg)
	l.pending = nil

	// Fresh attempt: back to Ok, with the usual notifications.
	l.setStatusLocked(status.Ok)
	l.events.SidebarLabelChanged(l.sidebarLabelLocked())
	l.events.TitleLabelChanged(l.cfg.TitleLabel)

	// Keep publishing groupsUrl to the shared store, even though it is
	// no longer used for in-module data passing.
	if l.cfg.GroupsURL != "" {
		l.kv.Put(GroupsURLKey, l.cfg.GroupsURL)
	}

	switch {
	case l.cfg.GroupsURL == config.LocalSourceSentinel:
		l.publishLocked(l.cfg.Groups)
	case l.cfg.GroupsURL != "":
		l.startFetchLocked(ctx, l.cfg.GroupsURL)
	}
}

// startFetchLocked begins the asynchronous load of a remote document.
func (l *Loader) startFetchLocked(ctx context.Context, url string) {
	h, err := l.fetcher.Start(ctx, url)
	if err != nil {
		l.logger.Error(err, "request failed immediately", "url", url)
		metrics.FetchTotal.WithLabelValues(metrics.OutcomeBadConfig).Inc()
		l.setStatusLocked(status.FailedBadConfiguration)
		return
	}
	l.pending = h
}

// handleCompletion receives the fetch outcome, outside the initiator's
// call stack.
func (l *Loader) handleCompletion(h *fetch.Handle, body []byte, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h != nil {
		defer h.Release()
	}

	// A completion with no pending request, or for an unfinished
	// handle, is a protocol violation.
	if l.pending == nil || h != l.pending || !h.Finished() {
		l.logger.Info("groups data completion delivered with no pending request")
		metrics.FetchTotal.WithLabelValues(metrics.OutcomeInternalError).Inc()
		l.setStatusLocked(status.FailedInternalError)
		return
	}
	l.pending = nil

	if err != nil {
		l.logger.Error(err, "unable to fetch netinstall package lists", "url", h.URL())
		metrics.FetchTotal.WithLabelValues(metrics.OutcomeNetworkError).Inc()
		l.setStatusLocked(status.FailedNetworkError)
		return
	}

	l.logger.V(1).Info("groups data received", "url", h.URL(), "bytes", len(body))
	metrics.FetchTotal.WithLabelValues(metrics.OutcomeOk).Inc()
	l.ingestDocumentLocked(body)
}

// ingestDocumentLocked parses a received document and publishes its
// records.
func (l *Loader) ingestDocumentLocked(body []byte) {
	records, err := groups.ParseDocument(body)
	if err != nil {
		if errors.Is(err, groups.ErrNoGroupList) {
			// Unusable shape: no records, no readiness, status keeps
			// its current value.
			l.logger.Info("groups data does not form a sequence")
			metrics.DocumentsParsed.WithLabelValues(metrics.ResultNoList).Inc()
			return
		}

		var parseErr *groups.ParseError
		if errors.As(err, &parseErr) {
			l.logger.Error(parseErr.Err, "malformed groups data",
				"payload", string(parseErr.Payload))
		} else {
			l.logger.Error(err, "malformed groups data")
		}
		metrics.DocumentsParsed.WithLabelValues(metrics.ResultBadData).Inc()
		l.setStatusLocked(status.FailedBadData)
		return
	}

	if len(records) == 0 {
		l.logger.Info("groups data was empty")
		metrics.DocumentsParsed.WithLabelValues(metrics.ResultEmptyList).Inc()
	} else {
		metrics.DocumentsParsed.WithLabelValues(metrics.ResultOk).Inc()
	}
	l.publishLocked(records)
}

// publishLocked hands the records to the model and fires readiness.
func (l *Loader) publishLocked(records []groups.Record) {
	l.sink.PublishGroups(records)
	metrics.RecordsPublished.Add(float64(len(records)))
	l.events.Ready()
}

// setStatusLocked transitions the status and notifies, unconditionally.
func (l *Loader) setStatusLocked(s status.Status) {
	l.status = s
	l.events.StatusChanged(s.Description())
}

// Status returns the outcome of the current load attempt.
func (l *Loader) Status() status.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Required reports the stored required flag. It is parsed and kept but
// gates no status transition.
func (l *Loader) Required() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg != nil && l.cfg.Required
}

// Sources returns the resolved source sequence in configuration order.
// The sequence is populated from list-valued groupsUrl entries as well,
// even though only the scalar form triggers a load.
func (l *Loader) Sources() []sources.Source {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.srcs
}

// SidebarLabel returns the configured sidebar label, or its default.
func (l *Loader) SidebarLabel() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sidebarLabelLocked()
}

func (l *Loader) sidebarLabelLocked() string {
	if l.cfg != nil && l.cfg.SidebarLabel != "" {
		return l.cfg.SidebarLabel
	}
	return config.DefaultSidebarLabel
}

// TitleLabel returns the configured title label; empty when unset.
func (l *Loader) TitleLabel() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg == nil {
		return ""
	}
	return l.cfg.TitleLabel
}

// Outstanding reports whether a fetch is in flight.
func (l *Loader) Outstanding() bool {
	return l.fetcher.Outstanding()
}

// Close tears the loader down, aborting any outstanding fetch. No
// completion callback fires after Close returns.
func (l *Loader) Close() {
	l.fetcher.Close()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = nil
}
