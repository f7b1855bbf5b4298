// Package model provides the reference in-memory implementation of the
// external group selection model and notification sink.
package model

import (
	"sync"

	"github.com/installkit/netinstall/internal/groups"
)

// Snapshot is a point-in-time view of the model for read-only consumers.
type Snapshot struct {
	Records           []groups.Record
	StatusDescription string
	Ready             bool
	SidebarLabel      string
	TitleLabel        string
}

// Model holds the last published record sequence and notification state.
// It implements the loader's GroupSink and Events collaborator
// interfaces.
type Model struct {
	mu                sync.RWMutex
	records           []groups.Record
	statusDescription string
	ready             bool
	sidebarLabel      string
	titleLabel        string
}

// New creates an empty model.
func New() *Model {
	return &Model{}
}

// PublishGroups replaces the record sequence. Ownership of the records
// transfers to the model.
func (m *Model) PublishGroups(records []groups.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = records
}

// StatusChanged records the user-facing status description.
func (m *Model) StatusChanged(description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusDescription = description
}

// Ready marks data as available for rendering.
func (m *Model) Ready() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = true
}

// SidebarLabelChanged records the sidebar label.
func (m *Model) SidebarLabelChanged(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sidebarLabel = label
}

// TitleLabelChanged records the title label.
func (m *Model) TitleLabelChanged(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.titleLabel = label
}

// Snapshot returns a consistent copy of the model state.
func (m *Model) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]groups.Record, len(m.records))
	copy(records, m.records)

	return Snapshot{
		Records:           records,
		StatusDescription: m.statusDescription,
		Ready:             m.ready,
		SidebarLabel:      m.sidebarLabel,
		TitleLabel:        m.titleLabel,
	}
}
