package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/installkit/netinstall/internal/groups"
)

func TestModel_EmptySnapshot(t *testing.T) {
	t.Parallel()

	snap := New().Snapshot()
	assert.Empty(t, snap.Records)
	assert.Empty(t, snap.StatusDescription)
	assert.False(t, snap.Ready)
}

func TestModel_TracksNotifications(t *testing.T) {
	t.Parallel()

	m := New()
	m.PublishGroups([]groups.Record{{"name": "base"}})
	m.StatusChanged("")
	m.Ready()
	m.SidebarLabelChanged("Package selection")
	m.TitleLabelChanged("Netinstall")

	snap := m.Snapshot()
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "base", snap.Records[0]["name"])
	assert.True(t, snap.Ready)
	assert.Equal(t, "Package selection", snap.SidebarLabel)
	assert.Equal(t, "Netinstall", snap.TitleLabel)
}

func TestModel_SnapshotSliceIsDetached(t *testing.T) {
	t.Parallel()

	m := New()
	m.PublishGroups([]groups.Record{{"name": "base"}})

	snap := m.Snapshot()
	snap.Records = append(snap.Records, groups.Record{"name": "extra"})

	require.Len(t, m.Snapshot().Records, 1)
}
