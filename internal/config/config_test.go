package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/installkit/netinstall/internal/groups"
)

func TestParseMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    map[string]any
		expected *ModuleConfig
	}{
		{
			name:     "empty map yields defaults",
			input:    map[string]any{},
			expected: &ModuleConfig{},
		},
		{
			name:  "required defaults to false on wrong type",
			input: map[string]any{"required": "yes"},
			expected: &ModuleConfig{
				Required: false,
			},
		},
		{
			name:  "required parsed",
			input: map[string]any{"required": true},
			expected: &ModuleConfig{
				Required: true,
			},
		},
		{
			name: "labels parsed from submap",
			input: map[string]any{
				"label": map[string]any{
					"sidebar": "Netinstall",
					"title":   "Package groups",
				},
			},
			expected: &ModuleConfig{
				SidebarLabel: "Netinstall",
				TitleLabel:   "Package groups",
			},
		},
		{
			name:  "scalar groupsUrl sets both scalar and sequence forms",
			input: map[string]any{"groupsUrl": "https://example.com/netinstall.yaml"},
			expected: &ModuleConfig{
				GroupsURL:  "https://example.com/netinstall.yaml",
				GroupsURLs: []string{"https://example.com/netinstall.yaml"},
			},
		},
		{
			name: "list groupsUrl leaves the scalar form empty",
			input: map[string]any{
				"groupsUrl": []any{"https://a.example/groups.yaml", "local"},
			},
			expected: &ModuleConfig{
				GroupsURL:  "",
				GroupsURLs: []string{"https://a.example/groups.yaml", "local"},
			},
		},
		{
			name: "non-string list entries are dropped",
			input: map[string]any{
				"groupsUrl": []any{"https://a.example/groups.yaml", 7},
			},
			expected: &ModuleConfig{
				GroupsURLs: []string{"https://a.example/groups.yaml"},
			},
		},
		{
			name: "embedded groups parsed",
			input: map[string]any{
				"groupsUrl": "local",
				"groups": []any{
					map[string]any{"name": "base", "packages": []any{"vim"}},
				},
			},
			expected: &ModuleConfig{
				GroupsURL:  "local",
				GroupsURLs: []string{"local"},
				Groups: []groups.Record{
					{"name": "base", "packages": []any{"vim"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseMap(tt.input))
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "netinstall.conf")
	content := `---
required: true
label:
  sidebar: "Software"
groupsUrl: local
groups:
  - name: base
    critical: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Required)
	assert.Equal(t, "Software", cfg.SidebarLabel)
	assert.Equal(t, "local", cfg.GroupsURL)
	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, "base", cfg.Groups[0]["name"])
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.conf"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.conf")
		require.NoError(t, os.WriteFile(path, []byte("groups: [\n"), 0600))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
