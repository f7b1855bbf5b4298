// Package config turns the module's loosely-typed configuration map into
// a validated, strongly-typed structure at the ingest boundary.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/installkit/netinstall/internal/groups"
)

// LocalSourceSentinel is the groupsUrl value selecting the embedded
// groups list instead of a remote fetch.
const LocalSourceSentinel = "local"

// DefaultSidebarLabel is used when the configuration carries no
// label.sidebar entry.
const DefaultSidebarLabel = "Package selection"

// ModuleConfig is the typed form of the module configuration map.
type ModuleConfig struct {
	// Required is parsed and stored but gates no status transition.
	Required bool

	// SidebarLabel and TitleLabel drive UI labels via the notification
	// collaborator. Empty means not configured.
	SidebarLabel string
	TitleLabel   string

	// GroupsURL is the scalar form of groupsUrl. It stays empty when the
	// key is absent or list-valued; only the scalar form triggers a load.
	GroupsURL string

	// GroupsURLs collects every groupsUrl string, scalar or list form,
	// in configuration order. It feeds the source sequence.
	GroupsURLs []string

	// Groups is the embedded record list, consulted when a groupsUrl
	// entry is the "local" sentinel.
	Groups []groups.Record
}

// ParseMap builds a ModuleConfig from a raw configuration map. Missing
// or wrong-typed recognized keys fall back to their zero values; unknown
// keys are ignored.
func ParseMap(m map[string]any) *ModuleConfig {
	cfg := &ModuleConfig{}

	if required, ok := m["required"].(bool); ok {
		cfg.Required = required
	}

	if label, ok := m["label"].(map[string]any); ok {
		if sidebar, ok := label["sidebar"].(string); ok {
			cfg.SidebarLabel = sidebar
		}
		if title, ok := label["title"].(string); ok {
			cfg.TitleLabel = title
		}
	}

	switch v := m["groupsUrl"].(type) {
	case string:
		cfg.GroupsURL = v
		cfg.GroupsURLs = []string{v}
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				cfg.GroupsURLs = append(cfg.GroupsURLs, s)
			}
		}
	case []string:
		cfg.GroupsURLs = append(cfg.GroupsURLs, v...)
	}

	cfg.Groups = embeddedGroups(m)

	return cfg
}

// embeddedGroups extracts the embedded record list from a raw
// configuration map. Non-mapping entries are dropped.
func embeddedGroups(m map[string]any) []groups.Record {
	raw, ok := m["groups"].([]any)
	if !ok {
		return nil
	}

	records := make([]groups.Record, 0, len(raw))
	for _, entry := range raw {
		switch rec := entry.(type) {
		case map[string]any:
			records = append(records, groups.Record(rec))
		case groups.Record:
			records = append(records, rec)
		}
	}
	return records
}

// LoadFile reads a module configuration file (YAML mapping) and parses
// it into a ModuleConfig.
func LoadFile(path string) (*ModuleConfig, error) {
	m, err := LoadRawFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMap(m), nil
}

// LoadRawFile reads a module configuration file and returns the raw
// configuration map, preserving unrecognized keys.
func LoadRawFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	// Resolve symlinks to prevent symlink attacks.
	// Note that this calls filepath.Clean internally.
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate symlinks: %w", err)
	}

	if !filepath.IsAbs(realPath) && !filepath.IsLocal(realPath) {
		return nil, fmt.Errorf("path is not local or contains invalid traversal: %s", path)
	}

	// #nosec G304 -- the path comes from operator configuration
	data, err := os.ReadFile(realPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	return m, nil
}
