// Package sources resolves configuration entries into concrete origins
// for group-definition data.
package sources

import (
	"github.com/installkit/netinstall/internal/config"
	"github.com/installkit/netinstall/internal/groups"
)

// Source is one configured origin for group data: either an embedded
// record list or a remote URL. Exactly one side is populated; a local
// source never carries a URL and a remote source never carries embedded
// records.
type Source struct {
	// URL is the remote document location. Empty for local sources. It
	// is not validated here; validation happens at fetch time.
	URL string

	// Groups is the embedded record list. Nil for remote sources.
	Groups []groups.Record

	local bool
}

// Local reports whether the source carries embedded data.
func (s Source) Local() bool {
	return s.local
}

// Resolve turns one groupsUrl entry into a Source. The "local" sentinel
// selects the configuration's embedded groups list (which may be empty);
// any other value becomes a remote source wrapping that URL string.
func Resolve(cfg *config.ModuleConfig, urlOrSentinel string) Source {
	if urlOrSentinel == config.LocalSourceSentinel {
		return Source{Groups: cfg.Groups, local: true}
	}
	return Source{URL: urlOrSentinel}
}

// ResolveAll resolves every configured groupsUrl entry, preserving
// configuration order.
func ResolveAll(cfg *config.ModuleConfig) []Source {
	if len(cfg.GroupsURLs) == 0 {
		return nil
	}

	resolved := make([]Source, 0, len(cfg.GroupsURLs))
	for _, entry := range cfg.GroupsURLs {
		resolved = append(resolved, Resolve(cfg, entry))
	}
	return resolved
}
