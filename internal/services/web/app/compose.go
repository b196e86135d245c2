// Package app composes web modules into a single root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/sofealabs/impactboard/internal/services/web/module"
)

// Compose mounts every module on a root mux. Each module may claim several
// path prefixes; a prefix claimed twice is a composition error, surfaced at
// startup rather than by mux routing behavior.
func Compose(deps module.Dependencies, modules ...module.Module) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(deps)
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		if len(mount.Prefixes) == 0 {
			return nil, fmt.Errorf("mount module %q: at least one prefix is required", feature.ID())
		}
		for _, prefix := range mount.Prefixes {
			// Prefixes are registered verbatim: "/ais" stays an exact match
			// while "/awardee/" claims a subtree.
			prefix = strings.TrimSpace(prefix)
			if !strings.HasPrefix(prefix, "/") {
				return nil, fmt.Errorf("mount module %q: prefix %q must start with /", feature.ID(), prefix)
			}
			if previous, dup := seen[prefix]; dup {
				return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
			}
			seen[prefix] = feature.ID()
			root.Handle(prefix, mount.Handler)
		}
	}

	return root, nil
}
