// Package app composes site modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	module "github.com/louisbranch/gameforge/internal/services/site/module"
	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/platform/requestmeta"
	"github.com/louisbranch/gameforge/internal/services/site/platform/weberror"
)

// ComposeInput carries the modules and their shared dependencies.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composition is the composed root handler and every mounted route.
type Composition struct {
	Handler http.Handler
	Routes  []string
}

// Composer wires module mounts into a root mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules. Unknown paths render the
// localized not-found page.
func (Composer) Compose(input ComposeInput) (Composition, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	guard := requireSameOrigin(input.Dependencies)

	for _, feature := range input.Modules {
		if feature == nil {
			return Composition{}, fmt.Errorf("module is nil")
		}
		mount, err := feature.Mount(input.Dependencies)
		if err != nil {
			return Composition{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		if mount.Handler == nil {
			return Composition{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
		}
		if len(mount.Routes) == 0 {
			return Composition{}, fmt.Errorf("mount module %q: routes are required", feature.ID())
		}
		handler := guard(mount.Handler)
		for _, route := range mount.Routes {
			route = strings.TrimSpace(route)
			if !strings.HasPrefix(route, "/") {
				return Composition{}, fmt.Errorf("module %q route %q must start with /", feature.ID(), route)
			}
			if previous, ok := seen[route]; ok {
				return Composition{}, fmt.Errorf("module %q duplicates route %q owned by module %q", feature.ID(), route, previous)
			}
			seen[route] = feature.ID()
			root.Handle(route, handler)
		}
	}
	if _, ok := seen["/"]; !ok {
		root.Handle("/", weberror.NotFound(input.Dependencies))
	}

	routes := make([]string, 0, len(seen))
	for route := range seen {
		routes = append(routes, route)
	}
	slices.Sort(routes)
	return Composition{Handler: root, Routes: routes}, nil
}

// requireSameOrigin rejects form submissions that do not carry an Origin or
// Referer matching the request host.
func requireSameOrigin(deps module.Dependencies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !httpx.IsMutationMethod(r) || requestmeta.HasSameOriginProof(r, deps.RequestMeta) {
				next.ServeHTTP(w, r)
				return
			}
			deps.Log().Printf("cross-origin request rejected method=%s path=%s", r.Method, r.URL.Path)
			weberror.WriteModuleError(w, r, deps, apperrors.EK(apperrors.KindForbidden, "errors.forbidden", "missing same-origin proof"))
		})
	}
}
