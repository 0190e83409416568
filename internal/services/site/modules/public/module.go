// Package public serves health checks and brand assets.
package public

import (
	"net/http"

	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	"github.com/louisbranch/gameforge/internal/services/site/static"
)

// Module provides unauthenticated utility routes.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires health and brand asset routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Healthz, handleHealth)
	mux.Handle(routepath.Favicon, brandAsset(deps, routepath.Favicon, deps.Brand.Favicon))
	mux.Handle(routepath.Logo, brandAsset(deps, routepath.Logo, deps.Brand.Logo))
	return module.Mount{
		Routes:  []string{routepath.Healthz, routepath.Favicon, routepath.Logo},
		Handler: mux,
	}, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed("GET, HEAD")(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

// brandAsset redirects to a configured asset location, or serves the
// embedded logo when the brand points at the route itself.
func brandAsset(deps module.Dependencies, route, configured string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD")(w, r)
			return
		}
		if configured != "" && configured != route {
			http.Redirect(w, r, configured, http.StatusFound)
			return
		}
		payload, err := static.FS.ReadFile("logo.svg")
		if err != nil {
			deps.Log().Printf("read logo err=%v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(payload)
	}
}
