// Package features serves the interactive demo pages: the code optimizers,
// the game makers and the poster generator.
package features

import (
	"net/http"

	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	"github.com/louisbranch/gameforge/internal/services/studio/optimizer"
	"github.com/louisbranch/gameforge/internal/services/studio/scaffold"
)

// Module serves feature demo pages.
type Module struct{}

// New returns the features module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "features" }

// Mount wires the optimizer, maker and poster routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	var routes []string
	handle := func(path string, h http.HandlerFunc) {
		mux.HandleFunc(path, h)
		routes = append(routes, path)
	}

	for _, o := range []optimizerPage{
		{path: routepath.Optimize2D, page: content.PageOptimizer2D, mode: optimizer.Mode2D, example: optimizer.Example2D},
		{path: routepath.Optimize3D, page: content.PageOptimizer3D, mode: optimizer.Mode3D},
	} {
		handle(o.path, o.handler(deps))
	}

	for _, m := range []makerPage{
		{path: routepath.Make2D, page: content.PageMake2D, kind: scaffold.Kind2D},
		{path: routepath.Make3D, page: content.PageMake3D, kind: scaffold.Kind3D},
	} {
		handle(m.path, m.handler(deps))
		handle(routepath.Download(m.path), m.download(deps))
	}

	p := posterPage{}
	handle(routepath.Poster, p.handler(deps))
	handle(routepath.PosterImage, p.image(deps))

	return module.Mount{Routes: routes, Handler: mux}, nil
}
