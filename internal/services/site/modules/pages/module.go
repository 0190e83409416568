// Package pages serves the content pages rendered straight from locale
// bundles.
package pages

import (
	"net/http"

	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/platform/pagerender"
	"github.com/louisbranch/gameforge/internal/services/site/platform/weberror"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	"github.com/louisbranch/gameforge/internal/services/site/templates"
)

// Module serves content pages.
type Module struct{}

// New returns the content pages module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires every content route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	routes := []struct {
		paths   []string
		handler http.HandlerFunc
	}{
		{[]string{routepath.Home}, page(deps, content.PageHome, "home", func(content.Home) string { return "" }, homeDescription)},
		{[]string{routepath.About}, page(deps, content.PageAbout, "about", func(p content.About) string { return p.Hero.Title }, func(p content.About) string { return p.Hero.Subtitle })},
		{[]string{routepath.Services}, page(deps, content.PageServices, "services", func(p content.Services) string { return p.Hero.Title }, func(p content.Services) string { return p.Hero.Subtitle })},
		{[]string{routepath.Blogs}, page(deps, content.PageBlogs, "blogs", func(p content.Blogs) string { return p.Hero.Title }, func(p content.Blogs) string { return p.Hero.Subtitle })},
		{[]string{routepath.Media}, page(deps, content.PageMedia, "media", func(p content.Media) string { return p.Hero.Title }, func(p content.Media) string { return p.Hero.Subtitle })},
		{[]string{routepath.Team}, page(deps, content.PageTeam, "team", func(p content.Team) string { return p.Team.Title }, nil)},
		{[]string{routepath.Privacy, routepath.Preservation}, page(deps, content.PagePrivacy, "privacy", func(p content.Privacy) string { return p.Hero.Title }, func(p content.Privacy) string { return p.Hero.Subtitle })},
		{[]string{routepath.Cookies}, page(deps, content.PageCookies, "cookies", func(p content.Cookies) string { return p.Title }, func(p content.Cookies) string { return p.Subtitle })},
		{[]string{routepath.Access, routepath.Terms}, page(deps, content.PageAccess, "access", func(p content.Access) string { return p.Hero.Title }, func(p content.Access) string { return p.Hero.Subtitle })},
	}

	mux := http.NewServeMux()
	var patterns []string
	for _, route := range routes {
		for _, path := range route.paths {
			pattern := path
			if path == routepath.Home {
				pattern = "/{$}"
			}
			mux.Handle(pattern, route.handler)
			patterns = append(patterns, pattern)
		}
	}
	return module.Mount{Routes: patterns, Handler: mux}, nil
}

func homeDescription(p content.Home) string {
	return p.Page1.Slogan
}

// page renders one bundle through its template. title and description
// pick the page metadata from the decoded bundle.
func page[T any](deps module.Dependencies, name content.Page, tmpl string, title func(T) string, description func(T) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD")(w, r)
			return
		}
		view := pagerender.ResolveView(w, r, deps)
		data, _, err := content.Decode[T](deps.Content, view.Lang, name)
		if err != nil {
			deps.Log().Printf("decode page=%s lang=%s err=%v", name, view.Lang, err)
			weberror.WriteAppError(w, r, deps, http.StatusInternalServerError)
			return
		}
		out := pagerender.Page{
			Title: title(data),
			Body:  templates.Page(tmpl, templates.PageData[T]{View: view, Page: data}),
		}
		if description != nil {
			out.Description = description(data)
		}
		if err := pagerender.WritePage(w, r, deps, view, out); err != nil {
			deps.Log().Printf("render page=%s lang=%s err=%v", name, view.Lang, err)
			weberror.WriteAppError(w, r, deps, http.StatusInternalServerError)
		}
	}
}
