// Package forms serves the contact and donate pages and records their
// submissions.
package forms

import (
	"net/http"

	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
)

// Module serves the contact and donate forms.
type Module struct{}

// New returns the forms module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "forms" }

// Mount wires the form routes and their aliases.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	routes := []string{
		routepath.Contact,
		routepath.ContactUs,
		routepath.ContactUsAlt,
		routepath.Donate,
		routepath.DonateTypo,
	}
	for _, path := range routes[:3] {
		mux.HandleFunc(path, h.contact)
	}
	for _, path := range routes[3:] {
		mux.HandleFunc(path, h.donate)
	}
	return module.Mount{Routes: routes, Handler: mux}, nil
}
