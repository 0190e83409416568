// Package pagerender centralizes site page rendering behavior.
package pagerender

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/gameforge/internal/services/site/platform/i18n"
	"github.com/louisbranch/gameforge/internal/services/site/templates"
)

// Page describes one rendered page response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Body        templ.Component
}

// ResolveView resolves the request language and returns the shared view
// state. An explicit ?lang= selection is persisted as a cookie.
func ResolveView(w http.ResponseWriter, r *http.Request, deps module.Dependencies) templates.View {
	printer, lang := sitei18n.ResolveLocalizer(w, r, deps.RequestMeta)
	return templates.View{Lang: lang, Brand: deps.Brand, Printer: printer}
}

// Shell builds the header and footer state for the request.
func Shell(r *http.Request, deps module.Dependencies, view templates.View, page Page) (templates.Shell, error) {
	header, _, err := content.Decode[content.Header](deps.Content, view.Lang, content.PageHeader)
	if err != nil {
		return templates.Shell{}, fmt.Errorf("decode header: %w", err)
	}
	footer, _, err := content.Decode[content.Footer](deps.Content, view.Lang, content.PageFooter)
	if err != nil {
		return templates.Shell{}, fmt.Errorf("decode footer: %w", err)
	}
	path, query := "/", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	options := sitei18n.Options(view.Lang, path, query)
	return templates.Shell{
		View:           view,
		Title:          Title(view, page.Title),
		Description:    view.X(page.Description),
		Path:           path,
		Year:           deps.Clock().Year(),
		Header:         header,
		Footer:         footer,
		Languages:      options,
		ActiveLanguage: sitei18n.ActiveOption(options),
	}, nil
}

// Title joins a page title with the website name.
func Title(view templates.View, title string) string {
	title = strings.TrimSpace(view.X(title))
	name := strings.TrimSpace(view.Brand.Name)
	switch {
	case title == "":
		return name
	case name == "" || title == name:
		return title
	default:
		return title + " | " + name
	}
}

// WritePage renders page inside the site shell. Nothing is written when
// rendering fails, so callers can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, view templates.View, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	shell, err := Shell(r, deps, view, page)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := templates.Layout(shell).Render(ctx, &buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}
