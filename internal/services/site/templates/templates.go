// Package templates renders the site shell and pages.
//
// Pages are html/template definitions exposed as templ components, so the
// layout can compose any templ.Component as its children.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/gameforge/internal/platform/branding"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	sitei18n "github.com/louisbranch/gameforge/internal/services/site/platform/i18n"
)

//go:embed *.gohtml
var files embed.FS

var set = template.Must(template.New("site").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"odd":   func(i int) bool { return i%2 == 1 },
	"lines": splitLines,
	"hero": func(v View, hero content.Hero) heroPart {
		return heroPart{View: v, Hero: hero}
	},
	"cta": func(v View, cta content.CTA) ctaPart {
		return ctaPart{View: v, CTA: cta}
	},
	"items": func(v View, items []content.Item) itemsPart {
		return itemsPart{View: v, Items: items}
	},
	"members": func(v View, members []content.Member) membersPart {
		return membersPart{View: v, Members: members}
	},
}).ParseFS(files, "*.gohtml"))

// View carries per-request rendering state shared by every template.
type View struct {
	Lang    string
	Brand   branding.Info
	Printer sitei18n.Localizer
}

// T translates a chrome message key. Missing printers echo the key.
func (v View) T(key string, args ...any) string {
	if v.Printer == nil {
		return key
	}
	return v.Printer.Sprintf(key, args...)
}

// X substitutes website info tokens in bundle text.
func (v View) X(text string) string {
	return v.Brand.Expand(text)
}

// Shell is the header and footer wrapped around every page.
type Shell struct {
	View
	Title          string
	Description    string
	Path           string
	Year           int
	Header         content.Header
	Footer         content.Footer
	Languages      []sitei18n.Option
	ActiveLanguage sitei18n.Option
}

// IsActive reports whether the nav target matches the current path.
func (s Shell) IsActive(to string) bool {
	if to == "/" {
		return s.Path == "/"
	}
	return s.Path == to || strings.HasPrefix(s.Path, strings.TrimSuffix(to, "/")+"/")
}

type heroPart struct {
	View View
	Hero content.Hero
}

type ctaPart struct {
	View View
	CTA  content.CTA
}

type itemsPart struct {
	View  View
	Items []content.Item
}

type membersPart struct {
	View    View
	Members []content.Member
}

type layoutData struct {
	Shell
	Body template.HTML
}

// Layout renders the shell around the children component from ctx.
func Layout(shell Shell) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := templ.ToGoHTML(ctx, templ.GetChildren(ctx))
		if err != nil {
			return fmt.Errorf("render page body: %w", err)
		}
		return set.ExecuteTemplate(w, "layout", layoutData{Shell: shell, Body: body})
	})
}

// Page returns the named page template bound to data.
func Page(name string, data any) templ.Component {
	tmpl := set.Lookup(name)
	if tmpl == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(tmpl, data)
}

// Has reports whether a page template is defined.
func Has(name string) bool {
	return set.Lookup(name) != nil
}

func splitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// PageData binds a decoded bundle to the request view.
type PageData[T any] struct {
	View
	Page T
}

// FormData is a form page with the submitted values and field errors.
type FormData[T any] struct {
	View
	Page   T
	Action string
	Values map[string]string
	Errors map[string]string
	Sent   bool
}

// Value returns the submitted value for field.
func (f FormData[T]) Value(field string) string {
	return f.Values[field]
}

// Error returns the localized error for field.
func (f FormData[T]) Error(field string) string {
	return f.Errors[field]
}

// HasErrors reports whether any field failed validation.
func (f FormData[T]) HasErrors() bool {
	return len(f.Errors) > 0
}

// FeatureData is an optimizer, game maker or poster page.
type FeatureData struct {
	View
	Page        content.Feature
	Action      string
	Input       string
	Output      string
	Notes       []string
	Submitted   bool
	Message     string
	ExampleURL  string
	DownloadURL string
	PosterURL   string
	PosterName  string
}

// ErrorData is a localized error page.
type ErrorData struct {
	View
	Status int
	Title  string
	Body   string
}
