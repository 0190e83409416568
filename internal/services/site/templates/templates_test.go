package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/gameforge/internal/platform/branding"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	sitei18n "github.com/louisbranch/gameforge/internal/services/site/platform/i18n"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func testView(t *testing.T) View {
	t.Helper()
	return View{
		Lang:    "en",
		Brand:   branding.Default().WithOverrides("Pixel Hut", "", "", ""),
		Printer: message.NewPrinter(language.English),
	}
}

func testShell(t *testing.T, path string) Shell {
	t.Helper()
	catalog, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	header, _, err := content.Decode[content.Header](catalog, "en", content.PageHeader)
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	footer, _, err := content.Decode[content.Footer](catalog, "en", content.PageFooter)
	if err != nil {
		t.Fatalf("decode footer: %v", err)
	}
	options := sitei18n.Options("en", path, "")
	return Shell{
		View:           testView(t),
		Title:          "Title",
		Path:           path,
		Year:           2026,
		Header:         header,
		Footer:         footer,
		Languages:      options,
		ActiveLanguage: sitei18n.ActiveOption(options),
	}
}

func render(t *testing.T, shell Shell, body templ.Component) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := Layout(shell).Render(templ.WithChildren(context.Background(), body), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func TestLayoutWrapsChildrenInShell(t *testing.T) {
	t.Parallel()

	shell := testShell(t, "/2dgames")
	body := templ.Raw(`<p id="body-marker">hello</p>`)
	doc := render(t, shell, body)

	if got := findAll(doc, func(n *html.Node) bool { return attr(n, "id") == "body-marker" }); len(got) != 1 {
		t.Fatalf("body markers = %d, want 1", len(got))
	}
	htmlNodes := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "html" })
	if len(htmlNodes) != 1 || attr(htmlNodes[0], "lang") != "en" {
		t.Fatalf("html lang = %q, want %q", attr(htmlNodes[0], "lang"), "en")
	}

	active := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && attr(n, "aria-current") == "page"
	})
	if len(active) != 1 || attr(active[0], "href") != "/2dgames" {
		t.Fatalf("active nav links = %d, want /2dgames only", len(active))
	}

	logos := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "img" })
	if len(logos) == 0 || attr(logos[0], "alt") != "Pixel Hut logo" {
		t.Fatalf("logo alt = %q, want %q", attr(logos[0], "alt"), "Pixel Hut logo")
	}

	langLinks := findAll(doc, func(n *html.Node) bool { return attr(n, "hreflang") != "" })
	if len(langLinks) != 4 {
		t.Fatalf("language links = %d, want 4", len(langLinks))
	}
	if got := attr(langLinks[2], "href"); got != "/2dgames?lang=ja" {
		t.Fatalf("ja link = %q, want %q", got, "/2dgames?lang=ja")
	}
}

func TestPagesRenderBundleText(t *testing.T) {
	t.Parallel()

	catalog, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	view := testView(t)

	about, _, err := content.Decode[content.About](catalog, "en", content.PageAbout)
	if err != nil {
		t.Fatalf("decode about: %v", err)
	}
	doc := render(t, testShell(t, "/about"), Page("about", PageData[content.About]{View: view, Page: about}))
	h1 := findAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "h1" })
	if len(h1) != 1 {
		t.Fatalf("h1 count = %d, want 1", len(h1))
	}
	if got, want := text(h1[0]), view.X(about.Hero.Title); got != want {
		t.Fatalf("h1 = %q, want %q", got, want)
	}
	if strings.Contains(text(doc), "{website.name}") {
		t.Fatal("rendered page still contains {website.name}")
	}
}

func TestEveryPageTemplateIsDefined(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"layout", "home", "about", "services", "blogs", "media", "team", "contact", "donate",
		"privacy", "cookies", "access", "optimizer", "maker", "poster", "error",
	} {
		if !Has(name) {
			t.Fatalf("template %q is not defined", name)
		}
	}
}

func TestPageUnknownTemplateFails(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Page("missing", nil).Render(context.Background(), &buf); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestFormDataHelpers(t *testing.T) {
	t.Parallel()

	form := FormData[content.Contact]{
		Values: map[string]string{"name": "Ada"},
		Errors: map[string]string{"email": "bad"},
	}
	if form.Value("name") != "Ada" || form.Value("email") != "" {
		t.Fatalf("Value() mismatch: %+v", form.Values)
	}
	if form.Error("email") != "bad" || !form.HasErrors() {
		t.Fatalf("Error() mismatch: %+v", form.Errors)
	}
	if (FormData[content.Contact]{}).HasErrors() {
		t.Fatal("empty form HasErrors() = true, want false")
	}
}

func TestViewTranslateAndExpand(t *testing.T) {
	t.Parallel()

	view := testView(t)
	if got := view.T("errors.back_home"); got != "Back to home" {
		t.Fatalf("T() = %q, want %q", got, "Back to home")
	}
	if got := (View{}).T("errors.back_home"); got != "errors.back_home" {
		t.Fatalf("T() without printer = %q, want key", got)
	}
	if got := view.X("Welcome to {website.name}"); got != "Welcome to Pixel Hut" {
		t.Fatalf("X() = %q", got)
	}
	if got := view.X(""); got != "" {
		t.Fatalf("X(empty) = %q, want empty", got)
	}
}

func TestShellIsActive(t *testing.T) {
	t.Parallel()

	shell := Shell{Path: "/contact"}
	if !shell.IsActive("/contact") || shell.IsActive("/") || shell.IsActive("/about") {
		t.Fatal("IsActive() mismatch for /contact")
	}
	if !(Shell{Path: "/"}).IsActive("/") {
		t.Fatal("IsActive(/) on home = false, want true")
	}
}
