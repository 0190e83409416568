// Package content holds the authored page copy of the site, one JSON
// bundle per language and page, and resolves a request language to the
// bundle that should render.
package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	platformi18n "github.com/louisbranch/gameforge/internal/platform/i18n"
)

// BaseLanguage must define every page; other languages fall back to it.
const BaseLanguage = "en"

// Page names one content bundle.
type Page string

const (
	PageHeader      Page = "header"
	PageFooter      Page = "footer"
	PageHome        Page = "home"
	PageAbout       Page = "about"
	PageServices    Page = "services"
	PageBlogs       Page = "blogs"
	PageMedia       Page = "media"
	PageTeam        Page = "team"
	PageContact     Page = "contact"
	PageDonate      Page = "donate"
	PagePrivacy     Page = "privacy"
	PageCookies     Page = "cookies"
	PageAccess      Page = "access"
	PageOptimizer2D Page = "optimizer2d"
	PageOptimizer3D Page = "optimizer3d"
	PageMake2D      Page = "make2d"
	PageMake3D      Page = "make3d"
	PagePoster      Page = "poster"
)

// ErrUnknownPage is returned for pages outside the known set.
var ErrUnknownPage = errors.New("unknown content page")

// pageShapes maps each page to a constructor of the struct its JSON must
// decode into.
var pageShapes = map[Page]func() any{
	PageHeader:      func() any { return new(Header) },
	PageFooter:      func() any { return new(Footer) },
	PageHome:        func() any { return new(Home) },
	PageAbout:       func() any { return new(About) },
	PageServices:    func() any { return new(Services) },
	PageBlogs:       func() any { return new(Blogs) },
	PageMedia:       func() any { return new(Media) },
	PageTeam:        func() any { return new(Team) },
	PageContact:     func() any { return new(Contact) },
	PageDonate:      func() any { return new(Donate) },
	PagePrivacy:     func() any { return new(Privacy) },
	PageCookies:     func() any { return new(Cookies) },
	PageAccess:      func() any { return new(Access) },
	PageOptimizer2D: func() any { return new(Feature) },
	PageOptimizer3D: func() any { return new(Feature) },
	PageMake2D:      func() any { return new(Feature) },
	PageMake3D:      func() any { return new(Feature) },
	PagePoster:      func() any { return new(Feature) },
}

// Pages returns every known page, sorted.
func Pages() []Page {
	return slices.Sorted(maps.Keys(pageShapes))
}

//go:embed locales/*/*.json
var embeddedFS embed.FS

// Catalog is the immutable set of loaded bundles.
type Catalog struct {
	bundles map[string]map[Page][]byte
}

// Bundle is the resolved copy of one page.
type Bundle struct {
	// Lang is the language whose copy was selected.
	Lang string
	Page Page
	// Fallback is set when Lang differs from the requested language.
	Fallback bool

	data []byte
}

// Decode unmarshals the bundle into target.
func (b Bundle) Decode(target any) error {
	if len(b.data) == 0 {
		return fmt.Errorf("decode %s/%s: empty bundle", b.Lang, b.Page)
	}
	if err := json.Unmarshal(b.data, target); err != nil {
		return fmt.Errorf("decode %s/%s: %w", b.Lang, b.Page, err)
	}
	return nil
}

// LoadEmbedded loads the bundles compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(embeddedFS)
}

// Load reads locales/<lang>/<page>.json from fsys. Every file must be a
// known page for a supported language and must decode strictly into the
// page struct; the base language must define all pages.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob content bundles: %w", err)
	}
	catalog := &Catalog{bundles: map[string]map[Page][]byte{}}
	for _, p := range paths {
		lang := path.Base(path.Dir(p))
		page := Page(strings.TrimSuffix(path.Base(p), ".json"))
		if _, ok := platformi18n.ParseTag(lang); !ok || lang != strings.ToLower(lang) {
			return nil, fmt.Errorf("content bundle %s: unsupported language %q", p, lang)
		}
		shape, ok := pageShapes[page]
		if !ok {
			return nil, fmt.Errorf("content bundle %s: %w %q", p, ErrUnknownPage, page)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read content bundle %s: %w", p, err)
		}
		if err := decodeStrict(data, shape()); err != nil {
			return nil, fmt.Errorf("content bundle %s: %w", p, err)
		}
		if catalog.bundles[lang] == nil {
			catalog.bundles[lang] = map[Page][]byte{}
		}
		catalog.bundles[lang][page] = data
	}

	var missing []string
	for _, page := range Pages() {
		if _, ok := catalog.bundles[BaseLanguage][page]; !ok {
			missing = append(missing, string(page))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("base language %s is missing pages: %s", BaseLanguage, strings.Join(missing, ", "))
	}
	return catalog, nil
}

func decodeStrict(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("decode json: trailing data")
	}
	return nil
}

// Resolve selects the bundle for page in lang. Region variants fold onto
// their base language; unknown or untranslated languages get the base
// language bundle with Fallback set.
func (c *Catalog) Resolve(lang string, page Page) (Bundle, error) {
	if c == nil {
		return Bundle{}, errors.New("content catalog is not loaded")
	}
	if _, ok := pageShapes[page]; !ok {
		return Bundle{}, fmt.Errorf("%w %q", ErrUnknownPage, page)
	}
	code := ""
	if tag, ok := platformi18n.ParseTag(lang); ok {
		code = platformi18n.Code(tag)
	}
	if data, ok := c.bundles[code][page]; ok {
		return Bundle{Lang: code, Page: page, data: data}, nil
	}
	return Bundle{Lang: BaseLanguage, Page: page, Fallback: code != BaseLanguage, data: c.bundles[BaseLanguage][page]}, nil
}

// Languages returns the languages that have at least one bundle, sorted.
func (c *Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c.bundles))
}

// Fallbacks lists, for every supported language, the pages that resolve
// to the base language.
func (c *Catalog) Fallbacks() map[string][]Page {
	out := map[string][]Page{}
	for _, language := range platformi18n.Languages() {
		if language.Code == BaseLanguage {
			continue
		}
		for _, page := range Pages() {
			if _, ok := c.bundles[language.Code][page]; !ok {
				out[language.Code] = append(out[language.Code], page)
			}
		}
	}
	return out
}

// Decode resolves page for lang and decodes it into a T, returning the
// language that served it.
func Decode[T any](c *Catalog, lang string, page Page) (T, string, error) {
	var out T
	bundle, err := c.Resolve(lang, page)
	if err != nil {
		return out, "", err
	}
	if err := bundle.Decode(&out); err != nil {
		return out, "", err
	}
	return out, bundle.Lang, nil
}
