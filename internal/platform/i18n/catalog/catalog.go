// Package catalog loads the site chrome messages (error pages, form
// feedback, feature buttons) and registers them with x/text/message.
//
// Files live at locales/<locale>/<namespace>.yaml and use a restricted,
// line-oriented YAML subset:
//
//	locale: "en"
//	namespace: "forms"
//	messages:
//	  "forms.error.required": "This field is required."
//
// Every key must be prefixed by its namespace.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Bundle holds messages keyed by locale, then by message key.
type Bundle struct {
	locales    map[string]map[string]string
	namespaces map[string][]string
}

type catalogFile struct {
	locale    string
	namespace string
	messages  map[string]string
}

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/*/*.yaml file in catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	bundle := &Bundle{
		locales:    map[string]map[string]string{},
		namespaces: map[string][]string{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		file, err := parseCatalogFile(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, file); err != nil {
			return nil, err
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	wantLocale := path.Base(path.Dir(p))
	wantNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if file.locale != wantLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, file.locale, wantLocale)
	}
	if file.namespace != wantNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match filename %q", p, file.namespace, wantNamespace)
	}
	if slices.Contains(b.namespaces[file.locale], file.namespace) {
		return fmt.Errorf("catalog %s: namespace %q already defined", p, file.namespace)
	}

	messages, ok := b.locales[file.locale]
	if !ok {
		messages = map[string]string{}
		b.locales[file.locale] = messages
	}
	prefix := file.namespace + "."
	for key, value := range file.messages {
		if !strings.HasPrefix(key, prefix) {
			return fmt.Errorf("catalog %s: key %q must start with %q", p, key, prefix)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q", p, key)
		}
		messages[key] = value
	}
	b.namespaces[file.locale] = append(b.namespaces[file.locale], file.namespace)
	return nil
}

// Register makes every message available to message.NewPrinter. Locales
// missing a key get the base-locale text so printers never echo raw keys.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	base := b.locales[BaseLocale]
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for _, key := range slices.Sorted(maps.Keys(base)) {
			value, ok := b.locales[locale][key]
			if !ok {
				value = base[key]
			}
			if err := message.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %s: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether locale has at least one catalog file.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the loaded locales, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.locales))
}

// Namespaces returns the sorted namespaces defined for locale.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(slices.Values(b.namespaces[strings.TrimSpace(locale)]))
}

// Message returns the value for key in locale, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if value, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// MissingKeys lists base-locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	var missing []string
	for key := range b.locales[BaseLocale] {
		if _, ok := b.locales[locale][key]; !ok {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	return missing
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

func parseCatalogFile(data string) (catalogFile, error) {
	out := catalogFile{messages: map[string]string{}}
	inMessages := false
	for n, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var err error
		switch {
		case strings.HasPrefix(line, "locale:"):
			out.locale, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "locale:")))
		case strings.HasPrefix(line, "namespace:"):
			out.namespace, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "namespace:")))
		case line == "messages:":
			inMessages = true
		case inMessages:
			var key, value string
			key, value, err = parseMessageEntry(line)
			if err == nil {
				if _, dup := out.messages[key]; dup {
					err = fmt.Errorf("duplicate key %q", key)
				}
				out.messages[key] = value
			}
		default:
			err = fmt.Errorf("unexpected line %q", line)
		}
		if err != nil {
			return catalogFile{}, fmt.Errorf("line %d: %w", n+1, err)
		}
	}
	switch {
	case out.locale == "":
		return catalogFile{}, fmt.Errorf("missing locale")
	case out.namespace == "":
		return catalogFile{}, fmt.Errorf("missing namespace")
	case len(out.messages) == 0:
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

// parseMessageEntry splits `"key": "value"` where both sides are Go-quoted.
func parseMessageEntry(line string) (string, string, error) {
	keyToken, rest, err := splitQuotedToken(line)
	if err != nil {
		return "", "", err
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(rest), ":")
	if !ok {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := strconv.Unquote(strings.TrimSpace(rest))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("message key cannot be blank")
	}
	return key, value, nil
}

func splitQuotedToken(line string) (string, string, error) {
	if !strings.HasPrefix(line, `"`) {
		return "", "", fmt.Errorf("expected quoted token")
	}
	escaped := false
	for i := 1; i < len(line); i++ {
		switch {
		case escaped:
			escaped = false
		case line[i] == '\\':
			escaped = true
		case line[i] == '"':
			return line[:i+1], line[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated quoted token")
}
