// Package i18n resolves the request language and builds language selector
// options for the site shell.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/gameforge/internal/platform/i18n"
	_ "github.com/louisbranch/gameforge/internal/platform/i18n/catalog"
	"github.com/louisbranch/gameforge/internal/services/site/platform/requestmeta"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "gf_lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Option is one entry of the language selector.
type Option struct {
	Code   string
	Name   string
	Flag   string
	URL    string
	Active bool
}

// ResolveTag determines the best language tag for the request: the lang
// query parameter, then the cookie, then Accept-Language, then the default.
// An unsupported lang parameter selects the default. The bool reports
// whether the query parameter selected a supported tag.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}

	if r.URL != nil {
		if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
			if tag, ok := platformi18n.ParseTag(langValue); ok {
				return tag, true
			}
			return platformi18n.DefaultTag(), false
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}

	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response. The
// cookie is marked Secure on HTTPS requests.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag, secure bool) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    platformi18n.Code(tag),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persists an explicit
// selection and returns a printer with the language code. policy decides
// whether the request arrived over HTTPS.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist && !cookieMatches(r, tag) {
		SetLanguageCookie(w, tag, requestmeta.IsHTTPS(r, policy))
	}
	return message.NewPrinter(tag), platformi18n.Code(tag)
}

func cookieMatches(r *http.Request, tag language.Tag) bool {
	if r == nil {
		return false
	}
	cookie, err := r.Cookie(LangCookieName)
	if err != nil {
		return false
	}
	return strings.TrimSpace(cookie.Value) == platformi18n.Code(tag)
}

// LanguageURL returns path with the lang parameter set, keeping other
// query values.
func LanguageURL(path string, rawQuery string, code string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, code)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// Options returns the selector entries for the current request path.
func Options(active string, path string, rawQuery string) []Option {
	languages := platformi18n.Languages()
	options := make([]Option, 0, len(languages))
	for _, lang := range languages {
		options = append(options, Option{
			Code:   lang.Code,
			Name:   lang.Name,
			Flag:   lang.Flag,
			URL:    LanguageURL(path, rawQuery, lang.Code),
			Active: lang.Code == active,
		})
	}
	return options
}

// ActiveOption returns the active entry, or the first one.
func ActiveOption(options []Option) Option {
	for _, option := range options {
		if option.Active {
			return option
		}
	}
	if len(options) == 0 {
		return Option{}
	}
	return options[0]
}
