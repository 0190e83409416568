// Package i18n defines the languages the site is published in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language describes one supported language for selectors.
type Language struct {
	Code string
	Name string
	Flag string
}

var (
	defaultTag = language.English

	// Display order of the language selector.
	supportedTags = []language.Tag{
		language.English,
		language.Chinese,
		language.Japanese,
		language.Spanish,
	}

	languages = []Language{
		{Code: "en", Name: "English", Flag: "🇺🇸"},
		{Code: "zh", Name: "中文", Flag: "🇨🇳"},
		{Code: "ja", Name: "日本語", Flag: "🇯🇵"},
		{Code: "es", Name: "Español", Flag: "🇪🇸"},
	}

	matcher = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns supported tags in display order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Languages returns selector entries in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseTag parses value and folds it onto a supported base language, so
// "es-MX" and "zh-Hant-TW" resolve to es and zh.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return language.Und, false
	}
	for _, supported := range supportedTags {
		if supportedBase, _ := supported.Base(); supportedBase == base {
			return supported, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedTags[index]
}

// Code returns the short code ("en", "zh", ...) for a supported tag.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
