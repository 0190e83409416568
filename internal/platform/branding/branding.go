// Package branding holds the website identity substituted into page copy.
package branding

import "strings"

// Placeholder tokens recognized in authored copy.
const (
	TokenName      = "{website.name}"
	TokenNameShort = "{websiteName}"
	TokenSlogan    = "{website.slogan}"
)

// Info is the single static website record.
type Info struct {
	Name    string
	Logo    string
	Slogan  string
	Favicon string
}

// Default returns the built-in website identity.
func Default() Info {
	return Info{
		Name:    "GameForge Studio",
		Logo:    "/logo.png",
		Slogan:  "Crafting worlds, one pixel at a time",
		Favicon: "/favicon.ico",
	}
}

// WithOverrides returns a copy of i where each non-blank argument replaces
// the corresponding field.
func (i Info) WithOverrides(name, logo, slogan, favicon string) Info {
	if v := strings.TrimSpace(name); v != "" {
		i.Name = v
	}
	if v := strings.TrimSpace(logo); v != "" {
		i.Logo = v
	}
	if v := strings.TrimSpace(slogan); v != "" {
		i.Slogan = v
	}
	if v := strings.TrimSpace(favicon); v != "" {
		i.Favicon = v
	}
	return i
}

// Expand substitutes website tokens in text. Empty text yields "".
func (i Info) Expand(text string) string {
	if text == "" {
		return ""
	}
	if !strings.Contains(text, "{") {
		return text
	}
	return strings.NewReplacer(
		TokenName, i.Name,
		TokenNameShort, i.Name,
		TokenSlogan, i.Slogan,
	).Replace(text)
}
