// Package requestmeta resolves request scheme and origin metadata.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only read when TrustForwardedProto is set, which
// should be the case only behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) matches(other origin) bool {
	if o.host == "" || other.host == "" {
		return false
	}
	if o.scheme != other.scheme || o.host != other.host {
		return false
	}
	return o.port != "" && o.port == other.port
}

// Scheme returns "http" or "https" for r under policy.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether r should be treated as HTTPS under policy.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// HasSameOriginProof reports whether the Origin header, or the Referer when
// Origin is absent, names the same scheme, host and port as r.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	target := requestOrigin(r, policy)
	if target.host == "" {
		return false
	}
	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return false
	}
	claimed, ok := parseOrigin(raw)
	if !ok {
		return false
	}
	return claimed.matches(target)
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	scheme := Scheme(r, policy)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	scheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if scheme == "" {
		return origin{}, false
	}
	port := strings.TrimSpace(parsed.Port())
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{
		scheme: scheme,
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   port,
	}, true
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
