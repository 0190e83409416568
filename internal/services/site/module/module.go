// Package module defines the feature contract used by site composition.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/gameforge/internal/platform/branding"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	"github.com/louisbranch/gameforge/internal/services/site/platform/requestmeta"
	"github.com/louisbranch/gameforge/internal/services/site/storage"
)

// Dependencies carries the shared state every module renders from.
type Dependencies struct {
	Content     *content.Catalog
	Brand       branding.Info
	Inbox       storage.InboxStore
	RequestMeta requestmeta.SchemePolicy
	Logger      *log.Logger
	Now         func() time.Time
}

// Log returns the configured logger or the standard logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Clock returns the current time.
func (d Dependencies) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Mount describes the exact paths a module serves and the handler for them.
type Mount struct {
	Routes  []string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
