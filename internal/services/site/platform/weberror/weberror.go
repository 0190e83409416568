// Package weberror renders localized error responses inside the site shell.
package weberror

import (
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/gameforge/internal/services/site/module"
	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
	sitei18n "github.com/louisbranch/gameforge/internal/services/site/platform/i18n"
	"github.com/louisbranch/gameforge/internal/services/site/platform/pagerender"
	"github.com/louisbranch/gameforge/internal/services/site/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

func pageCopy(view templates.View, statusCode int) (string, string) {
	if statusCode == http.StatusNotFound {
		return view.T("errors.not_found.title"), view.T("errors.not_found.body")
	}
	return view.T("errors.server.title"), view.T("errors.server.body")
}

// WriteAppError writes a localized error page for 404 and 5xx statuses.
func WriteAppError(w http.ResponseWriter, r *http.Request, deps module.Dependencies, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	view := pagerender.ResolveView(w, r, deps)
	title, body := pageCopy(view, statusCode)
	page := pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Body: templates.Page("error", templates.ErrorData{
			View:   view,
			Status: statusCode,
			Title:  title,
			Body:   body,
		}),
	}
	if err := pagerender.WritePage(w, r, deps, view, page); err != nil {
		log.Printf("render error page status=%d err=%v", statusCode, err)
		http.Error(w, title, statusCode)
	}
}

// WriteModuleError writes err as a localized page or plain localized text.
func WriteModuleError(w http.ResponseWriter, r *http.Request, deps module.Dependencies, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		path := ""
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		deps.Log().Printf("module error kind=%s status=%d path=%s err=%v", apperrors.KindOf(err), statusCode, path, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, deps, statusCode)
		return
	}
	loc, _ := sitei18n.ResolveLocalizer(w, r, deps.RequestMeta)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// NotFound renders the localized 404 page.
func NotFound(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, deps, http.StatusNotFound)
	})
}
