package features

import (
	"net/http"

	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	sitei18n "github.com/louisbranch/gameforge/internal/services/site/platform/i18n"
	"github.com/louisbranch/gameforge/internal/services/site/platform/pagerender"
	"github.com/louisbranch/gameforge/internal/services/site/platform/weberror"
	"github.com/louisbranch/gameforge/internal/services/site/templates"
)

// featureView resolves the request language and the page bundle.
func featureView(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page content.Page) (templates.FeatureData, bool) {
	view := pagerender.ResolveView(w, r, deps)
	bundle, _, err := content.Decode[content.Feature](deps.Content, view.Lang, page)
	if err != nil {
		deps.Log().Printf("decode page=%s lang=%s err=%v", page, view.Lang, err)
		weberror.WriteAppError(w, r, deps, http.StatusInternalServerError)
		return templates.FeatureData{}, false
	}
	return templates.FeatureData{View: view, Page: bundle, Action: r.URL.Path}, true
}

// writeAssetError answers a non-HTML endpoint with a localized plain-text
// error of the given kind.
func writeAssetError(w http.ResponseWriter, r *http.Request, deps module.Dependencies, kind apperrors.Kind, key string) {
	loc, _ := sitei18n.ResolveLocalizer(w, r, deps.RequestMeta)
	httpx.WriteError(w, apperrors.E(kind, loc.Sprintf(key)))
}

func writeFeature(w http.ResponseWriter, r *http.Request, deps module.Dependencies, tmpl string, status int, data templates.FeatureData) {
	err := pagerender.WritePage(w, r, deps, data.View, pagerender.Page{
		Title:       data.Page.Header.Title,
		Description: data.Page.Header.Description,
		StatusCode:  status,
		Body:        templates.Page(tmpl, data),
	})
	if err != nil {
		deps.Log().Printf("render page=%s lang=%s err=%v", tmpl, data.Lang, err)
		weberror.WriteAppError(w, r, deps, http.StatusInternalServerError)
	}
}
