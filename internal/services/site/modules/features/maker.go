package features

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/platform/weberror"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	"github.com/louisbranch/gameforge/internal/services/studio/scaffold"
)

type makerPage struct {
	path string
	page content.Page
	kind scaffold.Kind
}

func (m makerPage) handler(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			data, ok := featureView(w, r, deps, m.page)
			if !ok {
				return
			}
			writeFeature(w, r, deps, "maker", http.StatusOK, data)
		case http.MethodPost:
			m.generate(w, r, deps)
		default:
			httpx.MethodNotAllowed("GET, HEAD, POST")(w, r)
		}
	}
}

func (m makerPage) generate(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, deps, apperrors.Wrap(apperrors.KindInvalidInput, "errors.bad_request", err))
		return
	}
	data, ok := featureView(w, r, deps, m.page)
	if !ok {
		return
	}
	data.Input = r.PostForm.Get("prompt")

	out, err := scaffold.GenerateContext(r.Context(), m.kind, data.Input)
	if errors.Is(err, scaffold.ErrEmptyPrompt) {
		data.Message = data.T("features.prompt.required")
		writeFeature(w, r, deps, "maker", http.StatusBadRequest, data)
		return
	}
	if err != nil {
		deps.Log().Printf("scaffold kind=%s err=%v", m.kind, err)
		weberror.WriteModuleError(w, r, deps, err)
		return
	}
	data.Submitted = true
	data.Output = out.Code
	data.DownloadURL = routepath.Download(m.path) + "?" + url.Values{"prompt": {out.Prompt}}.Encode()
	writeFeature(w, r, deps, "maker", http.StatusOK, data)
}

func (m makerPage) download(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD")(w, r)
			return
		}
		out, err := scaffold.GenerateContext(r.Context(), m.kind, r.URL.Query().Get("prompt"))
		if errors.Is(err, scaffold.ErrEmptyPrompt) {
			writeAssetError(w, r, deps, apperrors.KindInvalidInput, "features.prompt.required")
			return
		}
		if err != nil {
			weberror.WriteModuleError(w, r, deps, err)
			return
		}
		if err := httpx.WriteAttachment(w, "text/plain; charset=utf-8", out.Filename, []byte(out.Code)); err != nil {
			deps.Log().Printf("write scaffold download err=%v", err)
		}
	}
}
