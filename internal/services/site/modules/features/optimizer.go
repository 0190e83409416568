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
	"github.com/louisbranch/gameforge/internal/services/studio/optimizer"
)

type optimizerPage struct {
	path    string
	page    content.Page
	mode    optimizer.Mode
	example string
}

func (o optimizerPage) handler(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			o.show(w, r, deps)
		case http.MethodPost:
			o.optimize(w, r, deps)
		default:
			httpx.MethodNotAllowed("GET, HEAD, POST")(w, r)
		}
	}
}

func (o optimizerPage) exampleURL() string {
	if o.example == "" {
		return ""
	}
	return o.path + "?" + url.Values{"example": {"1"}}.Encode()
}

func (o optimizerPage) show(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	data, ok := featureView(w, r, deps, o.page)
	if !ok {
		return
	}
	data.ExampleURL = o.exampleURL()
	if o.example != "" && r.URL.Query().Get("example") == "1" {
		data.Input = o.example
	}
	writeFeature(w, r, deps, "optimizer", http.StatusOK, data)
}

func (o optimizerPage) optimize(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, deps, apperrors.Wrap(apperrors.KindInvalidInput, "errors.bad_request", err))
		return
	}
	data, ok := featureView(w, r, deps, o.page)
	if !ok {
		return
	}
	data.ExampleURL = o.exampleURL()
	data.Input = r.PostForm.Get("code")

	result, err := optimizer.Run(r.Context(), o.mode, data.Input)
	switch {
	case errors.Is(err, optimizer.ErrEmptyInput):
		data.Message = data.T("features.optimizer.empty")
	case err != nil:
		deps.Log().Printf("optimize mode=%s err=%v", o.mode, err)
		weberror.WriteModuleError(w, r, deps, err)
		return
	default:
		data.Submitted = true
		data.Output = result.Code
		for _, note := range result.Notes {
			data.Notes = append(data.Notes, data.T("features.optimizer.note."+note))
		}
	}
	writeFeature(w, r, deps, "optimizer", http.StatusOK, data)
}
