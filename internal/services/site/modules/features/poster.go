package features

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/gameforge/internal/platform/timeouts"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
	"github.com/louisbranch/gameforge/internal/services/site/platform/httpx"
	"github.com/louisbranch/gameforge/internal/services/site/platform/weberror"
	"github.com/louisbranch/gameforge/internal/services/site/routepath"
	"github.com/louisbranch/gameforge/internal/services/studio/poster"
)

type posterPage struct{}

func (posterPage) handler(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			data, ok := featureView(w, r, deps, content.PagePoster)
			if !ok {
				return
			}
			writeFeature(w, r, deps, "poster", http.StatusOK, data)
		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				weberror.WriteModuleError(w, r, deps, apperrors.Wrap(apperrors.KindInvalidInput, "errors.bad_request", err))
				return
			}
			data, ok := featureView(w, r, deps, content.PagePoster)
			if !ok {
				return
			}
			data.Input = r.PostForm.Get("prompt")
			prompt := strings.TrimSpace(data.Input)
			if prompt == "" {
				data.Message = data.T("features.prompt.required")
				writeFeature(w, r, deps, "poster", http.StatusBadRequest, data)
				return
			}
			data.Submitted = true
			data.PosterURL = routepath.PosterImage + "?" + url.Values{"prompt": {prompt}}.Encode()
			data.PosterName = poster.Filename(prompt)
			writeFeature(w, r, deps, "poster", http.StatusOK, data)
		default:
			httpx.MethodNotAllowed("GET, HEAD, POST")(w, r)
		}
	}
}

func (posterPage) image(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD")(w, r)
			return
		}
		prompt := strings.TrimSpace(r.URL.Query().Get("prompt"))
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Render)
		defer cancel()

		img, err := poster.Render(ctx, prompt)
		if errors.Is(err, poster.ErrEmptyPrompt) {
			writeAssetError(w, r, deps, apperrors.KindInvalidInput, "features.prompt.required")
			return
		}
		if err != nil {
			deps.Log().Printf("render poster err=%v", err)
			weberror.WriteModuleError(w, r, deps, apperrors.Wrap(apperrors.KindUnavailable, "errors.server.body", err))
			return
		}
		var buf bytes.Buffer
		if err := poster.EncodePNG(&buf, img); err != nil {
			weberror.WriteModuleError(w, r, deps, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": poster.Filename(prompt)}))
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := w.Write(buf.Bytes()); err != nil {
			deps.Log().Printf("write poster err=%v", err)
		}
	}
}
