package features

import (
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/louisbranch/gameforge/internal/platform/branding"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	module "github.com/louisbranch/gameforge/internal/services/site/module"
	"golang.org/x/net/html"
)

func mountFeatures(t *testing.T) http.Handler {
	t.Helper()
	catalog, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	mount, err := New().Mount(module.Dependencies{
		Content: catalog,
		Brand:   branding.Default(),
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// attrValues returns the unescaped values of attr on every tag element.
func attrValues(t *testing.T, body, tag, attr string) []string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var values []string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != tag {
			continue
		}
		for _, a := range n.Attr {
			if a.Key == attr {
				values = append(values, a.Val)
			}
		}
	}
	return values
}

func TestMountRoutes(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	want := []string{
		"/refine2dgames", "/refine3dgames",
		"/2dgames", "/2dgames/download",
		"/3dgames", "/3dgames/download",
		"/gamecovers", "/gamecovers/poster.png",
	}
	if len(mount.Routes) != len(want) {
		t.Fatalf("routes = %v, want %v", mount.Routes, want)
	}
	for i := range want {
		if mount.Routes[i] != want[i] {
			t.Fatalf("routes[%d] = %q, want %q", i, mount.Routes[i], want[i])
		}
	}
}

func TestOptimizerPages(t *testing.T) {
	t.Parallel()

	h := mountFeatures(t)

	t.Run("example loads for 2d", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/refine2dgames?example=1", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if !strings.Contains(rr.Body.String(), "Basic platformer game") {
			t.Fatal("expected example code in textarea")
		}
	})

	t.Run("3d has no example", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/refine3dgames?example=1", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if strings.Contains(rr.Body.String(), "Load example") {
			t.Fatal("3d optimizer should not offer an example link")
		}
	})

	t.Run("post 2d rewrites var", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/refine2dgames", url.Values{"code": {"var x = 1;"}}))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		body := rr.Body.String()
		for _, want := range []string{"let x = 1;", "Replaced var declarations with let.", "Wrapped the game in error handling."} {
			if !strings.Contains(body, want) {
				t.Fatalf("body missing %q", want)
			}
		}
	})

	t.Run("post 3d uses const", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/refine3dgames", url.Values{"code": {"var scene = new THREE.Scene();"}}))
		body := rr.Body.String()
		for _, want := range []string{"const scene", "Replaced var declarations with const."} {
			if !strings.Contains(body, want) {
				t.Fatalf("body missing %q", want)
			}
		}
	})

	t.Run("blank input is a no-op", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/refine2dgames", url.Values{"code": {"   "}}))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if !strings.Contains(rr.Body.String(), "Paste some code first") {
			t.Fatal("expected empty input message")
		}
	})

	t.Run("delete rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/refine2dgames", nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
		}
	})
}

func TestMakerPages(t *testing.T) {
	t.Parallel()

	h := mountFeatures(t)

	t.Run("post renders scaffold with download link", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/3dgames", url.Values{"prompt": {"space   racer"}}))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		body := rr.Body.String()
		if !strings.Contains(body, "// 3D Game based on: space racer") {
			t.Fatal("expected generated header comment")
		}
		if !slices.Contains(attrValues(t, body, "a", "href"), "/3dgames/download?prompt=space+racer") {
			t.Fatal("expected download link")
		}
	})

	t.Run("blank prompt is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/2dgames", url.Values{"prompt": {""}}))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rr.Body.String(), "Describe your game first.") {
			t.Fatal("expected prompt required message")
		}
	})

	t.Run("download returns attachment", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/2dgames/download?prompt=maze", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="game-code.js"` {
			t.Fatalf("content-disposition = %q", got)
		}
		if !strings.HasPrefix(rr.Body.String(), "// 2D Game based on: maze\n") {
			t.Fatalf("body = %q", rr.Body.String())
		}
	})

	t.Run("download without prompt", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/2dgames/download", nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
		if got := strings.TrimSpace(rr.Body.String()); got != "Describe your game first." {
			t.Fatalf("body = %q, want prompt required message", got)
		}
	})
}

func TestPosterPages(t *testing.T) {
	t.Parallel()

	h := mountFeatures(t)

	t.Run("post links the poster image", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/gamecovers", url.Values{"prompt": {"Neon Drift"}}))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if !slices.Contains(attrValues(t, rr.Body.String(), "img", "src"), "/gamecovers/poster.png?prompt=Neon+Drift") {
			t.Fatal("expected poster image url")
		}
	})

	t.Run("blank prompt re-renders", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, postForm("/gamecovers", url.Values{"prompt": {" "}}))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("image renders png", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gamecovers/poster.png?prompt=Neon+Drift", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("Content-Type"); got != "image/png" {
			t.Fatalf("content-type = %q, want image/png", got)
		}
		img, err := png.Decode(rr.Body)
		if err != nil {
			t.Fatalf("decode png: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 900 {
			t.Fatalf("bounds = %v, want 600x900", b)
		}
	})

	t.Run("image without prompt", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gamecovers/poster.png?lang=es", nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
		if got := strings.TrimSpace(rr.Body.String()); got != "Describe primero tu juego." {
			t.Fatalf("body = %q, want localized prompt required message", got)
		}
		if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
			t.Fatalf("content-type = %q, want text/plain", got)
		}
	})
}
