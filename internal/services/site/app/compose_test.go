package app

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/gameforge/internal/services/site/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string { return s.id }

func (s stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return s.mount, s.err
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func testDeps() module.Dependencies {
	return module.Dependencies{Logger: log.New(io.Discard, "", 0)}
}

func TestComposeRoutesToModules(t *testing.T) {
	t.Parallel()

	composition, err := Composer{}.Compose(ComposeInput{
		Dependencies: testDeps(),
		Modules: []module.Module{
			stubModule{id: "b", mount: module.Mount{Routes: []string{"/b"}, Handler: okHandler("b")}},
			stubModule{id: "a", mount: module.Mount{Routes: []string{"/a", "/a-alias"}, Handler: okHandler("a")}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	want := []string{"/a", "/a-alias", "/b"}
	if strings.Join(composition.Routes, ",") != strings.Join(want, ",") {
		t.Fatalf("Routes = %v, want %v", composition.Routes, want)
	}

	for path, body := range map[string]string{"/a": "a", "/a-alias": "a", "/b": "b"} {
		rr := httptest.NewRecorder()
		composition.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Body.String() != body {
			t.Fatalf("GET %s body = %q, want %q", path, rr.Body.String(), body)
		}
	}
}

func TestComposeUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	composition, err := Composer{}.Compose(ComposeInput{
		Dependencies: testDeps(),
		Modules:      []module.Module{stubModule{id: "a", mount: module.Mount{Routes: []string{"/a"}, Handler: okHandler("a")}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	composition.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestComposeRejectsInvalidMounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modules []module.Module
		want    string
	}{
		{name: "nil module", modules: []module.Module{nil}, want: "module is nil"},
		{name: "mount error", modules: []module.Module{stubModule{id: "x", err: errors.New("boom")}}, want: "boom"},
		{name: "nil handler", modules: []module.Module{stubModule{id: "x", mount: module.Mount{Routes: []string{"/x"}}}}, want: "handler is required"},
		{name: "no routes", modules: []module.Module{stubModule{id: "x", mount: module.Mount{Handler: okHandler("x")}}}, want: "routes are required"},
		{name: "relative route", modules: []module.Module{stubModule{id: "x", mount: module.Mount{Routes: []string{"x"}, Handler: okHandler("x")}}}, want: "must start with /"},
		{
			name: "duplicate route",
			modules: []module.Module{
				stubModule{id: "first", mount: module.Mount{Routes: []string{"/x"}, Handler: okHandler("1")}},
				stubModule{id: "second", mount: module.Mount{Routes: []string{"/x"}, Handler: okHandler("2")}},
			},
			want: `module "second" duplicates route "/x" owned by module "first"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Composer{}.Compose(ComposeInput{Dependencies: testDeps(), Modules: tc.modules})
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Compose() error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestComposeRequiresSameOriginForMutations(t *testing.T) {
	t.Parallel()

	composition, err := Composer{}.Compose(ComposeInput{
		Dependencies: testDeps(),
		Modules:      []module.Module{stubModule{id: "form", mount: module.Mount{Routes: []string{"/form"}, Handler: okHandler("saved")}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name   string
		method string
		origin string
		want   int
	}{
		{name: "get needs no proof", method: http.MethodGet, want: http.StatusOK},
		{name: "post without origin", method: http.MethodPost, want: http.StatusForbidden},
		{name: "post cross origin", method: http.MethodPost, origin: "https://evil.example", want: http.StatusForbidden},
		{name: "post same origin", method: http.MethodPost, origin: "http://example.com", want: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, "http://example.com/form", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			composition.Handler.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}
