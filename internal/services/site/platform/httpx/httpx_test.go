package httpx

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/gameforge/internal/services/site/platform/errors"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestChainNilHandlerIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMethodNotAllowedWritesAllowHeaderAndStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(" GET, POST ").ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/contact", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, POST" {
		t.Fatalf("Allow = %q, want %q", got, "GET, POST")
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.HasPrefix(seen, "site-") {
		t.Fatalf("request id = %q, want site- prefix", seen)
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response request id = %q, want %q", got, seen)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "req-42" {
		t.Fatalf("request id = %q, want %q", got, "req-42")
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodPost, "/gamecovers", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	line := buffer.String()
	for _, marker := range []string{"panic recovered", "method=POST", "path=/gamecovers", "request_id=req-7", "panic=boom"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, line)
		}
	}
}

func TestWriteErrorUsesTypedStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.E(apperrors.KindInvalidInput, "prompt is required"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rr.Body.String(), "prompt is required") {
		t.Fatalf("body = %q, want message", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	WriteError(rr, errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWriteAttachmentSetsDisposition(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteAttachment(rr, "text/plain; charset=utf-8", "game-code.js", []byte("code")); err != nil {
		t.Fatalf("WriteAttachment() error = %v", err)
	}
	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="game-code.js"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if rr.Body.String() != "code" {
		t.Fatalf("body = %q, want %q", rr.Body.String(), "code")
	}
}

func TestWriteSeeOther(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteSeeOther(rr, httptest.NewRequest(http.MethodPost, "/contact", nil), "/contact?sent=1")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/contact?sent=1" {
		t.Fatalf("Location = %q, want %q", got, "/contact?sent=1")
	}
}

func TestIsMutationMethod(t *testing.T) {
	t.Parallel()

	for method, want := range map[string]bool{
		http.MethodGet:    false,
		http.MethodHead:   false,
		http.MethodPost:   true,
		http.MethodDelete: true,
	} {
		if got := IsMutationMethod(httptest.NewRequest(method, "/", nil)); got != want {
			t.Fatalf("IsMutationMethod(%s) = %v, want %v", method, got, want)
		}
	}
	if IsMutationMethod(nil) {
		t.Fatal("IsMutationMethod(nil) = true, want false")
	}
}
