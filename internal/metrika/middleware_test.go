package metrika

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/rs/zerolog"
)

func TestMiddlewareInstallsFreshPagePerRequest(t *testing.T) {
	var seen []*Page
	h := Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := PageFromContext(r.Context())
		if page == nil {
			t.Fatal("expected page in request context")
		}
		seen = append(seen, page)
		if err := page.Tag(tag.Options{TagID: int64(len(seen))}).Render(r.Context(), w); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}))

	for range 2 {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	if len(seen) != 2 || seen[0] == seen[1] {
		t.Fatalf("expected two distinct pages, got %v", seen)
	}
	if tagID, _ := seen[1].Registry().TagID(); tagID != 2 {
		t.Fatalf("second request TagID = %d, want 2", tagID)
	}
}

func TestMiddlewareDefaultPageLogsThroughRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	h := Middleware(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		SendEvent(r.Context(), EventNotBounce)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.WithContext(req.Context()))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(logs.String(), notInitializedMessage) {
		t.Fatalf("expected warning in request logger, got %q", logs.String())
	}
}

func TestMiddlewareUsesFactory(t *testing.T) {
	want := NewPage()
	var got *Page
	h := Middleware(func(*http.Request) *Page { return want })(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = PageFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got != want {
		t.Fatalf("page = %p, want %p", got, want)
	}
}

func TestMiddlewareNilNextReturnsNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	Middleware(nil)(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
