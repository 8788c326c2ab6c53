package metrika

import (
	"net/http"

	"github.com/rs/zerolog"
)

// PageFactory builds the Page for one request.
type PageFactory func(*http.Request) *Page

// Middleware installs a fresh Page in every request context so a tag id
// registered while rendering one response never leaks into another.
// A nil factory creates pages that log through the request's zerolog logger
// and have no ym scope.
func Middleware(newPage PageFactory) func(http.Handler) http.Handler {
	if newPage == nil {
		newPage = func(r *http.Request) *Page {
			return NewPage(WithLogger(*zerolog.Ctx(r.Context())))
		}
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			page := newPage(r)
			if page == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPage(r.Context(), page)))
		})
	}
}
