package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/metrika/internal/metrika"
	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/louisbranch/metrika/internal/platform/timeouts"
	"github.com/louisbranch/metrika/internal/services/web/platform/httpx"
	"github.com/louisbranch/metrika/internal/services/web/platform/observability"
	"github.com/louisbranch/metrika/internal/services/web/routepath"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Tag is mounted on every page.
	Tag tag.Options
	// Logger receives request logs and dispatch warnings.
	Logger zerolog.Logger
	// Tracer starts request spans; nil uses the global provider.
	Tracer trace.Tracer
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with the shared middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	if err := cfg.Tag.Validate(); err != nil {
		return nil, fmt.Errorf("validate tag: %w", err)
	}
	h := handlers{tag: cfg.Tag}

	mux := http.NewServeMux()
	mux.Handle(routepath.Root+"{$}", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.landing)))
	mux.Handle(routepath.Goal, httpx.RequireMethod(http.MethodPost)(http.HandlerFunc(h.goal)))
	mux.Handle(routepath.Health, httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.health)))

	return httpx.Chain(mux,
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID(),
		observability.Tracing(cfg.Tracer),
		observability.RequestLogger(cfg.Logger),
		metrika.Middleware(newRequestPage),
		identifyUser,
	), nil
}

// newRequestPage gives each request a page whose server-side events are
// written into the response.
func newRequestPage(r *http.Request) *metrika.Page {
	logger := *zerolog.Ctx(r.Context())
	return metrika.NewPage(
		metrika.WithScope(metrika.NewScriptScope(logger)),
		metrika.WithLogger(logger),
		metrika.WithMarker(metrika.OTelMarker{}),
	)
}

// NewServer validates config and constructs a web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
