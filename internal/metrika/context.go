package metrika

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/rs/zerolog"
)

// pageContextKey is the context key for the request's Page.
type pageContextKey struct{}

// WithPage stores p in ctx.
func WithPage(ctx context.Context, p *Page) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, pageContextKey{}, p)
}

// PageFromContext returns the Page stored in ctx, or nil.
func PageFromContext(ctx context.Context) *Page {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(pageContextKey{}).(*Page)
	return p
}

// Tag mounts the tag into the Page found in the render context. Without a
// Page the markup is still written but no id is registered.
func Tag(opts tag.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return PageFromContext(ctx).Tag(opts).Render(ctx, w)
	})
}

// SendEvent dispatches through the Page in ctx. A context without a Page is
// treated as uninitialized.
func SendEvent(ctx context.Context, event string, args ...any) {
	dispatcherFromContext(ctx).SendEvent(event, args...)
}

// UserParams dispatches userParams through the Page in ctx.
func UserParams(ctx context.Context, params UserParameters) {
	dispatcherFromContext(ctx).UserParams(params)
}

// SetUserID dispatches setUserID through the Page in ctx.
func SetUserID(ctx context.Context, userID string) {
	dispatcherFromContext(ctx).SetUserID(userID)
}

// ReachGoal dispatches reachGoal through the Page in ctx.
func ReachGoal(ctx context.Context, target string, params VisitParameters, callback func()) {
	dispatcherFromContext(ctx).ReachGoal(target, params, callback)
}

// NotBounce dispatches notBounce through the Page in ctx.
func NotBounce(ctx context.Context, options *NotBounceOptions) {
	dispatcherFromContext(ctx).NotBounce(options)
}

func dispatcherFromContext(ctx context.Context) *Dispatcher {
	if p := PageFromContext(ctx); p != nil && p.Dispatcher != nil {
		return p.Dispatcher
	}
	logger := zerolog.Nop()
	if ctx != nil {
		logger = *zerolog.Ctx(ctx)
	}
	return NewDispatcher(&Registry{}, nil, logger)
}
