package metrika

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/rs/zerolog"
)

// Page owns the registered tag id for one rendered page and dispatches
// events against it.
type Page struct {
	*Dispatcher

	registry Registry
	scope    Scope
	marker   Marker
}

// scriptWriter is implemented by scopes that emit recorded calls as markup.
type scriptWriter interface {
	Component() templ.Component
}

type pageConfig struct {
	scope  Scope
	logger zerolog.Logger
	marker Marker
}

// PageOption customizes NewPage.
type PageOption func(*pageConfig)

// WithScope sets where the ym callable is looked up.
func WithScope(scope Scope) PageOption {
	return func(cfg *pageConfig) {
		cfg.scope = scope
	}
}

// WithLogger sets the logger receiving uninitialized-dispatch warnings.
func WithLogger(logger zerolog.Logger) PageOption {
	return func(cfg *pageConfig) {
		cfg.logger = logger
	}
}

// WithMarker sets the feature-usage marker.
func WithMarker(marker Marker) PageOption {
	return func(cfg *pageConfig) {
		cfg.marker = marker
	}
}

// NewPage returns a page with no registered tag id.
func NewPage(opts ...PageOption) *Page {
	cfg := pageConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	p := &Page{scope: cfg.scope, marker: normalizeMarker(cfg.marker)}
	p.Dispatcher = NewDispatcher(&p.registry, cfg.scope, cfg.logger)
	return p
}

// Registry exposes the page's tag id registry.
func (p *Page) Registry() *Registry {
	if p == nil {
		return nil
	}
	return &p.registry
}

// Tag returns the component that mounts the tag. Each render registers
// opts.TagID unless an id is already registered, emits the usage marker and
// writes the loader and pixel fragments.
func (p *Page) Tag(opts tag.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fragments, err := tag.Build(opts)
		if err != nil {
			return fmt.Errorf("build tag: %w", err)
		}
		p.mount(ctx, opts.TagID)
		return fragments.Render(ctx, w)
	})
}

// Events returns the component writing calls recorded by a script-emitting
// scope such as ScriptScope. Other scopes render nothing. Place it after
// the tag so the vendor stub exists when the calls run.
func (p *Page) Events() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p == nil {
			return nil
		}
		writer, ok := p.scope.(scriptWriter)
		if !ok {
			return nil
		}
		return writer.Component().Render(ctx, w)
	})
}

func (p *Page) mount(ctx context.Context, tagID int64) {
	if p == nil {
		return
	}
	p.registry.Register(tagID)
	p.marker.MarkFeatureUsage(ctx, FeatureName)
}
