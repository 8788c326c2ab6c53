// Package templates renders the web service pages.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// LayoutOptions configure the page shell.
type LayoutOptions struct {
	Title string
	Lang  string
	// Head is written at the end of <head>; the analytics tag mounts here.
	Head templ.Component
	// BodyEnd is written after the page content, before </body>.
	BodyEnd templ.Component
}

// Layout renders the HTML document around the children in ctx.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}
		if _, err := io.WriteString(w, `<!doctype html><html lang="`+templ.EscapeString(lang)+`"><head><meta charset="utf-8"><title>`+templ.EscapeString(opts.Title)+`</title>`); err != nil {
			return err
		}
		if err := renderOptional(ctx, w, opts.Head); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head><body><main>`); err != nil {
			return err
		}
		if err := renderOptional(ctx, w, children); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		if err := renderOptional(ctx, w, opts.BodyEnd); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func renderOptional(ctx context.Context, w io.Writer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}
