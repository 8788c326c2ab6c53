package tag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const (
	// DefaultScriptSrc is the vendor's canonical loader URL.
	DefaultScriptSrc = "https://mc.yandex.ru/metrika/tag.js"
	// PixelBaseURL prefixes the tag id in the no-script tracking pixel.
	PixelBaseURL = "https://mc.yandex.ru/watch/"
	// GlobalName is the name the loader attaches the analytics callable under.
	GlobalName = "ym"

	// InitScriptID identifies the loader script element.
	InitScriptID = "metrika-init"
	// PixelID identifies the no-script pixel element.
	PixelID = "metrika-pixel"
)

// Init parameter keys understood by the vendor counter.
const (
	ParamClickmap            = "clickmap"
	ParamTrackLinks          = "trackLinks"
	ParamAccurateTrackBounce = "accurateTrackBounce"
	ParamWebvisor            = "webvisor"
	ParamEcommerce           = "ecommerce"
	ParamTrackHash           = "trackHash"
	ParamDefer               = "defer"
)

// ErrInvalidTagID reports a missing or non-positive tag identifier.
var ErrInvalidTagID = errors.New("tag id must be a positive integer")

// InitParameters are vendor-defined flags merged verbatim into the init call.
type InitParameters map[string]any

// Options configures one tag mount.
type Options struct {
	// TagID identifies the tracked counter. Required.
	TagID int64
	// InitParameters are serialized as the init call's second argument.
	InitParameters InitParameters
	// ScriptSrc overrides DefaultScriptSrc.
	ScriptSrc string
}

// Validate checks the options required to build markup.
func (o Options) Validate() error {
	if o.TagID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTagID, o.TagID)
	}
	return nil
}

// Src returns the loader URL, falling back to DefaultScriptSrc when unset.
func (o Options) Src() string {
	if o.ScriptSrc == "" {
		return DefaultScriptSrc
	}
	return o.ScriptSrc
}

// Fragments holds the two elements emitted for a tag mount.
type Fragments struct {
	Script   Element
	NoScript Element
}

var _ templ.Component = Fragments{}

// Render writes the loader script followed by the no-script fallback.
func (f Fragments) Render(ctx context.Context, w io.Writer) error {
	if err := f.Script.Render(ctx, w); err != nil {
		return err
	}
	return f.NoScript.Render(ctx, w)
}

// Build returns the loader and pixel elements for opts.
func Build(opts Options) (Fragments, error) {
	if err := opts.Validate(); err != nil {
		return Fragments{}, err
	}
	script, err := LoaderScript(opts)
	if err != nil {
		return Fragments{}, err
	}
	return Fragments{
		Script: Element{
			Name:  "script",
			Attrs: []Attr{{Key: "id", Value: InitScriptID}},
			Inner: script,
		},
		NoScript: Element{
			Name:  "noscript",
			Attrs: []Attr{{Key: "id", Value: PixelID}},
			Inner: PixelMarkup(opts.TagID),
		},
	}, nil
}

// LoaderScript returns the bootstrap snippet followed by the init call.
//
// The bootstrap skips injection when a script with the same src is already in
// the document; the comparison is strict string equality.
func LoaderScript(opts Options) (string, error) {
	src, err := json.Marshal(opts.Src())
	if err != nil {
		return "", fmt.Errorf("encode script src: %w", err)
	}
	params, err := encodeParameters(opts.InitParameters)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("(function(m,e,t,r,i,k,a){m[i]=m[i]||function(){(m[i].a=m[i].a||[]).push(arguments)};\n")
	b.WriteString("m[i].l=1*new Date();\n")
	b.WriteString("for (var j = 0; j < document.scripts.length; j++) {if (document.scripts[j].src === r) { return; }}\n")
	b.WriteString("k=e.createElement(t),a=e.getElementsByTagName(t)[0],k.async=1,k.src=r,a.parentNode.insertBefore(k,a)})\n")
	b.WriteString(`(window, document, "script", `)
	b.Write(src)
	b.WriteString(`, "` + GlobalName + `");`)
	b.WriteString("\n\n")
	b.WriteString(GlobalName + "(")
	b.WriteString(strconv.FormatInt(opts.TagID, 10))
	b.WriteString(`, "init", `)
	b.WriteString(params)
	b.WriteString(");\n")
	return b.String(), nil
}

// PixelURL returns the tracking pixel URL for tagID.
func PixelURL(tagID int64) string {
	return PixelBaseURL + strconv.FormatInt(tagID, 10)
}

// PixelMarkup returns the invisible image shown to clients without scripting.
func PixelMarkup(tagID int64) string {
	return `<div><img src="` + PixelURL(tagID) + `" style="position:absolute; left:-9999px;" alt="" /></div>`
}

func encodeParameters(params InitParameters) (string, error) {
	if len(params) == 0 {
		return "{}", nil
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode init parameters: %w", err)
	}
	return string(encoded), nil
}
