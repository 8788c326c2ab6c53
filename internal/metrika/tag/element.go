package tag

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one element attribute in declaration order.
type Attr struct {
	Key   string
	Value string
}

// Element is structured markup: a tag name, ordered attributes and raw inner
// content that is written without escaping.
type Element struct {
	Name  string
	Attrs []Attr
	Inner string
}

var _ templ.Component = Element{}

// Attr returns the value of the named attribute.
func (e Element) Attr(key string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// ID returns the element id attribute, or "" when absent.
func (e Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Render writes the element as HTML. Attribute values are escaped; inner
// content is not.
func (e Element) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, e.String())
	return err
}

// String returns the element as HTML.
func (e Element) String() string {
	if strings.TrimSpace(e.Name) == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.Name)
	for _, attr := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(e.Inner)
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteString(">")
	return b.String()
}
