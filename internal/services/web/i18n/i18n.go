// Package i18n provides locale resolution and message printing for the web service.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the best supported language for the request from the
// lang query parameter, then Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			return match(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return match(tags...)
		}
	}
	return Default()
}

func match(tags ...language.Tag) language.Tag {
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}
