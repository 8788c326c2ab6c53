package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "title.landing", "%s | Analytics demo")
	message.SetString(lang, "title.goal", "%s | Goal reported")
	message.SetString(lang, "landing.heading", "Analytics tag demo")
	message.SetString(lang, "landing.body", "This page mounts counter %d. Submit the form to report a goal.")
	message.SetString(lang, "landing.target", "Goal")
	message.SetString(lang, "landing.submit", "Report goal")
	message.SetString(lang, "goal.heading", "Goal %q reported")
	message.SetString(lang, "goal.back", "Back")
}
