package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, "title.landing", "%s | Демо аналитики")
	message.SetString(lang, "title.goal", "%s | Цель отправлена")
	message.SetString(lang, "landing.heading", "Демо тега аналитики")
	message.SetString(lang, "landing.body", "На странице установлен счётчик %d. Отправьте форму, чтобы достичь цели.")
	message.SetString(lang, "landing.target", "Цель")
	message.SetString(lang, "landing.submit", "Отправить цель")
	message.SetString(lang, "goal.heading", "Цель %q отправлена")
	message.SetString(lang, "goal.back", "Назад")
}
