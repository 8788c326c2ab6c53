package web

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/metrika/internal/metrika"
	"github.com/louisbranch/metrika/internal/metrika/tag"
	"github.com/louisbranch/metrika/internal/platform/branding"
	"github.com/louisbranch/metrika/internal/platform/requestctx"
	"github.com/louisbranch/metrika/internal/services/web/i18n"
	"github.com/louisbranch/metrika/internal/services/web/platform/httpx"
	"github.com/louisbranch/metrika/internal/services/web/routepath"
	"github.com/louisbranch/metrika/internal/services/web/templates"
	"github.com/rs/zerolog"
)

// UserIDCookie carries the site's own visitor id, forwarded to the counter
// with setUserID before a goal is reported.
const UserIDCookie = "metrika_uid"

const maxGoalTargetLength = 128

type handlers struct {
	tag tag.Options
}

func (h handlers) landing(w http.ResponseWriter, r *http.Request) {
	lang := i18n.ResolveTag(r)
	p := i18n.Printer(lang)
	h.render(w, r, lang.String(), p.Sprintf("title.landing", branding.AppName),
		templates.Landing(p, h.tag.TagID, routepath.Goal))
}

func (h handlers) goal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	target := strings.TrimSpace(r.PostForm.Get(templates.GoalFormField))
	if target == "" {
		http.Error(w, "goal target is required", http.StatusBadRequest)
		return
	}
	if len(target) > maxGoalTargetLength {
		http.Error(w, "goal target is too long", http.StatusBadRequest)
		return
	}

	lang := i18n.ResolveTag(r)
	p := i18n.Printer(lang)
	body := templates.GoalReported(p, target, routepath.Root, func(ctx context.Context) {
		if userID := requestctx.UserIDFromContext(ctx); userID != "" {
			metrika.SetUserID(ctx, userID)
		}
		metrika.ReachGoal(ctx, target, nil, nil)
	})
	h.render(w, r, lang.String(), p.Sprintf("title.goal", branding.AppName), body)
}

// identifyUser copies the visitor cookie into the request context.
func identifyUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(UserIDCookie); err == nil {
			r = r.WithContext(requestctx.WithUserID(r.Context(), cookie.Value))
		}
		next.ServeHTTP(w, r)
	})
}

func (h handlers) health(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

// render buffers the full document so a failed render becomes a 500
// instead of a truncated page.
func (h handlers) render(w http.ResponseWriter, r *http.Request, lang, title string, body templ.Component) {
	ctx := httpx.RequestContext(r)
	page := metrika.PageFromContext(ctx)
	layout := templates.Layout(templates.LayoutOptions{
		Title:   title,
		Lang:    lang,
		Head:    page.Tag(h.tag),
		BodyEnd: page.Events(),
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("path", r.URL.Path).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
