package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "github.com/louisbranch/metrika/internal/services/web/i18n"
)

func staticComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func TestLayoutOrdersHeadContentAndBodyEnd(t *testing.T) {
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), staticComponent("<p>content</p>"))
	err := Layout(LayoutOptions{
		Title:   "Demo <1>",
		Lang:    "ru",
		Head:    staticComponent("<script id=\"head\"></script>"),
		BodyEnd: staticComponent("<script id=\"tail\"></script>"),
	}).Render(ctx, &b)
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, `<!doctype html><html lang="ru">`) {
		t.Fatalf("unexpected document start %q", got)
	}
	if !strings.Contains(got, "<title>Demo &lt;1&gt;</title>") {
		t.Fatalf("expected escaped title, got %q", got)
	}
	head := strings.Index(got, `id="head"`)
	headEnd := strings.Index(got, "</head>")
	content := strings.Index(got, "<main><p>content</p></main>")
	tail := strings.Index(got, `id="tail"`)
	if head < 0 || content < 0 || !(head < headEnd && headEnd < content && content < tail) {
		t.Fatalf("unexpected section order in %q", got)
	}
}

func TestLayoutKeepsContentWhenSlotClearsChildren(t *testing.T) {
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), staticComponent("<p>content</p>"))
	clearing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		templ.ClearChildren(ctx)
		_, err := io.WriteString(w, "<meta name=\"slot\">")
		return err
	})
	err := Layout(LayoutOptions{Title: "x", Head: clearing, BodyEnd: clearing}).Render(ctx, &b)
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if !strings.Contains(b.String(), "<main><p>content</p></main>") {
		t.Fatalf("page content dropped: %q", b.String())
	}
}

func TestLayoutSlotsDoNotSeePageContent(t *testing.T) {
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), staticComponent("<p>content</p>"))
	inspectChildren := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templ.GetChildren(ctx).Render(ctx, w)
	})
	if err := Layout(LayoutOptions{Title: "x", Head: inspectChildren}).Render(ctx, &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if got := strings.Count(b.String(), "<p>content</p>"); got != 1 {
		t.Fatalf("content rendered %d times, want once: %q", got, b.String())
	}
}

func TestLayoutDefaultsLangAndSkipsNilSlots(t *testing.T) {
	var b strings.Builder
	if err := Layout(LayoutOptions{Title: "x"}).Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if !strings.Contains(b.String(), `<html lang="en">`) {
		t.Fatalf("expected default lang, got %q", b.String())
	}
}

func TestLandingRendersLocalizedForm(t *testing.T) {
	var b strings.Builder
	p := message.NewPrinter(language.Russian)
	if err := Landing(p, 42, "/goal").Render(context.Background(), &b); err != nil {
		t.Fatalf("Landing() = %v", err)
	}
	got := b.String()
	for _, marker := range []string{"Демо тега аналитики", "счётчик 42", `action="/goal"`, `name="target"`} {
		if !strings.Contains(got, marker) {
			t.Fatalf("landing missing %q: %q", marker, got)
		}
	}
}

func TestGoalReportedRunsReportDuringRender(t *testing.T) {
	var b strings.Builder
	reported := 0
	p := message.NewPrinter(language.English)
	err := GoalReported(p, "<signup>", "/", func(context.Context) { reported++ }).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("GoalReported() = %v", err)
	}
	if reported != 1 {
		t.Fatalf("report calls = %d, want 1", reported)
	}
	if strings.Contains(b.String(), "<signup>") {
		t.Fatalf("target must be escaped: %q", b.String())
	}
}
